package generator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
)

// StylesheetName is the per-company stylesheet file.
const StylesheetName = "custom.css"

// stylesheetStub is the content of a freshly created stylesheet.
const stylesheetStub = "/* Custom styles */\n"

// writeFile writes content to path, creating parent directories and replacing
// any existing file.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return derrors.WriteFailed(path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return derrors.WriteFailed(path, err)
	}
	return nil
}

// EnsureStylesheet creates dir/custom.css with a one-line comment unless the
// file already exists. Existing stylesheets are never touched.
func EnsureStylesheet(dir string) (path string, created bool, err error) {
	path = filepath.Join(dir, StylesheetName)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return path, false, derrors.WriteFailed(dir, err)
	}

	// #nosec G304 -- path is derived from configured output directories.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return path, false, nil
		}
		return path, false, derrors.WriteFailed(path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.WriteString(stylesheetStub); err != nil {
		return path, false, derrors.WriteFailed(path, err)
	}
	return path, true, nil
}
