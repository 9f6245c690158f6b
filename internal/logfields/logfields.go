package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyVendor   = "vendor"
	KeyCompany  = "company"
	KeyProduct  = "product"
	KeyTemplate = "template"
	KeyPath     = "path"
	KeyStep     = "step"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Vendor(v string) slog.Attr { return slog.String(KeyVendor, v) }
func Company(c string) slog.Attr { return slog.String(KeyCompany, c) }
func Product(p string) slog.Attr { return slog.String(KeyProduct, p) }
func Template(t string) slog.Attr { return slog.String(KeyTemplate, t) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Step(name string) slog.Attr { return slog.String(KeyStep, name) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
