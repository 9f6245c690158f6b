package config

import (
	"os"

	derrors "git.home.luguber.info/inful/vendordocs/internal/errors"
)

// Environment variables selecting the generation target.
const (
	EnvVendor  = "VENDOR"
	EnvCompany = "COMPANY"
)

// Selector identifies the single vendor/company entry a run generates docs for.
type Selector struct {
	Vendor  string
	Company string
}

// SelectorFromEnv reads VENDOR and COMPANY through lookup (os.LookupEnv when nil).
// Unset and empty variables are both treated as missing.
func SelectorFromEnv(lookup func(string) (string, bool)) (Selector, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	vendor, _ := lookup(EnvVendor)
	company, _ := lookup(EnvCompany)
	return NewSelector(vendor, company)
}

// NewSelector validates that both parts are present.
func NewSelector(vendor, company string) (Selector, error) {
	var missing []string
	if vendor == "" {
		missing = append(missing, EnvVendor)
	}
	if company == "" {
		missing = append(missing, EnvCompany)
	}
	if len(missing) > 0 {
		return Selector{}, derrors.ConfigMissing(missing...)
	}
	return Selector{Vendor: vendor, Company: company}, nil
}
