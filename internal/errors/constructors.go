package errors

// Convenience functions for common error patterns

// Config errors

// ConfigMissing reports required selector input (e.g. the VENDOR variable) that was not provided.
func ConfigMissing(fields ...string) *DocError {
	return New(CategoryConfig, SeverityFatal, "VENDOR and COMPANY environment variables must be set").
		WithContext("fields", fields)
}

// ConfigNotFound reports a vendor/company pair absent from the configuration.
func ConfigNotFound(vendor, company string) *DocError {
	return New(CategoryConfig, SeverityFatal, "configuration not found").
		WithContext("vendor", vendor).
		WithContext("company", company)
}

func ConfigParse(path string, cause error) *DocError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to load configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocError {
	return New(CategoryValidation, SeverityError, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Generation errors

func TemplateRead(path string, cause error) *DocError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "failed to read template").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *DocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write output").
		WithContext("path", path)
}

// TransformFailed wraps a failure raised by one step of the document processor.
func TransformFailed(step string, cause error) *DocError {
	return Wrap(cause, CategoryTransform, SeverityFatal, "transformation failed").
		WithContext("step", step)
}

// Internal errors

func InternalError(message string, cause error) *DocError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
