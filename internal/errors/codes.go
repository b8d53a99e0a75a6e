package errors

// Common error codes
const (
	// System errors
	ErrInternal ErrorCode = "internal_error"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrParseFlags    ErrorCode = "parse_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Input errors
	ErrInvalidUnit  ErrorCode = "invalid_unit"
	ErrInvalidInput ErrorCode = "invalid_input"

	// Monitor probe errors
	ErrProbeNotFound    ErrorCode = "probe_not_found"
	ErrProbeUnsupported ErrorCode = "probe_unsupported"
	ErrEDIDParse        ErrorCode = "edid_parse_failed"

	// Output errors
	ErrRender ErrorCode = "render_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:         "Internal error occurred",
	ErrInvalidConfig:    "Invalid configuration",
	ErrBindFlags:        "Failed to bind flags",
	ErrParseFlags:       "Failed to parse flags",
	ErrReadConfig:       "Failed to read configuration",
	ErrInvalidLogLevel:  "Invalid log level",
	ErrInvalidUnit:      "Invalid unit",
	ErrInvalidInput:     "Invalid numeric input",
	ErrProbeNotFound:    "No monitor with a usable EDID found",
	ErrProbeUnsupported: "Monitor probing not supported on this platform",
	ErrEDIDParse:        "Failed to parse EDID",
	ErrRender:           "Failed to render report",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
