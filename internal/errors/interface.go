package errors

// ErrorCode identifies a failure independently of its message, e.g.
// "invalid_unit". Packages alias the shared codes or declare their own in
// an errors.go file.
type ErrorCode string

// Error is a coded error. Data carries the offending value (a unit index,
// a field name, a blob count) for logs and tests.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory builds coded errors; obtain one with New.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, cause error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
