package errors

// ERR identifies the class of a failure. The codes are stable; new codes are
// appended, never renumbered.
type ERR int32

const (
	ERR_UNKNOWN          ERR = 0
	ERR_INVALID_ARGUMENT ERR = 1
	ERR_NOT_FOUND        ERR = 2
	ERR_PROCESSING       ERR = 3
	ERR_STORAGE          ERR = 4
	ERR_SERVICE_ERROR    ERR = 5
	ERR_CONFIGURATION    ERR = 6
	ERR_INVALID_NAME     ERR = 7
	ERR_INVALID_KEY      ERR = 8
)

var errName = map[int32]string{
	0: "UNKNOWN",
	1: "INVALID_ARGUMENT",
	2: "NOT_FOUND",
	3: "PROCESSING",
	4: "STORAGE",
	5: "SERVICE_ERROR",
	6: "CONFIGURATION",
	7: "INVALID_NAME",
	8: "INVALID_KEY",
}

func (e ERR) String() string {
	if name, ok := errName[int32(e)]; ok {
		return name
	}
	return "UNKNOWN"
}

var (
	ErrUnknown     = New(ERR_UNKNOWN, "unknown error")
	ErrNotFound    = New(ERR_NOT_FOUND, "not found")
	ErrInvalidName = New(ERR_INVALID_NAME, "invalid name")
	ErrInvalidKey  = New(ERR_INVALID_KEY, "invalid key")
)

func NewUnknownError(message string, params ...interface{}) *Error {
	return New(ERR_UNKNOWN, message, params...)
}

func NewInvalidArgumentError(message string, params ...interface{}) *Error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}

func NewNotFoundError(message string, params ...interface{}) *Error {
	return New(ERR_NOT_FOUND, message, params...)
}

func NewProcessingError(message string, params ...interface{}) *Error {
	return New(ERR_PROCESSING, message, params...)
}

func NewStorageError(message string, params ...interface{}) *Error {
	return New(ERR_STORAGE, message, params...)
}

func NewServiceError(message string, params ...interface{}) *Error {
	return New(ERR_SERVICE_ERROR, message, params...)
}

func NewConfigurationError(message string, params ...interface{}) *Error {
	return New(ERR_CONFIGURATION, message, params...)
}

func NewInvalidNameError(message string, params ...interface{}) *Error {
	return New(ERR_INVALID_NAME, message, params...)
}

func NewInvalidKeyError(message string, params ...interface{}) *Error {
	return New(ERR_INVALID_KEY, message, params...)
}
