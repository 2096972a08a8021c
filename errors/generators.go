package errors

// NewResourceNotFoundError returns a new ErrNotFound error with kind
// KindResourceNotFound and the given message.
func NewResourceNotFoundError(message string, details Details) error {
	return Error{
		Code:    ErrNotFound,
		Kind:    KindResourceNotFound,
		Message: message,
		Details: details,
	}
}

// NewJSONError creates a new error for failed JSON encoding or decoding. If
// userErr is set, the error is an ErrBadRequest with kind KindDecodeJSON as
// this means that malformed user input could not be parsed. Otherwise, an
// ErrInternal with kind KindEncodeJSON is created.
func NewJSONError(err error, message string, userErr bool) error {
	if userErr {
		return Error{
			Code:    ErrBadRequest,
			Kind:    KindDecodeJSON,
			Err:     err,
			Message: message,
		}
	}
	return Error{
		Code:    ErrInternal,
		Kind:    KindEncodeJSON,
		Err:     err,
		Message: message,
	}
}

// NewMissingFieldError creates a new ErrBadRequest error with kind
// KindMissingField for the field with the given name.
func NewMissingFieldError(fieldName string) error {
	return Error{
		Code:    ErrBadRequest,
		Kind:    KindMissingField,
		Message: "missing field: " + fieldName,
		Details: Details{"field": fieldName},
	}
}

// NewContextAbortedError creates a new ErrInternal error with kind
// KindContextAborted for an operation that could not finish.
func NewContextAbortedError(operation string) error {
	return Error{
		Code:    ErrInternal,
		Kind:    KindContextAborted,
		Message: "context aborted during operation: " + operation,
		Details: Details{"operation": operation},
	}
}

// NewInternalError creates a new ErrInternal error with the given message and
// details.
func NewInternalError(message string, details Details) error {
	return Error{
		Code:    ErrInternal,
		Kind:    KindUnexpected,
		Message: message,
		Details: details,
	}
}

// NewInternalErrorFromErr creates a new ErrInternal error with the given
// wrapped error, message and details.
func NewInternalErrorFromErr(err error, message string, details Details) error {
	return Error{
		Code:    ErrInternal,
		Kind:    KindUnexpected,
		Err:     err,
		Message: message,
		Details: details,
	}
}
