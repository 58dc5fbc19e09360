package problem

import (
	"errors"

	platformerrors "github.com/jmgilman/go/errors"
)

// internalMessage is the detail used for errors that carry no safe message.
const internalMessage = "internal error"

// platformStatuses maps platform error codes to HTTP statuses.
// Codes that are not listed map to 500.
var platformStatuses = map[platformerrors.ErrorCode]StatusCode{
	platformerrors.CodeNotFound:       StatusNotFound,
	platformerrors.CodeAlreadyExists:  StatusConflict,
	platformerrors.CodeConflict:       StatusConflict,
	platformerrors.CodeUnauthorized:   StatusUnauthorized,
	platformerrors.CodeForbidden:      StatusForbidden,
	platformerrors.CodeInvalidInput:   StatusBadRequest,
	platformerrors.CodeTimeout:        StatusGatewayTimeout,
	platformerrors.CodeRateLimit:      StatusTooManyRequests,
	platformerrors.CodeUnavailable:    StatusServiceUnavailable,
	platformerrors.CodeNotImplemented: StatusNotImplemented,
}

// StatusForCode returns the HTTP status for a platform error code.
func StatusForCode(code platformerrors.ErrorCode) StatusCode {
	if status, ok := platformStatuses[code]; ok {
		return status
	}
	return StatusInternalServerError
}

// FromError converts any error into a HandlerError. Returns nil if err is nil.
//
// A HandlerError found in the chain is returned as is. A platform error keeps
// its message, exposes its code as the "code" field and its context entries as
// fields, and gets the status mapped from its code. Anything else becomes a
// 500 with a generic message. In every case err stays available as the cause.
//
// Example:
//
//	if err := svc.Deploy(ctx, req); err != nil {
//	    p := problem.FromError(err).IntoProblem()
//	    // write p
//	}
func FromError(err error) *HandlerError {
	if err == nil {
		return nil
	}

	if herr, ok := AsHandlerError(err); ok {
		return herr
	}

	var platformErr platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		return WrapErrorWithMessage(err, StatusInternalServerError, internalMessage)
	}

	e := WrapErrorWithMessage(err, StatusForCode(platformErr.Code()), platformErr.Message())
	for k, v := range platformErr.Context() {
		e.AddField(k, v)
	}
	e.AddField("code", string(platformErr.Code()))
	if platformErr.Classification().IsRetryable() {
		e.AddField("retryable", true)
	}

	return e
}
