package problem

import "errors"

// Sentinel errors. The errors returned by this package wrap one of these in a
// platform error (see github.com/jmgilman/go/errors), so both errors.Is and
// platformerrors.GetCode work on them.
var (
	// ErrReservedFieldName is returned when an extension field uses one of the
	// core member names (type, status, title, detail, instance).
	ErrReservedFieldName = errors.New("reserved field name")

	// ErrFieldEncoding is returned when a field value cannot be encoded as JSON.
	ErrFieldEncoding = errors.New("field value is not JSON encodable")

	// ErrInvalidStatusCode is returned when an integer cannot become a StatusCode.
	ErrInvalidStatusCode = errors.New("invalid status code")

	// ErrMissingTitle is returned when a problem document has no title.
	ErrMissingTitle = errors.New("problem document has no title")
)
