package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	platformerrors "github.com/jmgilman/go/errors"
)

// StatusCode is an HTTP status code.
//
// Any 16-bit value is representable. Only 100-599 carry meaning; codes that are
// not registered keep their numeric value and report a generic reason phrase
// derived from their class.
type StatusCode uint16

// Commonly used status codes.
const (
	StatusBadRequest          StatusCode = http.StatusBadRequest
	StatusUnauthorized        StatusCode = http.StatusUnauthorized
	StatusForbidden           StatusCode = http.StatusForbidden
	StatusNotFound            StatusCode = http.StatusNotFound
	StatusConflict            StatusCode = http.StatusConflict
	StatusUnprocessableEntity StatusCode = http.StatusUnprocessableEntity
	StatusTooManyRequests     StatusCode = http.StatusTooManyRequests
	StatusInternalServerError StatusCode = http.StatusInternalServerError
	StatusNotImplemented      StatusCode = http.StatusNotImplemented
	StatusServiceUnavailable  StatusCode = http.StatusServiceUnavailable
	StatusGatewayTimeout      StatusCode = http.StatusGatewayTimeout
)

// Class partitions status codes by their hundreds digit.
type Class int

const (
	// ClassUnclassified covers every code outside 100-599.
	ClassUnclassified Class = iota
	ClassInformational
	ClassSuccess
	ClassRedirection
	ClassClientError
	ClassServerError
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassInformational:
		return "Informational"
	case ClassSuccess:
		return "Success"
	case ClassRedirection:
		return "Redirection"
	case ClassClientError:
		return "Client Error"
	case ClassServerError:
		return "Server Error"
	default:
		return "Unclassified"
	}
}

// unregisteredPhrases holds the fallback reason phrase for each class.
var unregisteredPhrases = map[Class]string{
	ClassInformational: "Unregistered Informational",
	ClassSuccess:       "Unregistered Success",
	ClassRedirection:   "Unregistered Redirection",
	ClassClientError:   "Unregistered Client Error",
	ClassServerError:   "Unregistered Server Error",
	ClassUnclassified:  "Unregistered Status Code",
}

// ParseStatusCode converts an integer into a StatusCode.
// Values outside 100-999 are rejected with ErrInvalidStatusCode.
func ParseStatusCode(code int) (StatusCode, error) {
	if code < 100 || code > 999 {
		return 0, platformerrors.Wrap(
			ErrInvalidStatusCode,
			platformerrors.CodeInvalidInput,
			fmt.Sprintf("status code %d is outside 100-999", code),
		)
	}
	return StatusCode(code), nil
}

// Int returns the numeric value.
func (s StatusCode) Int() int {
	return int(s)
}

// Class returns the classification of the code.
func (s StatusCode) Class() Class {
	switch {
	case s >= 100 && s < 200:
		return ClassInformational
	case s >= 200 && s < 300:
		return ClassSuccess
	case s >= 300 && s < 400:
		return ClassRedirection
	case s >= 400 && s < 500:
		return ClassClientError
	case s >= 500 && s < 600:
		return ClassServerError
	default:
		return ClassUnclassified
	}
}

// IsRegistered reports whether the code has a canonical reason phrase.
func (s StatusCode) IsRegistered() bool {
	return s.Class() != ClassUnclassified && http.StatusText(int(s)) != ""
}

// ReasonPhrase returns the canonical reason phrase, e.g. "Not Found".
// Unregistered codes yield a class-based phrase such as
// "Unregistered Server Error"; it never returns an empty string.
func (s StatusCode) ReasonPhrase() string {
	if s.IsRegistered() {
		return http.StatusText(int(s))
	}
	return unregisteredPhrases[s.Class()]
}

// IsInformational reports whether the code is in 100-199.
func (s StatusCode) IsInformational() bool { return s.Class() == ClassInformational }

// IsSuccess reports whether the code is in 200-299.
func (s StatusCode) IsSuccess() bool { return s.Class() == ClassSuccess }

// IsRedirection reports whether the code is in 300-399.
func (s StatusCode) IsRedirection() bool { return s.Class() == ClassRedirection }

// IsClientError reports whether the code is in 400-499.
func (s StatusCode) IsClientError() bool { return s.Class() == ClassClientError }

// IsServerError reports whether the code is in 500-599.
func (s StatusCode) IsServerError() bool { return s.Class() == ClassServerError }

// String returns the code followed by its reason phrase, e.g. "404 Not Found".
func (s StatusCode) String() string {
	return strconv.Itoa(int(s)) + " " + s.ReasonPhrase()
}

// MarshalJSON encodes the code as a JSON integer.
func (s StatusCode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON decodes a JSON number. Numbers that ParseStatusCode rejects
// fall back to 500 instead of failing the surrounding document. Strings,
// including quoted numbers, are an error.
func (s *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return platformerrors.New(platformerrors.CodeInvalidInput, "status must be an integer")
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "status must be an integer")
	}

	code, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil || code < 100 || code > 999 {
		*s = StatusInternalServerError
		return nil
	}

	*s = StatusCode(code)
	return nil
}
