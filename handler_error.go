package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// HandlerError is the error returned by HTTP API handlers.
//
// It carries everything a Problem does plus an optional cause and typed
// extensions. The cause and the extensions stay in the process: ToProblem and
// IntoProblem drop them, and a HandlerError with status 401 never passes its
// fields on either.
//
// HandlerError participates in errors.Is / errors.As through Unwrap, which
// returns the cause.
type HandlerError struct {
	status     StatusCode
	title      string
	message    string
	typeURL    string
	instance   string
	fields     map[string]json.RawMessage
	cause      error
	extensions Extensions
}

// NewError creates a HandlerError with the given status and nothing else.
//
// Example:
//
//	return problem.NewError(problem.StatusNotFound)
func NewError(status StatusCode) *HandlerError {
	return &HandlerError{status: status}
}

// NewErrorWithMessage creates a HandlerError with the given message, which
// becomes the problem detail.
func NewErrorWithMessage(status StatusCode, message string) *HandlerError {
	return &HandlerError{status: status, message: message}
}

// NewErrorf creates a HandlerError with a formatted message.
func NewErrorf(status StatusCode, format string, args ...any) *HandlerError {
	return &HandlerError{status: status, message: fmt.Sprintf(format, args...)}
}

// WrapError creates a HandlerError with cause attached. Without a message the
// cause's text becomes the detail.
//
// Example:
//
//	if err := repo.Save(ctx, order); err != nil {
//	    return problem.WrapError(err, problem.StatusConflict)
//	}
func WrapError(cause error, status StatusCode) *HandlerError {
	return &HandlerError{status: status, cause: cause}
}

// WrapErrorWithMessage creates a HandlerError with cause attached and the
// given message. The message takes precedence over the cause's text.
func WrapErrorWithMessage(cause error, status StatusCode, message string) *HandlerError {
	return &HandlerError{status: status, message: message, cause: cause}
}

// WrapErrorf creates a HandlerError with cause attached and a formatted message.
func WrapErrorf(cause error, status StatusCode, format string, args ...any) *HandlerError {
	return &HandlerError{status: status, message: fmt.Sprintf(format, args...), cause: cause}
}

// TryNewError is NewError for an integer status; it fails with
// ErrInvalidStatusCode when code is not a valid status.
func TryNewError(code int) (*HandlerError, error) {
	status, err := ParseStatusCode(code)
	if err != nil {
		return nil, err
	}
	return NewError(status), nil
}

// Status returns the HTTP status.
func (e *HandlerError) Status() StatusCode { return e.status }

// Title returns the title, or "" if none was set.
func (e *HandlerError) Title() string { return e.title }

// Message returns the explicit message, or "" if none was set.
func (e *HandlerError) Message() string { return e.message }

// TypeURL returns the type URL, or "" if none was set.
func (e *HandlerError) TypeURL() string { return e.typeURL }

// Instance returns the instance, or "" if none was set.
func (e *HandlerError) Instance() string { return e.instance }

// Cause returns the cause, or nil.
func (e *HandlerError) Cause() error { return e.cause }

// SetStatus replaces the HTTP status.
func (e *HandlerError) SetStatus(status StatusCode) { e.status = status }

// SetTitle replaces the title. An empty title falls back to the reason phrase.
func (e *HandlerError) SetTitle(title string) { e.title = title }

// SetMessage replaces the message. An empty message lets the cause's text
// become the detail.
func (e *HandlerError) SetMessage(message string) { e.message = message }

// SetTypeURL replaces the type URL.
func (e *HandlerError) SetTypeURL(typeURL string) { e.typeURL = typeURL }

// SetInstance replaces the instance.
func (e *HandlerError) SetInstance(instance string) { e.instance = instance }

// SetCause replaces the cause. Pass nil to remove it.
func (e *HandlerError) SetCause(cause error) { e.cause = cause }

// Extensions returns the typed extensions of the error. The returned pointer
// refers to the error's own bag, so changes made through it are kept.
func (e *HandlerError) Extensions() *Extensions {
	return &e.extensions
}

// TryAddField stores value under name. It fails with ErrReservedFieldName for
// a core member name and with ErrFieldEncoding when value cannot be encoded.
func (e *HandlerError) TryAddField(name string, value any) error {
	raw, err := encodeField(name, value)
	if err != nil {
		return err
	}
	if e.fields == nil {
		e.fields = make(map[string]json.RawMessage)
	}
	e.fields[name] = raw
	return nil
}

// AddField is the best-effort form of TryAddField. It reports whether the
// field was stored.
func (e *HandlerError) AddField(name string, value any) bool {
	return e.TryAddField(name, value) == nil
}

// Fields returns a copy of the fields. Returns nil if none are set.
func (e *HandlerError) Fields() map[string]json.RawMessage {
	return cloneFields(e.fields)
}

// Field decodes the field name into T. A missing field and a value that does
// not decode into T both report false.
func Field[T any](e *HandlerError, name string) (T, bool) {
	return decodeField[T](e.fields, name)
}

// DetailMessage returns the message if one is set, otherwise the text of the
// cause. It reports false when neither exists; a cause with empty text counts
// as no cause. The value is computed on every call.
func (e *HandlerError) DetailMessage() (string, bool) {
	if e.message != "" {
		return e.message, true
	}
	if e.cause != nil {
		if msg := e.cause.Error(); msg != "" {
			return msg, true
		}
	}
	return "", false
}

// DisplayMessage returns DetailMessage if there is one, otherwise the reason
// phrase of the status. It never returns an empty string.
func (e *HandlerError) DisplayMessage() string {
	if msg, ok := e.DetailMessage(); ok {
		return msg
	}
	if phrase := e.status.ReasonPhrase(); phrase != "" {
		return phrase
	}
	return strconv.Itoa(int(e.status))
}

// ToProblem converts the error into a Problem, leaving the error intact.
//
// The title defaults to the reason phrase of the status. The type URL is only
// set when the error has one; unlike FromStatus no lookup URL is derived.
// Fields are copied unless the status is 401. The cause and the extensions
// are never copied.
func (e *HandlerError) ToProblem() *Problem {
	p := e.problemHead()
	e.copyFields(p, true)
	return p
}

// IntoProblem converts the error into a Problem, handing its fields over to
// the Problem instead of copying them. The error has no fields afterwards and
// should not be used again.
func (e *HandlerError) IntoProblem() *Problem {
	p := e.problemHead()
	e.copyFields(p, false)
	e.fields = nil
	return p
}

// copyFields passes the fields on to p unless the status is 401.
func (e *HandlerError) copyFields(p *Problem, clone bool) {
	if e.status == StatusUnauthorized {
		return
	}
	for name, raw := range e.fields {
		if IsReservedFieldName(name) {
			continue
		}
		if clone {
			raw = append(json.RawMessage(nil), raw...)
		}
		p.setRaw(name, raw)
	}
}

func (e *HandlerError) problemHead() *Problem {
	p := FromStatusTitleOnly(e.status)
	if e.title != "" {
		p.Title = e.title
	}
	if detail, ok := e.DetailMessage(); ok {
		p.Detail = detail
	}
	if e.typeURL != "" {
		p.Type = e.typeURL
	}
	if e.instance != "" {
		p.Instance = e.instance
	}
	return p
}

// Error returns the string representation of the error. The first form that
// applies wins:
//
//	"<status> - <title> - <detail>"
//	"<status> - <title>"
//	"<status> - <detail>"
//	"<status> of type <type>"
//	"<status> on <instance>"
//	"<status>"
//
// where <status> renders as e.g. "404 Not Found".
func (e *HandlerError) Error() string {
	var b strings.Builder
	b.WriteString(e.status.String())

	detail, hasDetail := e.DetailMessage()
	switch {
	case e.title != "" && hasDetail:
		b.WriteString(" - " + e.title + " - " + detail)
	case e.title != "":
		b.WriteString(" - " + e.title)
	case hasDetail:
		b.WriteString(" - " + detail)
	case e.typeURL != "":
		b.WriteString(" of type " + e.typeURL)
	case e.instance != "":
		b.WriteString(" on " + e.instance)
	}

	return b.String()
}

// Unwrap returns the cause for errors.Is and errors.As.
func (e *HandlerError) Unwrap() error {
	return e.cause
}

// LogValue implements slog.LogValuer. Field values are left out of logs.
func (e *HandlerError) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("status", int(e.status))}
	if e.title != "" {
		attrs = append(attrs, slog.String("title", e.title))
	}
	if detail, ok := e.DetailMessage(); ok {
		attrs = append(attrs, slog.String("detail", detail))
	}
	if e.typeURL != "" {
		attrs = append(attrs, slog.String("type", e.typeURL))
	}
	if e.instance != "" {
		attrs = append(attrs, slog.String("instance", e.instance))
	}
	if len(e.fields) > 0 {
		attrs = append(attrs, slog.Int("fields", len(e.fields)))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// AsHandlerError finds the first HandlerError in err's chain.
func AsHandlerError(err error) (*HandlerError, bool) {
	var herr *HandlerError
	if errors.As(err, &herr) {
		return herr, true
	}
	return nil, false
}
