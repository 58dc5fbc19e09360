package problem

import (
	"encoding/json"
	"fmt"
)

// Builder accumulates the parts of a HandlerError. Every setter returns the
// builder for chaining; Finish produces the error.
//
// Example:
//
//	err := problem.NewBuilder(problem.StatusUnprocessableEntity).
//	    Title("Invalid order").
//	    Messagef("quantity must be positive, got %d", qty).
//	    Field("field", "quantity").
//	    Cause(validationErr).
//	    Finish()
type Builder struct {
	status     StatusCode
	title      string
	message    string
	typeURL    string
	instance   string
	fields     map[string]json.RawMessage
	extensions Extensions
	cause      error
}

// NewBuilder starts a HandlerError with the given status.
func NewBuilder(status StatusCode) *Builder {
	return &Builder{status: status}
}

// TryNewBuilder is NewBuilder for an integer status.
func TryNewBuilder(code int) (*Builder, error) {
	status, err := ParseStatusCode(code)
	if err != nil {
		return nil, err
	}
	return NewBuilder(status), nil
}

// Status replaces the status.
func (b *Builder) Status(status StatusCode) *Builder {
	b.status = status
	return b
}

// Title sets the title. Without one the reason phrase of the status is used.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Message sets the human-readable message that becomes the problem detail.
func (b *Builder) Message(message string) *Builder {
	b.message = message
	return b
}

// Messagef sets a formatted message.
func (b *Builder) Messagef(format string, args ...any) *Builder {
	b.message = fmt.Sprintf(format, args...)
	return b
}

// TypeURL sets the URL identifying the problem type.
func (b *Builder) TypeURL(typeURL string) *Builder {
	b.typeURL = typeURL
	return b
}

// Instance sets the URI identifying this occurrence of the problem.
func (b *Builder) Instance(instance string) *Builder {
	b.instance = instance
	return b
}

// Field adds a field. Reserved names and values that cannot be encoded are
// skipped silently.
func (b *Builder) Field(name string, value any) *Builder {
	raw, err := encodeField(name, value)
	if err != nil {
		return b
	}
	if b.fields == nil {
		b.fields = make(map[string]json.RawMessage)
	}
	b.fields[name] = raw
	return b
}

// Fields adds every entry of fields with the semantics of Field.
func (b *Builder) Fields(fields map[string]any) *Builder {
	for name, value := range fields {
		b.Field(name, value)
	}
	return b
}

// Extension stores v as a typed extension under its dynamic type.
func (b *Builder) Extension(v any) *Builder {
	b.extensions.Set(v)
	return b
}

// WithExtensions gives f access to the extensions, for values that must be
// stored under an interface type via InsertExtension.
func (b *Builder) WithExtensions(f func(*Extensions)) *Builder {
	f(&b.extensions)
	return b
}

// Cause attaches the underlying error.
func (b *Builder) Cause(cause error) *Builder {
	b.cause = cause
	return b
}

// Finish returns the HandlerError. The builder hands its state over and is
// empty afterwards, apart from the status.
func (b *Builder) Finish() *HandlerError {
	e := &HandlerError{
		status:     b.status,
		title:      b.title,
		message:    b.message,
		typeURL:    b.typeURL,
		instance:   b.instance,
		fields:     b.fields,
		cause:      b.cause,
		extensions: b.extensions,
	}
	*b = Builder{status: b.status}
	return e
}
