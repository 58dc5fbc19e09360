package problem

import (
	"encoding/json"
	"strconv"
)

// MediaType is the content type of a serialized Problem.
const MediaType = "application/problem+json"

// typeURLBase is the prefix of the lookup URL derived from a status code.
const typeURLBase = "https://httpstatuses.com/"

// Problem is an RFC 7807 problem document.
//
// Optional members use their zero value for "absent": an empty string for
// Type, Detail and Instance, and zero for Status. Title is always written.
// Extension fields are kept as raw JSON and flattened into the same object on
// the wire.
type Problem struct {
	// Type identifies the problem type.
	Type string

	// Status is the HTTP status of this occurrence. Zero means absent.
	Status StatusCode

	// Title is a short, human-readable summary of the problem type.
	Title string

	// Detail explains this occurrence of the problem.
	Detail string

	// Instance identifies this occurrence of the problem.
	Instance string

	fields map[string]json.RawMessage
}

// New creates a Problem with the given title and nothing else set.
func New(title string) *Problem {
	return &Problem{Title: title}
}

// FromStatus creates a Problem whose title is the reason phrase of status and
// whose type is the lookup URL for status.
//
// Example:
//
//	p := problem.FromStatus(problem.StatusNotFound)
//	// p.Type == "https://httpstatuses.com/404", p.Title == "Not Found"
func FromStatus(status StatusCode) *Problem {
	p := FromStatusTitleOnly(status)
	p.Type = TypeURLForStatus(status)
	return p
}

// FromStatusTitleOnly is like FromStatus but leaves the type absent.
func FromStatusTitleOnly(status StatusCode) *Problem {
	return &Problem{
		Status: status,
		Title:  status.ReasonPhrase(),
	}
}

// TypeURLForStatus returns the lookup URL for status.
func TypeURLForStatus(status StatusCode) string {
	return typeURLBase + strconv.Itoa(int(status))
}

// WithType sets the type URL and returns the receiver.
func (p *Problem) WithType(typeURL string) *Problem {
	p.Type = typeURL
	return p
}

// WithStatus sets the status and returns the receiver.
func (p *Problem) WithStatus(status StatusCode) *Problem {
	p.Status = status
	return p
}

// WithTitle sets the title and returns the receiver.
func (p *Problem) WithTitle(title string) *Problem {
	p.Title = title
	return p
}

// WithDetail sets the detail and returns the receiver.
func (p *Problem) WithDetail(detail string) *Problem {
	p.Detail = detail
	return p
}

// WithInstance sets the instance and returns the receiver.
func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

// HasStatus reports whether a status is set.
func (p *Problem) HasStatus() bool {
	return p.Status != 0
}

// ResponseStatus returns the status to send with this problem: Status when
// present, 500 otherwise. Status itself is left untouched.
func (p *Problem) ResponseStatus() StatusCode {
	if !p.HasStatus() {
		return StatusInternalServerError
	}
	return p.Status
}

// SetField stores value under name as an extension field.
//
// It fails with ErrReservedFieldName for a core member name and with
// ErrFieldEncoding when value cannot be encoded as JSON. On failure the
// problem is unchanged.
func (p *Problem) SetField(name string, value any) error {
	raw, err := encodeField(name, value)
	if err != nil {
		return err
	}
	p.setRaw(name, raw)
	return nil
}

// WithField is the best-effort form of SetField: a field that cannot be set
// is skipped silently. It returns the receiver.
func (p *Problem) WithField(name string, value any) *Problem {
	_ = p.SetField(name, value)
	return p
}

// RawField returns the encoded value of an extension field.
func (p *Problem) RawField(name string) (json.RawMessage, bool) {
	raw, ok := p.fields[name]
	return raw, ok
}

// DeleteField removes an extension field and reports whether it existed.
func (p *Problem) DeleteField(name string) bool {
	if _, ok := p.fields[name]; !ok {
		return false
	}
	delete(p.fields, name)
	if len(p.fields) == 0 {
		p.fields = nil
	}
	return true
}

// Fields returns a copy of the extension fields. Returns nil if none are set.
func (p *Problem) Fields() map[string]json.RawMessage {
	return cloneFields(p.fields)
}

// GetField decodes the extension field name into T. A missing field and a
// value that does not decode into T both report false.
//
// Example:
//
//	n, ok := problem.GetField[int](p, "retries")
func GetField[T any](p *Problem, name string) (T, bool) {
	return decodeField[T](p.fields, name)
}

func (p *Problem) setRaw(name string, raw json.RawMessage) {
	if p.fields == nil {
		p.fields = make(map[string]json.RawMessage)
	}
	p.fields[name] = raw
}
