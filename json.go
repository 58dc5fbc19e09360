package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	platformerrors "github.com/jmgilman/go/errors"
)

// problemMembers is the wire shape of the core members.
type problemMembers struct {
	Type     string     `json:"type,omitempty"`
	Status   StatusCode `json:"status,omitempty"`
	Title    string     `json:"title"`
	Detail   string     `json:"detail,omitempty"`
	Instance string     `json:"instance,omitempty"`
}

// MarshalJSON encodes the problem as a single flat object. Core members come
// first, followed by the extension fields in key order. Absent members are
// omitted; title is always written.
func (p Problem) MarshalJSON() ([]byte, error) {
	core, err := json.Marshal(problemMembers{
		Type:     p.Type,
		Status:   p.Status,
		Title:    p.Title,
		Detail:   p.Detail,
		Instance: p.Instance,
	})
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to marshal problem")
	}
	if len(p.fields) == 0 {
		return core, nil
	}

	var buf bytes.Buffer
	buf.Write(core[:len(core)-1])

	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to marshal problem")
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(p.fields[k])
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a problem document.
//
// The title member is required. A null or missing status decodes to an
// absent status. Every member that is not a core member becomes an extension
// field.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "failed to decode problem")
	}

	if raw, ok := members[fieldTitle]; !ok || string(raw) == "null" {
		return platformerrors.Wrap(ErrMissingTitle, platformerrors.CodeInvalidInput, "failed to decode problem")
	}

	var out Problem
	for _, m := range []struct {
		name string
		dst  *string
	}{
		{fieldType, &out.Type},
		{fieldTitle, &out.Title},
		{fieldDetail, &out.Detail},
		{fieldInstance, &out.Instance},
	} {
		if raw, ok := members[m.name]; ok {
			if err := json.Unmarshal(raw, m.dst); err != nil {
				return platformerrors.Wrap(err, platformerrors.CodeInvalidInput,
					fmt.Sprintf("failed to decode problem member %q", m.name))
			}
		}
	}

	if raw, ok := members[fieldStatus]; ok {
		if err := json.Unmarshal(raw, &out.Status); err != nil {
			return err
		}
	}

	for name, raw := range members {
		if IsReservedFieldName(name) {
			continue
		}
		normalized, err := normalizeRaw(raw)
		if err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInvalidInput,
				fmt.Sprintf("failed to decode problem member %q", name))
		}
		out.setRaw(name, normalized)
	}

	*p = out
	return nil
}

// normalizeRaw rewrites raw into the form json.Marshal produces, so a decoded
// field compares equal to the same value set through SetField.
func normalizeRaw(raw json.RawMessage) (json.RawMessage, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, err
	}
	var escaped bytes.Buffer
	json.HTMLEscape(&escaped, compact.Bytes())
	return escaped.Bytes(), nil
}

// JSONBytes returns the JSON encoding of the problem.
//
// Encoding only fails if the problem holds invalid raw JSON, which the
// package never stores, so a failure panics.
func (p *Problem) JSONBytes() []byte {
	data, err := json.Marshal(p)
	if err != nil {
		panic(fmt.Sprintf("problem: marshal: %v", err))
	}
	return data
}

// JSONString returns the JSON encoding of the problem as a string.
func (p *Problem) JSONString() string {
	return string(p.JSONBytes())
}
