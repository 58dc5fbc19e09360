package problem

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Finish(t *testing.T) {
	cause := stderrors.New("constraint violation")

	e := NewBuilder(StatusBadRequest).
		Status(StatusUnprocessableEntity).
		Title("Invalid order").
		Messagef("quantity must be positive, got %d", -1).
		TypeURL("https://example.com/invalid-order").
		Instance("/orders/42").
		Field("field", "quantity").
		Fields(map[string]any{"min": 1, "status": "ignored"}).
		Extension(requestID("req-7")).
		Cause(cause).
		Finish()

	require.Equal(t, StatusUnprocessableEntity, e.Status())
	require.Equal(t, "Invalid order", e.Title())
	require.Equal(t, "quantity must be positive, got -1", e.Message())
	require.Equal(t, "https://example.com/invalid-order", e.TypeURL())
	require.Equal(t, "/orders/42", e.Instance())
	require.Same(t, cause, e.Cause())
	require.True(t, stderrors.Is(e, cause))

	require.Len(t, e.Fields(), 2)
	minimum, ok := Field[int](e, "min")
	require.True(t, ok)
	require.Equal(t, 1, minimum)

	id, ok := GetExtension[requestID](e.Extensions())
	require.True(t, ok)
	require.Equal(t, requestID("req-7"), id)
}

func TestBuilder_Field_SkipsInvalid(t *testing.T) {
	e := NewBuilder(StatusBadRequest).
		Field("title", "reserved").
		Field("fn", func() {}).
		Finish()

	require.Nil(t, e.Fields())
}

func TestBuilder_Message(t *testing.T) {
	e := NewBuilder(StatusBadRequest).Message("plain").Finish()
	require.Equal(t, "plain", e.Message())
}

func TestBuilder_WithExtensions(t *testing.T) {
	e := NewBuilder(StatusInternalServerError).
		WithExtensions(func(x *Extensions) {
			InsertExtension[error](x, stderrors.New("stored as interface"))
		}).
		Finish()

	stored, ok := GetExtension[error](e.Extensions())
	require.True(t, ok)
	require.EqualError(t, stored, "stored as interface")
}

func TestBuilder_FinishHandsOverState(t *testing.T) {
	b := NewBuilder(StatusConflict).Title("t").Field("a", 1).Extension(requestID("r"))

	first := b.Finish()
	second := b.Finish()

	require.Equal(t, "t", first.Title())
	require.Len(t, first.Fields(), 1)
	require.Equal(t, 1, first.Extensions().Len())

	require.Equal(t, StatusConflict, second.Status())
	require.Empty(t, second.Title())
	require.Nil(t, second.Fields())
	require.Equal(t, 0, second.Extensions().Len())

	// the builder no longer shares maps with the first error
	b.Field("b", 2)
	require.Len(t, first.Fields(), 1)
}

func TestTryNewBuilder(t *testing.T) {
	b, err := TryNewBuilder(429)
	require.NoError(t, err)
	require.Equal(t, StatusTooManyRequests, b.Finish().Status())

	b, err = TryNewBuilder(7)
	require.Nil(t, b)
	require.True(t, stderrors.Is(err, ErrInvalidStatusCode))
}
