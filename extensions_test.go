package problem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type (
	tenantID string
	userID   string
)

func TestExtensions_InsertGetRemove(t *testing.T) {
	var x Extensions

	_, ok := GetExtension[tenantID](&x)
	require.False(t, ok)

	_, replaced := InsertExtension(&x, tenantID("acme"))
	require.False(t, replaced)

	prev, replaced := InsertExtension(&x, tenantID("globex"))
	require.True(t, replaced)
	require.Equal(t, tenantID("acme"), prev)

	got, ok := GetExtension[tenantID](&x)
	require.True(t, ok)
	require.Equal(t, tenantID("globex"), got)
	require.Equal(t, 1, x.Len())

	removed, ok := RemoveExtension[tenantID](&x)
	require.True(t, ok)
	require.Equal(t, tenantID("globex"), removed)
	require.Equal(t, 0, x.Len())

	_, ok = RemoveExtension[tenantID](&x)
	require.False(t, ok)
}

func TestExtensions_KeyedByType(t *testing.T) {
	var x Extensions
	InsertExtension(&x, tenantID("acme"))
	InsertExtension(&x, userID("alice"))
	InsertExtension(&x, "plain string")

	require.Equal(t, 3, x.Len())

	tenant, _ := GetExtension[tenantID](&x)
	user, _ := GetExtension[userID](&x)
	plain, _ := GetExtension[string](&x)
	require.Equal(t, tenantID("acme"), tenant)
	require.Equal(t, userID("alice"), user)
	require.Equal(t, "plain string", plain)
}

func TestExtensions_SetUsesDynamicType(t *testing.T) {
	var x Extensions
	x.Set(userID("alice"))
	x.Set(nil)

	var stringer fmt.Stringer
	x.Set(stringer)

	require.Equal(t, 1, x.Len())
	got, ok := GetExtension[userID](&x)
	require.True(t, ok)
	require.Equal(t, userID("alice"), got)
}

func TestExtensions_CloneAndClear(t *testing.T) {
	var x Extensions
	InsertExtension(&x, tenantID("acme"))

	clone := x.Clone()
	InsertExtension(&clone, userID("alice"))

	require.Equal(t, 1, x.Len())
	require.Equal(t, 2, clone.Len())

	x.Clear()
	require.Equal(t, 0, x.Len())
	require.Equal(t, 2, clone.Len())

	empty := Extensions{}
	emptyClone := empty.Clone()
	require.Equal(t, 0, emptyClone.Len())
}

func TestHandlerError_Extensions(t *testing.T) {
	e := NewError(StatusForbidden)
	InsertExtension(e.Extensions(), tenantID("acme"))

	got, ok := GetExtension[tenantID](e.Extensions())
	require.True(t, ok)
	require.Equal(t, tenantID("acme"), got)

	p := e.ToProblem()
	require.Nil(t, p.Fields())
	require.NotContains(t, p.JSONString(), "acme")
}
