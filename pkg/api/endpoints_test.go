package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointTableIsConsistent(t *testing.T) {
	allowed := map[string]bool{
		http.MethodGet: true, http.MethodPost: true, http.MethodPut: true,
		http.MethodPatch: true, http.MethodDelete: true,
	}
	seen := map[string]bool{}

	for _, e := range endpointTable {
		key := e.Facade + "." + e.Name
		assert.False(t, seen[key], "duplicate endpoint %s", key)
		seen[key] = true

		assert.True(t, allowed[e.Method], "%s has method %s", key, e.Method)
		assert.True(t, strings.HasPrefix(e.Path, "/"), "%s path %s", key, e.Path)
		assert.Equal(t, strings.Count(e.Path, "{"), strings.Count(e.Path, "}"), key)
	}

	assert.GreaterOrEqual(t, len(endpointTable), 150)
	assert.Len(t, endpointIndex, len(endpointTable))
}

func TestEndpointsReturnsACopy(t *testing.T) {
	table := Endpoints()
	require.Len(t, table, len(endpointTable))

	table[0].Path = "/hijacked"

	assert.NotEqual(t, "/hijacked", endpointTable[0].Path)
	login, ok := Lookup("auth", "login")
	require.True(t, ok)
	assert.Equal(t, "/auth/login", login.Path)
	assert.Len(t, Endpoints(), len(endpointTable))
}

func TestEveryFacadeIsReachable(t *testing.T) {
	expected := []string{
		"admin", "analytics", "auth", "billing", "complaint", "customer", "inventory",
		"leave", "marketplace", "notification", "operator", "order", "product",
		"staff", "task", "technician", "vendor",
	}
	assert.Equal(t, expected, Facades())

	for _, facade := range expected {
		assert.NotEmpty(t, EndpointsFor(facade), facade)
	}
	assert.Empty(t, EndpointsFor("shipping"))
}

func TestOnlyCredentialEndpointsArePublic(t *testing.T) {
	var public []string
	for _, e := range endpointTable {
		if !e.RequiresAuth {
			public = append(public, e.Facade+"."+e.Name)
		}
	}
	assert.ElementsMatch(t, []string{"auth.login", "auth.forgotPassword", "auth.resetPassword"}, public)
}

func TestEndpointExpand(t *testing.T) {
	e, ok := Lookup("leave", "getBalance")
	require.True(t, ok)
	assert.Equal(t, []string{"userId"}, e.Params())

	path, err := e.Expand(Args{
		Path:  map[string]string{"userId": "U 1/2"},
		Query: url.Values{"year": {"2024"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "/leave/balance/U%201%2F2?year=2024", path)

	_, err = e.Expand(Args{})
	assert.ErrorIs(t, err, ErrMissingParam)

	static, _ := Lookup("inventory", "issueStock")
	path, err = static.Expand(Args{})
	require.NoError(t, err)
	assert.Equal(t, "/inventory/stock/issue", path)
	assert.Equal(t, "inventory.issueStock POST /inventory/stock/issue", static.String())
}
