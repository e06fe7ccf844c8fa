package commands

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsaacod/Tugas3-EAI/internal/graph"
	"github.com/tsaacod/Tugas3-EAI/internal/store"
)

func setupTestServer(t *testing.T) *httptest.Server {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Migrate())
	srv, err := graph.NewServer(st)
	require.NoError(t, err)
	ts := httptest.NewServer(newMux(srv))
	t.Cleanup(ts.Close)
	return ts
}

func postGraphQL(t *testing.T, ts *httptest.Server, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/graphql", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestGraphQLEndpointPost(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := postGraphQL(t, ts, `{"query":"mutation { createUser(name: \"Ada\", email: \"ada@example.com\") { id name email } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"createUser":{"id":1,"name":"Ada","email":"ada@example.com"}}}`, body)
}

func TestGraphQLEndpointGetQuery(t *testing.T) {
	ts := setupTestServer(t)

	_, _ = postGraphQL(t, ts, `{"query":"mutation { createUser(name: \"Ada\", email: \"ada@example.com\") { id } }"}`)

	q := url.Values{"query": {`{ getUser(id: 1) { name } }`}}
	resp, err := http.Get(ts.URL + "/graphql?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"getUser":{"name":"Ada"}}}`, string(data))
}

func TestGraphQLEndpointErrors(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := postGraphQL(t, ts, `{"query":"{ getUser(id: 7) { id } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "not found")
}

func TestGraphQLEndpointMethodNotAllowed(t *testing.T) {
	ts := setupTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/graphql", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
