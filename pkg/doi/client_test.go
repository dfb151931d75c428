package doi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := NewClient()
	c.BaseURL = server.URL + "/"
	return c
}

func TestExists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/10.1109/TASC.2023.3340648", r.URL.Path)
		w.WriteHeader(http.StatusFound)
	})
	assert.NoError(t, c.Exists("10.1109/TASC.2023.3340648"))
}

func TestExistsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.ErrorIs(t, c.Exists("10.0/nope"), ErrNotFound)
}

func TestExistsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	c := NewClient()
	c.BaseURL = server.URL + "/"
	server.Close()

	err := c.Exists("10.0/unreachable")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
