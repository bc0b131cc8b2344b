package registry

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}, srv.Close
}

func TestCandidateVersions(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/crates/serde", r.URL.Path)
		fmt.Fprint(w, `{"versions":[
			{"num":"1.0.2","yanked":false},
			{"num":"1.0.1","yanked":true},
			{"num":"1.0.0","yanked":false}
		]}`)
	})
	defer done()

	got, err := client.CandidateVersions("serde")
	require.NoError(t, err)
	// Yanked entries are dropped, registry order is preserved.
	assert.Equal(t, []string{"1.0.2", "1.0.0"}, got)
}

func TestCandidateVersionsCap(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"versions":[
			{"num":"0.8.0","yanked":false},
			{"num":"0.7.0","yanked":false},
			{"num":"0.6.0","yanked":false},
			{"num":"0.5.0","yanked":false},
			{"num":"0.4.0","yanked":false},
			{"num":"0.3.0","yanked":false},
			{"num":"0.2.0","yanked":false}
		]}`)
	})
	defer done()

	got, err := client.CandidateVersions("rand")
	require.NoError(t, err)
	assert.Len(t, got, MaxCandidates)
	assert.Equal(t, []string{"0.8.0", "0.7.0", "0.6.0", "0.5.0", "0.4.0"}, got)
}

func TestCandidateVersionsAllYanked(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"versions":[{"num":"0.1.0","yanked":true}]}`)
	})
	defer done()

	got, err := client.CandidateVersions("ghost")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidateVersionsBadStatus(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	defer done()

	_, err := client.CandidateVersions("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCandidateVersionsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>registry down</html>`},
		{name: "no versions array", body: `{"crate":{"name":"serde"}}`},
		{name: "version without number", body: `{"versions":[{"yanked":false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})
			defer done()

			_, err := client.CandidateVersions("serde")
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}
