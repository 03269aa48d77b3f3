package rackcorp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Settings{
		Credential: Credential{UUID: "uuid", Secret: "secret"},
		BaseURL:    server.URL + "/api/",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)

	return client
}

func Test_Settings_SetDefaults(t *testing.T) {
	t.Parallel()

	settings := Settings{}
	settings.SetDefaults()

	assert.Equal(t, "https://api.rackcorp.net/api/", settings.BaseURL)
	assert.Equal(t, "v2.8", settings.APIVersion)
	assert.True(t, strings.HasPrefix(settings.UserAgent, "certbot-dns-rackcorp/"))
	assert.Equal(t, 30*time.Second, settings.HTTPClient.Timeout)
}

func Test_Settings_SetDefaults_baseURLTrailingSlash(t *testing.T) {
	t.Parallel()

	settings := Settings{BaseURL: "https://api.example.com/api"}
	settings.SetDefaults()

	assert.Equal(t, "https://api.example.com/api/", settings.BaseURL)
}

func Test_New_credentialRequired(t *testing.T) {
	t.Parallel()

	_, err := New(Settings{})

	assert.ErrorIs(t, err, ErrCredentialNotSet)
}

func Test_Client_requestHeaders(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2.8/dns/domain", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "uuid", username)
		assert.Equal(t, "secret", password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": "OK", "message": "", "data": []}`))
	})

	_, err := client.DomainList(context.Background())

	assert.NoError(t, err)
}

func Test_Client_httpStatusFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied"))
	})

	_, err := client.DomainList(context.Background())

	assert.ErrorIs(t, err, ErrHTTPStatusNotValid)
	assert.NotErrorIs(t, err, ErrAPICodeNotOK)
	assert.ErrorContains(t, err, "403")
	assert.ErrorContains(t, err, "access denied")
}

func Test_Client_apiCodeFailure(t *testing.T) {
	t.Parallel()

	// HTTP 200 carrying an application level failure in the envelope,
	// which must stay distinguishable from an HTTP status failure.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(
			`{"code": "ERR_X", "message": "bad request", "debug": {"hint": "detail"}}`))
	})

	_, err := client.DomainList(context.Background())

	assert.ErrorIs(t, err, ErrAPICodeNotOK)
	assert.NotErrorIs(t, err, ErrHTTPStatusNotValid)
	assert.ErrorContains(t, err, "ERR_X")
	assert.ErrorContains(t, err, "bad request")
}
