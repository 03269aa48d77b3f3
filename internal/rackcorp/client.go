package rackcorp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"
)

const libraryVersion = "0.1.0"

type Logger interface {
	Debug(s string)
}

type Settings struct {
	// Credential is the API key pair and must be set.
	Credential Credential
	// BaseURL defaults to https://api.rackcorp.net/api/ and is
	// normalized to end with a trailing slash.
	BaseURL string
	// APIVersion defaults to v2.8.
	APIVersion string
	// UserAgent defaults to the library name, version and Go runtime version.
	UserAgent string
	// HTTPClient defaults to a client with a 30 seconds timeout.
	HTTPClient *http.Client
	// Logger defaults to a no-op logger.
	Logger Logger
}

func (s *Settings) SetDefaults() {
	if s.BaseURL == "" {
		s.BaseURL = "https://api.rackcorp.net/api/"
	}
	if !strings.HasSuffix(s.BaseURL, "/") {
		s.BaseURL += "/"
	}
	if s.APIVersion == "" {
		s.APIVersion = "v2.8"
	}
	if s.UserAgent == "" {
		s.UserAgent = "certbot-dns-rackcorp/" + libraryVersion +
			" (" + runtime.Version() + ")"
	}
	if s.HTTPClient == nil {
		const defaultTimeout = 30 * time.Second
		s.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if s.Logger == nil {
		s.Logger = noopLogger{}
	}
}

func (s Settings) Validate() (err error) {
	if !s.Credential.isSet() {
		return fmt.Errorf("%w", ErrCredentialNotSet)
	}

	_, err = url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	}

	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string) {}

// Client interacts with the RackCorp HTTP API. Reads go through the
// versioned REST endpoints and record mutations go through the legacy
// json.php command endpoint.
type Client struct {
	credential Credential
	baseURL    string
	apiVersion string
	userAgent  string
	httpClient *http.Client
	logger     Logger
}

func New(settings Settings) (client *Client, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return &Client{
		credential: settings.Credential,
		baseURL:    settings.BaseURL,
		apiVersion: settings.APIVersion,
		userAgent:  settings.UserAgent,
		httpClient: settings.HTTPClient,
		logger:     settings.Logger,
	}, nil
}

func (c *Client) get(ctx context.Context, path string) (data json.RawMessage, err error) {
	return c.do(ctx, http.MethodGet, c.baseURL+c.apiVersion+"/"+path, nil)
}

func (c *Client) del(ctx context.Context, path string) (data json.RawMessage, err error) {
	return c.do(ctx, http.MethodDelete, c.baseURL+c.apiVersion+"/"+path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (data json.RawMessage, err error) {
	return c.do(ctx, http.MethodPost, c.baseURL+c.apiVersion+"/"+path, body)
}

// legacyPost sends a command body to the json.php endpoint which predates
// the versioned REST paths but is still the only way to mutate records.
func (c *Client) legacyPost(ctx context.Context, body any) (data json.RawMessage, err error) {
	return c.do(ctx, http.MethodPost, c.baseURL+"rest/"+c.apiVersion+"/json.php", body)
}

func (c *Client) do(ctx context.Context, method, url string, body any) (
	data json.RawMessage, err error) {
	var bodyReader io.Reader
	if body != nil {
		buffer := bytes.NewBuffer(nil)
		encoder := json.NewEncoder(buffer)
		err = encoder.Encode(body)
		if err != nil {
			return nil, fmt.Errorf("json encoding request body: %w", err)
		}
		bodyReader = buffer
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.SetBasicAuth(c.credential.UUID, c.credential.Secret)

	c.logger.Debug("request: " + method + " " + url)
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	c.logger.Debug("response: " + response.Status)

	if response.StatusCode/100 != 2 { //nolint:gomnd
		return nil, fmt.Errorf("%w: %d: %s",
			ErrHTTPStatusNotValid, response.StatusCode, bodyToSingleLine(response.Body))
	}

	var envelope struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Debug   json.RawMessage `json:"debug"`
		Data    json.RawMessage `json:"data"`
	}
	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&envelope)
	if err != nil {
		return nil, fmt.Errorf("json decoding response body: %w", err)
	}

	// Even an HTTP 2xx response can carry an application level
	// failure in its envelope code.
	if envelope.Code != "OK" {
		if len(envelope.Debug) > 0 {
			c.logger.Debug("API error debug info: " + string(envelope.Debug))
		}
		return nil, fmt.Errorf("%w: %q: %s",
			ErrAPICodeNotOK, envelope.Code, envelope.Message)
	}

	return envelope.Data, nil
}
