package userinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-userinfo-client/oauthmodel"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Default connect and read timeouts, a deliberate bound against a hung
// provider. Override with WithTimeouts or WithHTTPClient.
const (
	DefaultConnectTimeout = 30 * time.Second
	DefaultReadTimeout    = 30 * time.Second
)

// Retriever fetches claims about the authenticated subject from an OAuth2 /
// OIDC UserInfo endpoint. It holds no mutable state after construction and
// is safe for concurrent use. Failures are always returned as *Error.
type Retriever struct {
	httpClient     *http.Client
	method         string
	connectTimeout time.Duration
	readTimeout    time.Duration
	logger         zerolog.Logger
}

type Option func(*Retriever)

// WithHTTPClient supplies a caller-owned HTTP client. Timeout options are
// ignored when a client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Retriever) {
		r.httpClient = client
	}
}

// WithTimeouts overrides the default 30s connect and read timeouts.
func WithTimeouts(connect, read time.Duration) Option {
	return func(r *Retriever) {
		r.connectTimeout = connect
		r.readTimeout = read
	}
}

// WithMethod sets the HTTP method for the UserInfo request. OIDC Core
// permits GET (the default) and POST, with the token in the header either way.
func WithMethod(method string) Option {
	return func(r *Retriever) {
		r.method = method
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Retriever) {
		r.logger = logger
	}
}

func New(opts ...Option) *Retriever {
	r := &Retriever{
		method:         http.MethodGet,
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.httpClient == nil {
		r.httpClient = newHTTPClient(r.connectTimeout, r.readTimeout)
	}
	return r
}

func newHTTPClient(connect, read time.Duration) *http.Client {
	return &http.Client{
		Timeout: read,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: connect}).DialContext,
			TLSHandshakeTimeout: connect,
		},
	}
}

// Retrieve performs one bearer-authenticated exchange with the UserInfo
// endpoint and returns the decoded claims. Exactly one of the claims map and
// the error is non-nil. The endpoint and token are the caller's
// responsibility to validate; no retry is attempted here. Cancelling ctx
// aborts the in-flight request and surfaces as a transport failure.
func (r *Retriever) Retrieve(ctx context.Context, endpoint, accessToken string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, nil)
	if err != nil {
		return nil, newTransportError(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	r.logger.Debug().
		Str("request_id", requestID).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Msg("UserInfo response received")

	if resp.StatusCode != http.StatusOK {
		return nil, r.providerError(endpoint, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newSuccessBodyError(err)
	}

	var claims map[string]any
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, newSuccessBodyError(err)
	}
	if claims == nil {
		// "null" unmarshals cleanly into a nil map
		return nil, newSuccessBodyError(errors.New("response body is not a JSON object"))
	}
	return claims, nil
}

// RetrieveWithTokenSource pulls the current token from source and delegates
// to Retrieve. Token acquisition and refresh stay the source's concern.
func (r *Retriever) RetrieveWithTokenSource(ctx context.Context, endpoint string, source oauth2.TokenSource) (map[string]any, error) {
	tok, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("token source: %w", err)
	}
	return r.Retrieve(ctx, endpoint, tok.AccessToken)
}

func (r *Retriever) providerError(endpoint string, resp *http.Response) *Error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newErrorBodyError(err)
	}
	errResp, err := oauthmodel.ParseErrorResponse(body)
	if err != nil {
		return newErrorBodyError(err)
	}

	var desc strings.Builder
	desc.WriteString("An error occurred while attempting to access the UserInfo Endpoint -> Error details: [")
	fmt.Fprintf(&desc, "UserInfo Uri: %s", endpoint)
	fmt.Fprintf(&desc, ", Http Status: %d", resp.StatusCode)
	if errResp.Error != "" {
		fmt.Fprintf(&desc, ", Error Code: %s", errResp.Error)
	}
	if errResp.ErrorDescription != "" {
		fmt.Fprintf(&desc, ", Error Description: %s", errResp.ErrorDescription)
	}
	desc.WriteString("]")

	return &Error{
		Code:        ErrorCodeInvalidResponse,
		Description: desc.String(),
		Kind:        KindProviderError,
	}
}
