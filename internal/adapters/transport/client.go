package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	maxResponseBytes      = 4 << 20
	defaultRequestTimeout = 15 * time.Second

	headerAccept        = "Accept"
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies to requests whose context carries no deadline.
	Timeout time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int
	Logger    zerolog.Logger
}

// Request describes one call. Body is JSON encoded unless it is a []byte,
// string, io.Reader or url.Values, which are sent as-is.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
}

// Client executes requests against the backend and mirrors the session
// bearer token.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	limiter      *rate.Limiter
	logger       zerolog.Logger
	newRequestID func() string

	mu    sync.RWMutex
	token string
}

var _ ports.TokenMirror = (*Client)(nil)

func New(opts Options) (*Client, error) {
	baseURL, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		baseURL:      baseURL,
		httpClient:   httpClient,
		timeout:      timeout,
		limiter:      limiter,
		logger:       opts.Logger,
		newRequestID: uuid.NewString,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// Do sends req and returns the unwrapped JSON payload, or nil when the
// response carries no JSON body.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	header := make(http.Header, len(req.Header)+4)
	for key, values := range req.Header {
		header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	if header.Get(headerAccept) == "" {
		header.Set(headerAccept, contentTypeJSON)
	}

	body, err := encodeBody(req.Body, header)
	if err != nil {
		return nil, err
	}

	if token := c.Token(); token != "" {
		header.Set(headerAuthorization, "Bearer "+token)
	}
	requestID := c.newRequestID()
	header.Set(headerRequestID, requestID)

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(requestCtx); err != nil {
			return nil, &domain.NetworkError{Method: method, URL: endpoint, Err: err}
		}
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	httpReq.Header = header

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("url", endpoint).
			Msg("request failed without response")
		return nil, &domain.NetworkError{Method: method, URL: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request completed")

	payload, decodeErr := decodeJSON(resp)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, payload)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, decodeErr)
	}

	return unwrapEnvelope(payload), nil
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	raw := path
	if !absoluteURLPattern.MatchString(path) {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		raw = c.baseURL + path
	}

	if len(query) == 0 {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse request url: %w", err)
	}
	values := parsed.Query()
	for key, vals := range query {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout)
}

func normalizeBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(baseURL, "/"), nil
}

func encodeBody(body any, header http.Header) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		if header.Get(headerContentType) == "" {
			header.Set(headerContentType, contentTypeJSON)
		}
		return strings.NewReader(b), nil
	case url.Values:
		if header.Get(headerContentType) == "" {
			header.Set(headerContentType, contentTypeForm)
		}
		return strings.NewReader(b.Encode()), nil
	case io.Reader:
		return b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		header.Set(headerContentType, contentTypeJSON)
		return bytes.NewReader(data), nil
	}
}

func decodeJSON(resp *http.Response) (json.RawMessage, error) {
	if !isJSON(resp.Header.Get(headerContentType)) {
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, errors.New("decode response body: invalid json")
	}

	return json.RawMessage(data), nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, contentTypeJSON)
	}
	return mediaType == contentTypeJSON || strings.HasSuffix(mediaType, "+json")
}

func unwrapEnvelope(payload json.RawMessage) json.RawMessage {
	if len(payload) == 0 || payload[0] != '{' {
		return payload
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return payload
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return payload
	}

	return envelope.Data
}

type errorBody struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details"`
}

func newAPIError(status int, payload json.RawMessage) *domain.APIError {
	apiErr := &domain.APIError{Status: status}

	var body errorBody
	if len(payload) > 0 && payload[0] == '{' && json.Unmarshal(payload, &body) == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
		apiErr.Code = body.Code
		if len(body.Details) > 0 && !bytes.Equal(body.Details, []byte("null")) {
			apiErr.Details = decodeAny(body.Details)
		} else {
			apiErr.Details = decodeAny(payload)
		}
	} else if len(payload) > 0 {
		apiErr.Details = decodeAny(payload)
	}

	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", status)
	}

	return apiErr
}

func decodeAny(raw json.RawMessage) any {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}
