package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/logging"
	"github.com/google/uuid"
)

// envelope is the backend's response wrapper. Error responses carry Message;
// success responses carry the payload under Data.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HTTPClient implements Client over the backend's JSON HTTP API.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a gateway for the given base URL. Every request gets
// the per-request timeout; tokens are read from the given source on each call
// so the gateway never caches credentials.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do performs one backend call and returns the raw payload from the response
// envelope. All failures come back as *Error; the caller never sees a raw
// transport error.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body any) (json.RawMessage, int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, 0, &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	// Absence of a token is not an error: unauthenticated endpoints simply
	// go out without the header.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, &Error{Message: err.Error()}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, c.transportError(ctx, method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, c.transportError(ctx, method, endpoint, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := FallbackMessage
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, resp.StatusCode, &Error{Message: msg, Status: resp.StatusCode}
	}
	if decodeErr != nil {
		return nil, resp.StatusCode, &Error{Message: ErrDecode.Error(), Status: resp.StatusCode, kind: ErrDecode}
	}
	return env.Data, resp.StatusCode, nil
}

func (c *HTTPClient) transportError(ctx context.Context, method, endpoint string, err error) *Error {
	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())

	c.log.Warn(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)

	if timedOut {
		return &Error{Message: ErrTimeout.Error(), kind: ErrTimeout}
	}
	return &Error{Message: ErrNetwork.Error(), kind: ErrNetwork}
}

// decode unmarshals a payload into v, normalizing failures into *Error.
func decode(data json.RawMessage, status int, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &Error{Message: ErrDecode.Error(), Status: status, kind: ErrDecode}
	}
	return nil
}

type authPayload struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	data, status, err := c.do(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return "", err
	}
	var p authPayload
	if err := decode(data, status, &p); err != nil {
		return "", err
	}
	return p.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (string, error) {
	data, status, err := c.do(ctx, http.MethodPost, "/auth/register", reg)
	if err != nil {
		return "", err
	}
	var p authPayload
	if err := decode(data, status, &p); err != nil {
		return "", err
	}
	return p.Token, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	data, status, err := c.do(ctx, http.MethodGet, "/user/profile", nil)
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := decode(data, status, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	data, status, err := c.do(ctx, http.MethodPut, "/user/profile", update)
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := decode(data, status, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) GetApplicationHistory(ctx context.Context) ([]models.ApplicationRecord, error) {
	data, status, err := c.do(ctx, http.MethodGet, "/applications", nil)
	if err != nil {
		return nil, err
	}
	var records []models.ApplicationRecord
	if err := decode(data, status, &records); err != nil {
		return nil, err
	}
	return records, nil
}

type sendPayload struct {
	SentCount int `json:"sentCount"`
}

func (c *HTTPClient) SendBatchApplications(ctx context.Context, batch models.Batch) (int, error) {
	data, status, err := c.do(ctx, http.MethodPost, "/applications/send", batch)
	if err != nil {
		return 0, err
	}
	var p sendPayload
	if err := decode(data, status, &p); err != nil {
		return 0, err
	}
	return p.SentCount, nil
}

type personalizeRequest struct {
	JobDescription string `json:"jobDescription"`
	BaseLetter     string `json:"baseLetter"`
}

type personalizePayload struct {
	PersonalizedLetter string `json:"personalizedLetter"`
}

func (c *HTTPClient) PersonalizeLetter(ctx context.Context, jobDescription, baseLetter string) (string, error) {
	req := personalizeRequest{JobDescription: jobDescription, BaseLetter: baseLetter}
	data, status, err := c.do(ctx, http.MethodPost, "/ai/personalize-letter", req)
	if err != nil {
		return "", err
	}
	var p personalizePayload
	if err := decode(data, status, &p); err != nil {
		return "", err
	}
	return p.PersonalizedLetter, nil
}
