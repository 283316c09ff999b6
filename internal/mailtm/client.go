// Package mailtm is a client for the mail.tm disposable-email API.
//
// The client is deliberately thin: one blocking HTTP call per
// operation with a fixed timeout, no retries, no backoff, and no
// client-held auth state. Login returns an immutable Session that
// authenticated calls take explicitly.
package mailtm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cevapi/mailtm/internal/hydra"
)

const (
	defaultBaseURL = "https://api.mail.tm"
	defaultTimeout = 20 * time.Second
	userAgent      = "mailtm-cli/2.0 (+https://mail.tm)"

	// Error bodies are truncated to keep messages readable.
	maxErrorBody = 300
)

// Session is an authenticated mail.tm session: the bearer token plus
// the account id it was issued for. Sessions are immutable.
type Session struct {
	Token     string
	AccountID string
}

// Client performs mail.tm API calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests and mirrors).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a mail.tm API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s -> HTTP %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += " | " + e.Body
	}
	return msg
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// do performs a single HTTP request. There is no retry: a call either
// completes, fails, or times out. The response body and its
// Content-Type are returned; non-2xx statuses surface as *APIError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, sess *Session) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/ld+json, application/json;q=0.9")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(data), maxErrorBody),
		}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, address, password string) (Session, error) {
	payload, err := json.Marshal(map[string]string{
		"address":  address,
		"password": password,
	})
	if err != nil {
		return Session{}, fmt.Errorf("marshal credentials: %w", err)
	}

	data, _, err := c.do(ctx, http.MethodPost, "/token", "", payload, nil)
	if err != nil {
		return Session{}, err
	}

	var resp struct {
		Token string `json:"token"`
		ID    string `json:"id"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return Session{}, fmt.Errorf("parse token response: %w", err)
	}
	if resp.Token == "" {
		return Session{}, errors.New("login failed: no token in response")
	}
	return Session{Token: resp.Token, AccountID: resp.ID}, nil
}

// Me returns the account the session belongs to.
func (c *Client) Me(ctx context.Context, sess Session) (Account, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/me", "", nil, &sess)
	if err != nil {
		return Account{}, err
	}
	var acct Account
	if err := json.Unmarshal(data, &acct); err != nil {
		return Account{}, fmt.Errorf("parse account: %w", err)
	}
	return acct, nil
}

// AccountJSON returns the raw account record, for pass-through output.
func (c *Client) AccountJSON(ctx context.Context, sess Session, id string) (json.RawMessage, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/accounts/"+id, "", nil, &sess)
	return data, err
}

// CreateAccount registers a new account and returns the raw record.
// Registration needs no session.
func (c *Client) CreateAccount(ctx context.Context, address, password string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{
		"address":  address,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal account: %w", err)
	}
	data, _, err := c.do(ctx, http.MethodPost, "/accounts", "", payload, nil)
	return data, err
}

// DeleteAccount removes an account by id.
func (c *Client) DeleteAccount(ctx context.Context, sess Session, id string) error {
	_, _, err := c.do(ctx, http.MethodDelete, "/accounts/"+id, "", nil, &sess)
	return err
}

// ListDomains returns one page of the public domain listing.
func (c *Client) ListDomains(ctx context.Context, page int) (DomainPage, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/domains?page="+strconv.Itoa(page), "", nil, nil)
	if err != nil {
		return DomainPage{}, err
	}
	return DecodeDomains(hydra.Normalize(data)), nil
}

// DomainJSON returns the raw domain record, for pass-through output.
func (c *Client) DomainJSON(ctx context.Context, id string) (json.RawMessage, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/domains/"+id, "", nil, nil)
	return data, err
}

// PickDomain returns a domain usable for new accounts: the first
// active one on the first page, else the first listed.
func (c *Client) PickDomain(ctx context.Context) (string, error) {
	page, err := c.ListDomains(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(page.Items) == 0 {
		return "", errors.New("no domains available")
	}
	for _, d := range page.Items {
		if d.Active() && d.Host() != "" {
			return d.Host(), nil
		}
	}
	return page.Items[0].Host(), nil
}

// ListMessages returns one page of the session's inbox.
func (c *Client) ListMessages(ctx context.Context, sess Session, page int) (MessagePage, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/messages?page="+strconv.Itoa(page), "", nil, &sess)
	if err != nil {
		return MessagePage{}, err
	}
	return DecodeMessages(hydra.Normalize(data)), nil
}

// GetMessage returns the full detail of one message.
func (c *Client) GetMessage(ctx context.Context, sess Session, id string) (Message, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/messages/"+id, "", nil, &sess)
	if err != nil {
		return Message{}, err
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("parse message: %w", err)
	}
	return msg, nil
}

// DeleteMessage removes a message by id.
func (c *Client) DeleteMessage(ctx context.Context, sess Session, id string) error {
	_, _, err := c.do(ctx, http.MethodDelete, "/messages/"+id, "", nil, &sess)
	return err
}

// MarkSeen flags a message as read. The API only accepts partial
// updates as merge-patch documents.
func (c *Client) MarkSeen(ctx context.Context, sess Session, id string) error {
	_, _, err := c.do(ctx, http.MethodPatch, "/messages/"+id,
		"application/merge-patch+json", []byte(`{"seen":true}`), &sess)
	return err
}

// SourceBytes fetches the raw RFC 5322 source of a message. The
// documented /sources/{id} endpoint is tried first; older deployments
// only served /messages/{id}/source, so a failed first attempt falls
// back there. JSON responses carry the source under a "data" key and
// are unwrapped.
func (c *Client) SourceBytes(ctx context.Context, sess Session, id string) ([]byte, error) {
	data, ctype, err := c.do(ctx, http.MethodGet, "/sources/"+id, "", nil, &sess)
	if err == nil {
		if strings.Contains(ctype, "json") {
			var resp struct {
				Data string `json:"data"`
			}
			if jsonErr := json.Unmarshal(data, &resp); jsonErr == nil && resp.Data != "" {
				return []byte(resp.Data), nil
			}
		}
		return data, nil
	}

	c.logger.Debug("source endpoint failed, trying legacy path", "id", id, "error", err)

	legacy, _, legacyErr := c.do(ctx, http.MethodGet, "/messages/"+id+"/source", "", nil, &sess)
	if legacyErr != nil {
		return nil, fmt.Errorf("fetch source %s: %w (legacy fallback: %v)", id, err, legacyErr)
	}
	return legacy, nil
}

// DownloadAttachment fetches the content of one attachment.
func (c *Client) DownloadAttachment(ctx context.Context, sess Session, messageID, attachmentID string) ([]byte, error) {
	data, _, err := c.do(ctx, http.MethodGet, "/messages/"+messageID+"/attachments/"+attachmentID, "", nil, &sess)
	return data, err
}
