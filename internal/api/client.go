package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inboxing/mailadm/internal/errors"
	"github.com/inboxing/mailadm/internal/logging"
	"github.com/inboxing/mailadm/internal/roster"
)

const (
	// defaultTimeout is the per-request timeout.
	defaultTimeout = 10 * time.Second

	// defaultRetryCount is how many times idempotent requests are
	// reattempted after a transport failure.
	defaultRetryCount = 2

	// retryBackoff is the delay between retry attempts.
	retryBackoff = 250 * time.Millisecond
)

// Client talks to the account service over HTTP.
// It is safe for concurrent use once constructed; SetToken is the only
// mutating method and is expected to be called from the update loop.
type Client struct {
	baseURL    string
	token      string
	retryCount int
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryCount sets how many times idempotent requests are retried
// after a transport failure.
func WithRetryCount(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.retryCount = n
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used in tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		retryCount: defaultRetryCount,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	return c.token
}

// Login authenticates with the service and returns a session token.
// The token is also installed on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", errors.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return "", errors.NewValidationError("password", "must not be empty")
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", loginRequest{
		Username: username,
		Password: password,
	}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.NewServerError("login", http.StatusOK, "service returned no token")
	}

	c.token = resp.Token
	return resp.Token, nil
}

// Logout invalidates the session on the service and clears the local token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// ListAccounts fetches every account with its delivery counters.
func (c *Client) ListAccounts(ctx context.Context) ([]roster.Account, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &env); err != nil {
		return nil, err
	}

	var rows []accountRow
	if err := json.Unmarshal(env.Results, &rows); err != nil {
		return nil, errors.NewServerError("list accounts", http.StatusOK,
			"malformed results payload").WithCause(err)
	}

	accounts := make([]roster.Account, len(rows))
	for i, row := range rows {
		accounts[i] = row.toAccount()
	}
	return accounts, nil
}

// CreateAccount registers a new account and returns the stored record.
func (c *Client) CreateAccount(ctx context.Context, draft roster.AccountDraft) (roster.Account, error) {
	var echo accountEcho
	err := c.do(ctx, http.MethodPost, "/api/users", accountBody{
		Username: draft.Name,
		IsAdmin:  roleToWire(draft.Role),
		Password: draft.Password,
	}, &echo)
	if err != nil {
		return roster.Account{}, err
	}
	return echo.toAccount(), nil
}

// UpdateAccount replaces the named account's fields and returns the echo.
// The service expects the full field set, so callers resolve patches
// against the current record before submitting.
func (c *Client) UpdateAccount(ctx context.Context, id int, name, password string, role roster.Role) (roster.Account, error) {
	var echo accountEcho
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), accountBody{
		Username: name,
		IsAdmin:  roleToWire(role),
		Password: password,
	}, &echo)
	if err != nil {
		return roster.Account{}, err
	}
	return echo.toAccount(), nil
}

// DeleteAccount removes an account. The service answers 404 for an
// unknown id, which surfaces as a NotFoundError.
func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

// ListMailboxes fetches the monitored addresses attached to an account.
func (c *Client) ListMailboxes(ctx context.Context, accountID int) ([]roster.Mailbox, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", accountID), nil, &env); err != nil {
		return nil, err
	}

	var rows []mailboxRow
	if err := json.Unmarshal(env.Results, &rows); err != nil {
		return nil, errors.NewServerError("list mailboxes", http.StatusOK,
			"malformed results payload").WithCause(err)
	}

	boxes := make([]roster.Mailbox, len(rows))
	for i, row := range rows {
		boxes[i] = row.toMailbox()
	}
	return boxes, nil
}

// CreateMailbox attaches a new monitored address to an account.
func (c *Client) CreateMailbox(ctx context.Context, draft roster.MailboxDraft) (roster.Mailbox, error) {
	var env envelope
	err := c.do(ctx, http.MethodPost, "/api/user", mailboxBody{
		Email:    draft.Email,
		Password: draft.Password,
		UserID:   draft.UserID,
	}, &env)
	if err != nil {
		return roster.Mailbox{}, err
	}

	var row mailboxRow
	if err := json.Unmarshal(env.Results, &row); err != nil {
		return roster.Mailbox{}, errors.NewServerError("create mailbox", http.StatusOK,
			"malformed results payload").WithCause(err)
	}
	box := row.toMailbox()
	if box.UserID == 0 {
		box.UserID = draft.UserID
	}
	return box, nil
}

// UpdateMailbox replaces a mailbox entry's address and password.
func (c *Client) UpdateMailbox(ctx context.Context, id int, email, password string) (roster.Mailbox, error) {
	var env envelope
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user/%d", id), mailboxBody{
		Email:    email,
		Password: password,
	}, &env)
	if err != nil {
		return roster.Mailbox{}, err
	}

	var row mailboxRow
	if err := json.Unmarshal(env.Results, &row); err != nil {
		return roster.Mailbox{}, errors.NewServerError("update mailbox", http.StatusOK,
			"malformed results payload").WithCause(err)
	}
	return row.toMailbox(), nil
}

// DeleteMailbox removes a mailbox entry. The service treats deleting an
// absent id as success, so this is idempotent end to end.
func (c *Client) DeleteMailbox(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", id), nil, nil)
}

// ResetAllData clears every delivery counter on the service.
func (c *Client) ResetAllData(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/reset_all_data", nil, nil)
}

// Overview fetches the dashboard summary of delivery stats.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	var resp overviewResponse
	if err := c.do(ctx, http.MethodGet, "/api/emails", nil, &resp); err != nil {
		return Overview{}, err
	}

	ov := Overview{
		Addresses: resp.Results,
		IsAdmin:   resp.IsAdmin != 0,
	}
	// total_info is positional and each slot may be null.
	if len(resp.TotalInfo) > 0 {
		if n, err := resp.TotalInfo[0].Int64(); err == nil {
			ov.SumInbox = int(n)
		}
	}
	if len(resp.TotalInfo) > 1 {
		if n, err := resp.TotalInfo[1].Int64(); err == nil {
			ov.SumSpam = int(n)
		}
	}
	if len(resp.TotalInfo) > 2 && resp.TotalInfo[2].String() != "" {
		ov.Percent = resp.TotalInfo[2].String() + "%"
	} else {
		ov.Percent = "0%"
	}
	return ov, nil
}

// roleToWire converts a Role to the service's is_admin flag.
func roleToWire(role roster.Role) int {
	if role == roster.RoleAdmin {
		return 1
	}
	return 0
}

// do executes one API call. The request body, if any, is JSON-encoded;
// the response body, if out is non-nil, is JSON-decoded into out.
// Idempotent requests are retried on transport failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	attempts := 1
	if isIdempotent(method) {
		attempts += c.retryCount
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.NewTransportError(op, ctx.Err())
			case <-time.After(retryBackoff):
			}
			c.logger.Debug("retrying request", "op", op, "attempt", attempt)
		}

		err := c.doOnce(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		if !errors.IsRetryable(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// doOnce executes a single request attempt.
func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) error {
	op := method + " " + path

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "op", op, "error", err)
		return errors.NewTransportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError(op, err)
	}

	c.logger.Debug("request complete",
		"op", op, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode >= 400 {
		return c.statusError(op, resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.NewServerError(op, resp.StatusCode, "malformed response body").WithCause(err)
		}
	}
	return nil
}

// statusError maps an HTTP error status onto the semantic error types.
func (c *Client) statusError(op string, status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	detail := eb.Error
	if detail == "" {
		detail = eb.Message
	}
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %s: %w", op, detail, errors.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %s: %w", op, detail, errors.ErrSessionExpired)
	case http.StatusNotFound:
		resource, id := targetFromPath(op)
		return errors.NewNotFoundError(resource, id)
	default:
		return errors.NewServerError(op, status, detail)
	}
}

// targetFromPath recovers the resource kind and id from a request path
// such as "DELETE /api/users/7" for not-found reporting.
func targetFromPath(op string) (string, int) {
	parts := strings.Split(op, "/")
	if len(parts) < 2 {
		return "record", 0
	}

	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "record", 0
	}

	switch parts[len(parts)-2] {
	case "users":
		return "account", id
	case "user":
		return "mailbox", id
	default:
		return "record", id
	}
}

// isIdempotent reports whether a request can be safely retried without
// operator involvement. Mutations are never auto-retried, even the
// idempotent ones, so a failed submit always comes back to the operator.
func isIdempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
