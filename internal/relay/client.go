package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Kind classifies a relay failure.
type Kind string

const (
	KindTransport Kind = "transport" // relay unreachable or non-success status
	KindParse     Kind = "parse"     // envelope malformed or inner JSON invalid
	KindTimeout   Kind = "timeout"   // per-request deadline expired
)

// Error is a failed relay fetch. Kind is stable across causes so the
// caller can collapse transport and parse into one user-facing state
// while still logging the difference.
type Error struct {
	Kind   Kind
	Target string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("relay %s: %s: %v", e.Kind, e.Target, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the relay failure kind, or "" for non-relay errors.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// envelope is what the public CORS relay wraps responses in. Contents
// is the target's body as a JSON-encoded string.
type envelope struct {
	Contents string `json:"contents"`
}

// Client fetches cross-origin targets through a public CORS relay.
// It does not retry; recovery is the scheduler's business.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a relay client with a per-request timeout. Every
// fetch also runs under the caller's context, whichever ends first.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) relayURL(target string) string {
	return c.BaseURL + "?url=" + url.QueryEscape(target)
}

func (c *Client) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.relayURL(target), nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Target: target, Err: err}
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		kind := KindTransport
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			kind = KindTimeout
		}
		return nil, &Error{Kind: kind, Target: target, Err: err}
	}
	return resp, nil
}

// FetchJSON fetches target through the relay, unwraps the envelope and
// unmarshals the embedded JSON payload into v.
func (c *Client) FetchJSON(ctx context.Context, target string, v any) error {
	resp, err := c.get(ctx, target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Kind: KindTransport, Target: target, Err: fmt.Errorf("relay status %s", resp.Status)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &Error{Kind: KindParse, Target: target, Err: err}
	}
	if env.Contents == "" {
		return &Error{Kind: KindParse, Target: target, Err: errors.New("envelope missing contents")}
	}
	if err := json.Unmarshal([]byte(env.Contents), v); err != nil {
		return &Error{Kind: KindParse, Target: target, Err: err}
	}
	return nil
}

// Ping fetches target through the relay caring only about reachability.
// The body is discarded; the status code comes back so the caller can
// decide what counts as up.
func (c *Client) Ping(ctx context.Context, target string) (int, error) {
	resp, err := c.get(ctx, target)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// isClientTimeout catches net/http's client-timeout error, which is a
// url.Error with Timeout()=true rather than context.DeadlineExceeded.
func isClientTimeout(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}
