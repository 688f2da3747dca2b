package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/plumstack/plum/pkg/log"
)

// Client issues request/response calls against the controller. A failed
// network exchange surfaces as status 0, never as an error that aborts the
// surrounding control flow; the caller decides policy.
type Client struct {
	http *http.Client
}

// NewClient creates a transport client for request/response calls. The
// timeout passed to each call bounds the whole exchange.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// PostJSON marshals body and posts it to url. Returns the HTTP status and
// response body; status 0 means the exchange failed before a response.
func (c *Client) PostJSON(url string, body any, timeout time.Duration) (int, []byte) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Logger.Error().Err(err).Str("url", url).Msg("marshal request body")
		return 0, nil
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, timeout)
}

// Get fetches url. Returns the HTTP status and response body; status 0 means
// the exchange failed before a response.
func (c *Client) Get(url string, timeout time.Duration) (int, []byte) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, nil
	}
	return c.do(req, timeout)
}

// Delete issues a DELETE against url
func (c *Client) Delete(url string, timeout time.Duration) (int, []byte) {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return 0, nil
	}
	return c.do(req, timeout)
}

func (c *Client) do(req *http.Request, timeout time.Duration) (int, []byte) {
	if timeout > 0 {
		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Logger.Debug().Err(err).Str("url", req.URL.String()).Msg("http exchange failed")
		return 0, nil
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Logger.Debug().Err(err).Str("url", req.URL.String()).Msg("read response body")
		return 0, nil
	}
	return resp.StatusCode, body
}
