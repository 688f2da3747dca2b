package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Stream consumes an unbounded response body from url, invoking onChunk for
// each received fragment. It returns when the server closes the connection,
// the request fails, or stopCh is closed. The overall request carries no
// deadline; cancellation is honoured within one read cycle.
//
// Each Stream call builds its own client so that per-request state never
// leaks between the long-lived stream and ordinary request/response calls.
func Stream(url string, onChunk func([]byte), stopCh <-chan struct{}) error {
	client := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream status %d", resp.StatusCode)
	}

	// Closing the body unblocks the pending Read when stop is requested.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-stopCh:
			cancel()
			resp.Body.Close()
		case <-done:
		}
	}()

	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			onChunk(buf[:n])
		}
		if err != nil {
			select {
			case <-stopCh:
				return nil
			default:
			}
			return err
		}
	}
}
