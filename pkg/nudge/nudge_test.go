package nudge

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNudgeOnAnyBytes(t *testing.T) {
	push := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "nodeA", r.URL.Query().Get("nodeId"))
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		// initial ping, as the controller sends
		_, _ = w.Write([]byte("event: ping\ndata: init\n\n"))
		flusher.Flush()
		for range push {
			_, _ = w.Write([]byte("x"))
			flusher.Flush()
		}
	}))
	defer srv.Close()
	defer close(push)

	n := New(srv.URL, "nodeA")
	n.Start()
	defer n.Stop()

	// The initial ping already nudges.
	select {
	case <-n.C():
	case <-time.After(2 * time.Second):
		t.Fatal("no nudge from initial stream bytes")
	}

	// A single pushed byte nudges again, promptly.
	push <- struct{}{}
	select {
	case <-n.C():
	case <-time.After(200 * time.Millisecond):
		t.Fatal("nudge took longer than 200ms")
	}
}

func TestNudgesCoalesce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for i := 0; i < 50; i++ {
			_, _ = w.Write([]byte("data: x\n\n"))
			flusher.Flush()
		}
		<-r.Context().Done()
	}))
	defer srv.Close()

	n := New(srv.URL, "nodeA")
	n.Start()
	defer n.Stop()

	time.Sleep(300 * time.Millisecond)

	// Many arrivals, at most one pending nudge.
	drained := 0
	for {
		select {
		case <-n.C():
			drained++
			continue
		default:
		}
		break
	}
	assert.LessOrEqual(t, drained, 1)
}

func TestReconnectAfterDisconnect(t *testing.T) {
	var conns atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conns.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		// Close immediately: the nudger must come back.
	}))
	defer srv.Close()

	n := New(srv.URL, "nodeA")
	n.Start()
	defer n.Stop()

	require.Eventually(t, func() bool {
		return conns.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond, "nudger did not reconnect")
}

func TestStopEndsLoopPromptly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	n := New(srv.URL, "nodeA")
	n.Start()

	done := make(chan struct{})
	go func() {
		n.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return")
	}
}
