package taskworker

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	pb "github.com/plumstack/plum/api/proto"
)

// fakeTaskServer is a minimal controller-side TaskService: it records every
// ack and lets tests push TaskRequests down the stream.
type fakeTaskServer struct {
	pb.UnimplementedTaskServiceServer

	mu         sync.Mutex
	registers  []*pb.WorkerRegister
	heartbeats []*pb.Heartbeat
	results    []*pb.TaskResponse
	sessions   int
	dropAfter  int // close each of the first N sessions right after registration

	taskCh chan *pb.TaskRequest
}

func newFakeTaskServer() *fakeTaskServer {
	return &fakeTaskServer{taskCh: make(chan *pb.TaskRequest, 16)}
}

func (s *fakeTaskServer) TaskStream(stream grpc.BidiStreamingServer[pb.TaskAck, pb.TaskRequest]) error {
	s.mu.Lock()
	s.sessions++
	session := s.sessions
	s.mu.Unlock()

	sendErr := make(chan error, 1)
	go func() {
		for {
			select {
			case task := <-s.taskCh:
				if err := stream.Send(task); err != nil {
					sendErr <- err
					return
				}
			case <-stream.Context().Done():
				return
			}
		}
	}()

	for {
		ack, err := stream.Recv()
		if err != nil {
			return err
		}
		s.mu.Lock()
		switch msg := ack.Message.(type) {
		case *pb.TaskAck_Register:
			s.registers = append(s.registers, msg.Register)
			if s.dropAfter > 0 && session <= s.dropAfter {
				s.mu.Unlock()
				return errors.New("dropped by test")
			}
		case *pb.TaskAck_Heartbeat:
			s.heartbeats = append(s.heartbeats, msg.Heartbeat)
		case *pb.TaskAck_Result:
			s.results = append(s.results, msg.Result)
		}
		s.mu.Unlock()

		select {
		case err := <-sendErr:
			return err
		default:
		}
	}
}

func (s *fakeTaskServer) push(taskID, name, payload string) {
	s.taskCh <- &pb.TaskRequest{TaskId: taskID, Name: name, Payload: payload}
}

func (s *fakeTaskServer) resultFor(taskID string) (*pb.TaskResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.results {
		if r.TaskId == taskID {
			return r, true
		}
	}
	return nil, false
}

func startServer(t *testing.T, impl *fakeTaskServer) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	pb.RegisterTaskServiceServer(srv, impl)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func newTestWorker(t *testing.T, addr string, opts Options) *StreamWorker {
	t.Helper()
	opts.ControllerAddr = addr
	if opts.WorkerID == "" {
		opts.WorkerID = "w1"
	}
	if opts.HeartbeatInterval == 0 {
		opts.HeartbeatInterval = time.Hour
	}
	if opts.ReconnectInterval == 0 {
		opts.ReconnectInterval = 50 * time.Millisecond
	}
	w := New(opts)
	t.Cleanup(w.Stop)
	return w
}

func TestStartRequiresHandlers(t *testing.T) {
	w := New(Options{WorkerID: "w1"})
	assert.Error(t, w.Start())
}

func TestRegistrationCarriesIdentityAndTasks(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{
		WorkerID:   "worker-7",
		NodeID:     "nodeA",
		InstanceID: "i1",
		AppName:    "demo",
		AppVersion: "2.1.0",
		Labels:     map[string]string{"zone": "edge"},
	})
	w.RegisterTask("demo.echo", func(taskID string, payload []byte) ([]byte, error) { return payload, nil })
	w.RegisterTask("demo.delay", func(taskID string, payload []byte) ([]byte, error) { return nil, nil })
	require.NoError(t, w.Start())

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return len(srv.registers) == 1
	}, 5*time.Second, 10*time.Millisecond)

	srv.mu.Lock()
	reg := srv.registers[0]
	srv.mu.Unlock()
	assert.Equal(t, "worker-7", reg.WorkerId)
	assert.Equal(t, "nodeA", reg.NodeId)
	assert.Equal(t, "i1", reg.InstanceId)
	assert.Equal(t, "demo", reg.AppName)
	assert.Equal(t, "2.1.0", reg.AppVersion)
	assert.Equal(t, []string{"demo.delay", "demo.echo"}, reg.Tasks)
	assert.Equal(t, map[string]string{"zone": "edge"}, reg.Labels)
}

func TestEchoRoundTrip(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{})
	w.RegisterTask("echo", func(taskID string, payload []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(`{"status":"success","echo":%q}`, payload)), nil
	})
	require.NoError(t, w.Start())

	srv.push("t42", "echo", "hi")

	require.Eventually(t, func() bool {
		_, ok := srv.resultFor("t42")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	res, _ := srv.resultFor("t42")
	assert.Equal(t, `{"status":"success","echo":"hi"}`, res.Result)
	assert.Empty(t, res.Error)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Result), &decoded))
	assert.Equal(t, "hi", decoded["echo"])
}

func TestUnknownTask(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{})
	w.RegisterTask("echo", func(taskID string, payload []byte) ([]byte, error) { return payload, nil })
	require.NoError(t, w.Start())

	srv.push("t1", "missing", "")

	require.Eventually(t, func() bool {
		_, ok := srv.resultFor("t1")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	res, _ := srv.resultFor("t1")
	assert.Empty(t, res.Result)
	assert.Equal(t, "Unknown task: missing", res.Error)
}

func TestHandlerErrorBecomesErrorResult(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{})
	w.RegisterTask("fail", func(taskID string, payload []byte) ([]byte, error) {
		return nil, errors.New("backend unavailable")
	})
	require.NoError(t, w.Start())

	srv.push("t2", "fail", "")

	require.Eventually(t, func() bool {
		_, ok := srv.resultFor("t2")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	res, _ := srv.resultFor("t2")
	assert.Empty(t, res.Result)
	assert.Equal(t, "backend unavailable", res.Error)
}

func TestHandlerPanicIsCaptured(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{})
	w.RegisterTask("boom", func(taskID string, payload []byte) ([]byte, error) {
		panic("division by zero")
	})
	require.NoError(t, w.Start())

	srv.push("t3", "boom", "")

	require.Eventually(t, func() bool {
		_, ok := srv.resultFor("t3")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	res, _ := srv.resultFor("t3")
	assert.Contains(t, res.Error, "division by zero")
}

func TestEveryTaskGetsExactlyOneResult(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{HeartbeatInterval: 10 * time.Millisecond})
	w.RegisterTask("work", func(taskID string, payload []byte) ([]byte, error) {
		// Spread completions so heartbeats interleave with results.
		time.Sleep(time.Duration(len(payload)) * time.Millisecond)
		return payload, nil
	})
	require.NoError(t, w.Start())

	const n = 20
	for i := 0; i < n; i++ {
		srv.push(fmt.Sprintf("t%d", i), "work", fmt.Sprintf("%*d", i%7+1, i))
	}

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return len(srv.results) == n
	}, 10*time.Second, 20*time.Millisecond)

	seen := map[string]int{}
	srv.mu.Lock()
	for _, r := range srv.results {
		seen[r.TaskId]++
	}
	srv.mu.Unlock()
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, seen[fmt.Sprintf("t%d", i)])
	}
}

func TestHeartbeats(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{WorkerID: "hb-worker", HeartbeatInterval: 30 * time.Millisecond})
	w.RegisterTask("noop", func(taskID string, payload []byte) ([]byte, error) { return nil, nil })
	require.NoError(t, w.Start())

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return len(srv.heartbeats) >= 2
	}, 5*time.Second, 10*time.Millisecond)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, "hb-worker", srv.heartbeats[0].WorkerId)
}

func TestReconnectPreservesHandlers(t *testing.T) {
	srv := newFakeTaskServer()
	srv.dropAfter = 1
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{})
	w.RegisterTask("echo", func(taskID string, payload []byte) ([]byte, error) { return payload, nil })
	require.NoError(t, w.Start())

	// Session 1 is dropped right after registration; the worker must come
	// back and register again with the same task set.
	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return len(srv.registers) >= 2
	}, 10*time.Second, 20*time.Millisecond)

	srv.push("t9", "echo", "again")
	require.Eventually(t, func() bool {
		_, ok := srv.resultFor("t9")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, srv.registers[0].Tasks, srv.registers[1].Tasks)
}

func TestStopEndsWorker(t *testing.T) {
	srv := newFakeTaskServer()
	addr := startServer(t, srv)

	w := newTestWorker(t, addr, Options{})
	w.RegisterTask("noop", func(taskID string, payload []byte) ([]byte, error) { return nil, nil })
	require.NoError(t, w.Start())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestOptionsFromEnvironment(t *testing.T) {
	t.Setenv("WORKER_ID", "env-worker")
	t.Setenv("WORKER_NODE_ID", "nodeZ")
	t.Setenv("PLUM_INSTANCE_ID", "i-env")
	t.Setenv("PLUM_APP_NAME", "envapp")
	t.Setenv("PLUM_APP_VERSION", "3.0.0")
	t.Setenv("CONTROLLER_GRPC_ADDR", "10.0.0.9:9090")

	var opts Options
	opts.fillFromEnv()

	assert.Equal(t, "env-worker", opts.WorkerID)
	assert.Equal(t, "nodeZ", opts.NodeID)
	assert.Equal(t, "i-env", opts.InstanceID)
	assert.Equal(t, "envapp", opts.AppName)
	assert.Equal(t, "3.0.0", opts.AppVersion)
	assert.Equal(t, "10.0.0.9:9090", opts.ControllerAddr)
	assert.Equal(t, 30*time.Second, opts.HeartbeatInterval)
}

func TestGeneratedWorkerIDWhenUnset(t *testing.T) {
	t.Setenv("WORKER_ID", "")

	var opts Options
	opts.fillFromEnv()
	assert.NotEmpty(t, opts.WorkerID)

	var other Options
	other.fillFromEnv()
	assert.NotEqual(t, opts.WorkerID, other.WorkerID)
}
