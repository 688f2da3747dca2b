package taskworker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/plumstack/plum/api/proto"
	"github.com/plumstack/plum/pkg/log"
	"github.com/plumstack/plum/pkg/metrics"
)

// Handler executes one task. The returned bytes become the Result payload;
// a non-nil error is sent back as the Result's error text instead.
type Handler func(taskID string, payload []byte) ([]byte, error)

// StreamWorker hosts task handlers inside an application process. It holds
// one bidirectional stream to the controller: the first outbound message is
// the registration, heartbeats follow periodically, and every inbound task
// is dispatched to its handler on its own goroutine.
//
// All stream writes are serialised under one mutex so heartbeats and
// concurrently finishing handlers never interleave on the wire. Reads happen
// on a single dedicated goroutine.
type StreamWorker struct {
	opts     Options
	handlers map[string]Handler
	tasks    []string

	writeMu sync.Mutex
	stream  pb.TaskService_TaskStreamClient

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool

	logger zerolog.Logger
}

// New creates a StreamWorker; unset options are filled from the environment
// injected by the agent.
func New(opts Options) *StreamWorker {
	opts.fillFromEnv()
	return &StreamWorker{
		opts:     opts,
		handlers: make(map[string]Handler),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		logger:   log.WithComponent("taskworker"),
	}
}

// RegisterTask binds a handler to a task name. Must be called before Start;
// the declared task set is part of the registration message and is preserved
// across reconnects.
func (w *StreamWorker) RegisterTask(name string, handler Handler) {
	w.handlers[name] = handler
	w.tasks = append(w.tasks, name)
	sort.Strings(w.tasks)
}

// Start connects to the controller and begins serving tasks in the
// background. It fails fast when no handlers are registered.
func (w *StreamWorker) Start() error {
	if w.started {
		return errors.New("already started")
	}
	if len(w.handlers) == 0 {
		return errors.New("no tasks registered")
	}
	w.started = true

	w.logger.Info().
		Str("worker_id", w.opts.WorkerID).
		Str("node_id", w.opts.NodeID).
		Str("instance_id", w.opts.InstanceID).
		Str("controller", w.opts.ControllerAddr).
		Strs("tasks", w.tasks).
		Msg("starting task worker")

	go w.run()
	return nil
}

// Stop tears the stream down and waits for the worker loop to exit.
// Handlers already running are not interrupted, but their results may be
// lost with the stream.
func (w *StreamWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	if w.started {
		<-w.doneCh
	}
}

func (w *StreamWorker) run() {
	defer close(w.doneCh)

	for {
		err := w.session()
		if w.stopped() {
			return
		}
		if err != nil {
			w.logger.Warn().Err(err).Msg("task stream disconnected")
		}
		if w.opts.NoReconnect {
			return
		}

		select {
		case <-w.stopCh:
			return
		case <-time.After(w.opts.ReconnectInterval):
		}
	}
}

// session runs one stream from dial to disconnect.
func (w *StreamWorker) session() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := grpc.NewClient(w.opts.ControllerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer conn.Close()

	stream, err := pb.NewTaskServiceClient(conn).TaskStream(ctx)
	if err != nil {
		return fmt.Errorf("open task stream: %w", err)
	}

	w.writeMu.Lock()
	w.stream = stream
	w.writeMu.Unlock()

	if err := w.sendRegistration(); err != nil {
		return fmt.Errorf("send registration: %w", err)
	}
	w.logger.Info().Str("worker_id", w.opts.WorkerID).Msg("registered with controller")

	// Cancelling the stream context unblocks the pending Recv, so a stop
	// request propagates within one read cycle.
	sessionDone := make(chan struct{})
	defer close(sessionDone)
	go func() {
		select {
		case <-w.stopCh:
			cancel()
		case <-sessionDone:
		}
	}()

	go w.heartbeatLoop(sessionDone)

	for {
		task, err := stream.Recv()
		if err != nil {
			if w.stopped() {
				return nil
			}
			return err
		}
		go w.dispatch(task)
	}
}

func (w *StreamWorker) heartbeatLoop(sessionDone <-chan struct{}) {
	ticker := time.NewTicker(w.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.send(&pb.TaskAck{
				Message: &pb.TaskAck_Heartbeat{Heartbeat: &pb.Heartbeat{WorkerId: w.opts.WorkerID}},
			}); err != nil {
				w.logger.Warn().Err(err).Msg("heartbeat send failed")
				return
			}
		case <-sessionDone:
			return
		case <-w.stopCh:
			return
		}
	}
}

// dispatch runs one task and writes back exactly one Result, whatever
// happens inside the handler.
func (w *StreamWorker) dispatch(task *pb.TaskRequest) {
	handler, ok := w.handlers[task.Name]
	if !ok {
		w.logger.Warn().Str("task", task.Name).Str("task_id", task.TaskId).Msg("unknown task")
		metrics.TasksDispatchedTotal.WithLabelValues("unknown").Inc()
		w.sendResult(task.TaskId, nil, "Unknown task: "+task.Name)
		return
	}

	w.logger.Debug().Str("task", task.Name).Str("task_id", task.TaskId).Msg("executing task")

	result, err := w.runHandler(handler, task)
	if err != nil {
		metrics.TasksDispatchedTotal.WithLabelValues("error").Inc()
		w.sendResult(task.TaskId, nil, err.Error())
		return
	}
	metrics.TasksDispatchedTotal.WithLabelValues("ok").Inc()
	w.sendResult(task.TaskId, result, "")
}

// runHandler confines handler panics to the task that caused them.
func (w *StreamWorker) runHandler(handler Handler, task *pb.TaskRequest) (result []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task execution error: %v", r)
		}
	}()
	return handler(task.TaskId, []byte(task.Payload))
}

func (w *StreamWorker) sendRegistration() error {
	return w.send(&pb.TaskAck{
		Message: &pb.TaskAck_Register{Register: &pb.WorkerRegister{
			WorkerId:   w.opts.WorkerID,
			NodeId:     w.opts.NodeID,
			InstanceId: w.opts.InstanceID,
			AppName:    w.opts.AppName,
			AppVersion: w.opts.AppVersion,
			Tasks:      w.tasks,
			Labels:     w.opts.Labels,
		}},
	})
}

func (w *StreamWorker) sendResult(taskID string, result []byte, errText string) {
	err := w.send(&pb.TaskAck{
		Message: &pb.TaskAck_Result{Result: &pb.TaskResponse{
			TaskId: taskID,
			Result: string(result),
			Error:  errText,
		}},
	})
	if err != nil {
		w.logger.Warn().Err(err).Str("task_id", taskID).Msg("result send failed")
	}
}

func (w *StreamWorker) send(ack *pb.TaskAck) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.stream == nil {
		return errors.New("stream not open")
	}
	return w.stream.Send(ack)
}

func (w *StreamWorker) stopped() bool {
	select {
	case <-w.stopCh:
		return true
	default:
		return false
	}
}
