package taskworker

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// Options configures a StreamWorker. Zero values are filled from the
// environment the agent injects into every instance, so an embedded worker
// typically needs no explicit configuration at all.
type Options struct {
	// WorkerID uniquely identifies this worker to the controller. Falls
	// back to WORKER_ID, then to a generated UUID.
	WorkerID string

	// NodeID is the hosting node, from WORKER_NODE_ID.
	NodeID string

	// InstanceID is the hosting instance, from PLUM_INSTANCE_ID.
	InstanceID string

	// AppName and AppVersion identify the application, from PLUM_APP_NAME
	// and PLUM_APP_VERSION.
	AppName    string
	AppVersion string

	// ControllerAddr is the controller's task-stream address, from
	// CONTROLLER_GRPC_ADDR.
	ControllerAddr string

	// Labels are attached to the registration verbatim.
	Labels map[string]string

	// HeartbeatInterval between Heartbeat messages. Default 30s.
	HeartbeatInterval time.Duration

	// NoReconnect disables re-dialling after a stream failure. By default
	// the worker reconnects.
	NoReconnect bool

	// ReconnectInterval between redial attempts. Default 5s.
	ReconnectInterval time.Duration
}

func (o *Options) fillFromEnv() {
	envOr := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	if o.WorkerID == "" {
		o.WorkerID = envOr("WORKER_ID", "")
	}
	if o.WorkerID == "" {
		o.WorkerID = uuid.NewString()
	}
	if o.NodeID == "" {
		o.NodeID = envOr("WORKER_NODE_ID", "nodeA")
	}
	if o.InstanceID == "" {
		o.InstanceID = os.Getenv("PLUM_INSTANCE_ID")
	}
	if o.AppName == "" {
		o.AppName = os.Getenv("PLUM_APP_NAME")
	}
	if o.AppVersion == "" {
		o.AppVersion = envOr("PLUM_APP_VERSION", "1.0.0")
	}
	if o.ControllerAddr == "" {
		o.ControllerAddr = envOr("CONTROLLER_GRPC_ADDR", "127.0.0.1:9090")
	}
	if o.HeartbeatInterval <= 0 {
		o.HeartbeatInterval = 30 * time.Second
	}
	if o.ReconnectInterval <= 0 {
		o.ReconnectInterval = 5 * time.Second
	}
}
