package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/plumstack/plum/pkg/log"
	"github.com/plumstack/plum/pkg/metrics"
	"github.com/plumstack/plum/pkg/transport"
	"github.com/plumstack/plum/pkg/types"
)

const callTimeout = 5 * time.Second

// Reporter emits lifecycle and service events to the controller. Every call
// is a single best-effort HTTP exchange: a lost report is recovered by the
// controller's own reconcile loop noticing missing heartbeats, so failures
// are logged and dropped rather than retried.
type Reporter struct {
	controller string
	nodeID     string
	ip         string
	client     *transport.Client
}

// NewReporter creates a reporter for the given controller and node identity.
func NewReporter(controller, nodeID, ip string, client *transport.Client) *Reporter {
	return &Reporter{
		controller: controller,
		nodeID:     nodeID,
		ip:         ip,
		client:     client,
	}
}

// NodeHeartbeat announces node liveness; the controller also treats it as
// registration.
func (r *Reporter) NodeHeartbeat() {
	r.post("/v1/nodes/heartbeat", types.NodeHeartbeat{NodeID: r.nodeID, IP: r.ip})
}

// ReportInstance posts one lifecycle transition for an instance.
func (r *Reporter) ReportInstance(phase types.Phase, instanceID string, exitCode int, healthy bool) {
	r.post("/v1/instances/status", types.InstanceStatus{
		InstanceID: instanceID,
		Phase:      phase,
		ExitCode:   exitCode,
		Healthy:    healthy,
		TsUnix:     time.Now().Unix(),
	})
}

// RegisterServices registers the instance's endpoints under this node's
// address. No-op for an empty endpoint list.
func (r *Reporter) RegisterServices(instanceID string, endpoints []types.ServiceEndpoint) {
	if len(endpoints) == 0 {
		return
	}
	r.post("/v1/services/register", types.ServiceRegistration{
		InstanceID: instanceID,
		NodeID:     r.nodeID,
		IP:         r.ip,
		Endpoints:  endpoints,
	})
}

// HeartbeatService refreshes the liveness of the instance's endpoints.
func (r *Reporter) HeartbeatService(instanceID string) {
	r.post("/v1/services/heartbeat", types.ServiceHeartbeat{InstanceID: instanceID})
}

// DeleteServices removes every endpoint registered for the instance.
func (r *Reporter) DeleteServices(instanceID string) {
	path := "/v1/services"
	url := fmt.Sprintf("%s%s?instanceId=%s", r.controller, path, instanceID)
	status, _ := r.client.Delete(url, callTimeout)
	r.observe(path, status)
}

func (r *Reporter) post(path string, body any) {
	status, _ := r.client.PostJSON(r.controller+path, body, callTimeout)
	r.observe(path, status)
}

func (r *Reporter) observe(path string, status int) {
	metrics.ControllerRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	if status == 0 || status >= http.StatusInternalServerError {
		log.Logger.Warn().Str("path", path).Int("status", status).Msg("controller call failed")
	}
}
