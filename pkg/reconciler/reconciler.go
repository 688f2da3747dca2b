package reconciler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/plumstack/plum/pkg/artifact"
	"github.com/plumstack/plum/pkg/log"
	"github.com/plumstack/plum/pkg/metrics"
	"github.com/plumstack/plum/pkg/report"
	"github.com/plumstack/plum/pkg/state"
	"github.com/plumstack/plum/pkg/supervisor"
	"github.com/plumstack/plum/pkg/transport"
	"github.com/plumstack/plum/pkg/types"
)

// gracePeriod is how long a SIGTERM'd child may linger before SIGKILL.
const gracePeriod = 5 * time.Second

const fetchTimeout = 10 * time.Second

// Config wires the reconciler's collaborators.
type Config struct {
	NodeID         string
	Controller     string
	ControllerGRPC string
	Client         *transport.Client
	Artifacts      *artifact.Store
	Reporter       *report.Reporter
	Store          *state.Store // optional; nil disables persistence
	TickInterval   time.Duration
	DrainTimeout   time.Duration
}

// Reconciler drives the local set of instances toward the controller's
// desired assignment list. It is the sole owner and mutator of the
// instanceId to child map; every phase of a tick runs on the loop goroutine.
type Reconciler struct {
	cfg       Config
	instances map[string]*supervisor.Child

	// registered tracks instances whose service endpoints have been
	// registered, so registration runs once per instance lifetime.
	registered map[string]bool

	logger zerolog.Logger
}

// New creates a reconciler.
func New(cfg Config) *Reconciler {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 5 * time.Second
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 7 * time.Second
	}
	return &Reconciler{
		cfg:        cfg,
		instances:  make(map[string]*supervisor.Child),
		registered: make(map[string]bool),
		logger:     log.WithComponent("reconciler"),
	}
}

// Recover adopts children recorded by a previous agent run that are still
// alive, and prunes records whose processes are gone. Must be called before
// Run.
func (r *Reconciler) Recover() {
	if r.cfg.Store == nil {
		return
	}
	records, err := r.cfg.Store.List()
	if err != nil {
		r.logger.Warn().Err(err).Msg("load instance records")
		return
	}
	for _, rec := range records {
		pid := rec.PID
		if !supervisor.VerifyInstancePID(rec.InstanceID, pid) {
			// The recorded pid is stale; the instance may live on
			// under a different pid, so scan before giving up.
			pid = supervisor.FindInstancePID(rec.InstanceID)
		}
		if pid == 0 {
			r.logger.Info().Str("instance_id", rec.InstanceID).Msg("pruning stale instance record")
			_ = r.cfg.Store.Delete(rec.InstanceID)
			continue
		}
		r.instances[rec.InstanceID] = supervisor.Adopt(rec.InstanceID, pid)
		if pid != rec.PID {
			rec.PID = pid
			_ = r.cfg.Store.Put(rec)
		}
		r.logger.Info().Str("instance_id", rec.InstanceID).Int("pid", pid).Msg("adopted running instance")
	}
}

// Run executes the reconcile loop until stopCh is closed, then drains every
// remaining child. nudgeCh arrivals cut the wait between ticks short.
func (r *Reconciler) Run(stopCh <-chan struct{}, nudgeCh <-chan struct{}) {
	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	for {
		r.tick()

		select {
		case <-stopCh:
			r.logger.Info().Msg("stopping, draining instances")
			r.Drain()
			return
		case <-nudgeCh:
			metrics.NudgesTotal.Inc()
		case <-ticker.C:
		}
	}
}

// tick runs one full reconcile pass.
func (r *Reconciler) tick() {
	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.ReconcileDuration)
		metrics.ReconcileCyclesTotal.Inc()
		metrics.InstancesRunning.Set(float64(len(r.instances)))
	}()

	r.cfg.Reporter.NodeHeartbeat()

	items, ok := r.fetchAssignments()
	if !ok {
		// A failed fetch never implies an empty desired set: leave the
		// world alone and retry next tick.
		return
	}

	r.Sync(items)

	for _, item := range items {
		if item.Desired != types.DesiredRunning {
			continue
		}
		if _, tracked := r.instances[item.InstanceID]; !tracked {
			continue
		}
		r.registerServices(item.InstanceID)
		r.cfg.Reporter.HeartbeatService(item.InstanceID)
	}
}

// fetchAssignments queries the controller for this node's desired set. The
// boolean is false when the response is unusable (network failure, non-200,
// malformed body); callers must not mutate anything in that case.
func (r *Reconciler) fetchAssignments() ([]types.Assignment, bool) {
	url := fmt.Sprintf("%s/v1/assignments?nodeId=%s", r.cfg.Controller, r.cfg.NodeID)
	status, body := r.cfg.Client.Get(url, fetchTimeout)
	if status != http.StatusOK {
		r.logger.Warn().Int("status", status).Msg("assignments fetch failed")
		return nil, false
	}

	var list types.AssignmentList
	if err := json.Unmarshal(body, &list); err != nil {
		r.logger.Warn().Err(err).Msg("malformed assignments response")
		return nil, false
	}
	return list.Items, true
}

// Sync applies one desired set: reap exited children, stop extras, start
// missing. The three phases run strictly in this order.
func (r *Reconciler) Sync(items []types.Assignment) {
	keep := make(map[string]bool)
	for _, item := range items {
		if item.Desired == types.DesiredRunning {
			keep[item.InstanceID] = true
		}
	}

	r.reapExited()
	r.stopExtras(keep)
	for _, item := range items {
		if item.Desired == types.DesiredRunning {
			r.ensureRunning(item)
		}
	}
}

// reapExited collects children that terminated on their own and reports the
// terminal phase. A child that was also marked for termination reports
// Stopped: the operator-initiated stop outranks the incidental exit status.
func (r *Reconciler) reapExited() {
	for id, child := range r.instances {
		info, exited := child.TryReap()
		if !exited {
			continue
		}
		if child.Stopping() {
			r.finish(id, types.PhaseStopped, 0, true)
			continue
		}
		if info.Healthy() {
			r.finish(id, types.PhaseExited, info.Code, true)
		} else {
			r.finish(id, types.PhaseFailed, info.Code, false)
		}
	}
}

// stopExtras drives the termination state machine one step for every child
// missing from the desired set: SIGTERM first, SIGKILL once the grace period
// has elapsed. A child that needs more time stays tracked until a later
// tick.
func (r *Reconciler) stopExtras(keep map[string]bool) {
	for id, child := range r.instances {
		if keep[id] {
			continue
		}
		if !child.Stopping() {
			r.logger.Info().Str("instance_id", id).Int("pid", child.PID).Msg("stopping extra instance")
			child.SignalStop()
			continue
		}
		if time.Since(child.TermSentAt()) >= gracePeriod {
			child.Kill()
			if _, exited := child.TryReap(); exited {
				r.finish(id, types.PhaseStopped, 0, true)
			}
		}
	}
}

// ensureRunning starts one desired instance unless a live child exists.
func (r *Reconciler) ensureRunning(item types.Assignment) {
	if child, tracked := r.instances[item.InstanceID]; tracked {
		if child.Alive() {
			return
		}
		// Died between the reap phase and now; classify it before the
		// restart so the terminal report is not lost.
		if info, exited := child.TryReap(); exited {
			if info.Healthy() {
				r.finish(item.InstanceID, types.PhaseExited, info.Code, true)
			} else {
				r.finish(item.InstanceID, types.PhaseFailed, info.Code, false)
			}
		}
	}

	appDir, err := r.cfg.Artifacts.Ensure(item.InstanceID, item.ArtifactURL)
	if err != nil {
		r.logger.Error().Err(err).Str("instance_id", item.InstanceID).Msg("artifact not ready")
		return
	}

	child, err := supervisor.Spawn(item.InstanceID, appDir, item.StartCmd, r.childEnv(item))
	if err != nil {
		// No state is recorded; the next tick retries cleanly.
		r.logger.Error().Err(err).Str("instance_id", item.InstanceID).Msg("spawn failed")
		return
	}

	r.instances[item.InstanceID] = child
	if r.cfg.Store != nil {
		_ = r.cfg.Store.Put(state.InstanceRecord{
			InstanceID: item.InstanceID,
			PID:        child.PID,
			StartCmd:   item.StartCmd,
			StartedAt:  child.StartedAt.Unix(),
		})
	}
	metrics.InstanceStartsTotal.Inc()
	r.cfg.Reporter.ReportInstance(types.PhaseRunning, item.InstanceID, 0, true)
}

// childEnv builds the environment additions for a spawned instance.
// PLUM_INSTANCE_ID itself is injected by the supervisor.
func (r *Reconciler) childEnv(item types.Assignment) []string {
	env := []string{
		"WORKER_NODE_ID=" + r.cfg.NodeID,
		"CONTROLLER_BASE=" + r.cfg.Controller,
		"CONTROLLER_GRPC_ADDR=" + r.cfg.ControllerGRPC,
	}
	if item.AppName != "" {
		env = append(env, "PLUM_APP_NAME="+item.AppName)
	}
	if item.AppVersion != "" {
		env = append(env, "PLUM_APP_VERSION="+item.AppVersion)
	}
	return env
}

// finish reports a terminal phase and forgets the instance.
func (r *Reconciler) finish(instanceID string, phase types.Phase, exitCode int, healthy bool) {
	r.logger.Info().
		Str("instance_id", instanceID).
		Str("phase", string(phase)).
		Int("exit_code", exitCode).
		Msg("instance terminated")

	r.cfg.Reporter.ReportInstance(phase, instanceID, exitCode, healthy)
	r.cfg.Reporter.DeleteServices(instanceID)

	delete(r.instances, instanceID)
	delete(r.registered, instanceID)
	if r.cfg.Store != nil {
		_ = r.cfg.Store.Delete(instanceID)
	}
	metrics.InstanceStopsTotal.WithLabelValues(string(phase)).Inc()
}

// registerServices registers the instance's meta.ini endpoints once per
// instance lifetime. Instances without a meta.ini, or with one declaring no
// services, are remembered so the file is not re-read every tick.
func (r *Reconciler) registerServices(instanceID string) {
	if r.registered[instanceID] {
		return
	}
	endpoints, err := report.ParseMetaINI(r.cfg.Artifacts.MetaPath(instanceID))
	if err != nil {
		// No meta.ini, no services.
		r.registered[instanceID] = true
		return
	}
	r.cfg.Reporter.RegisterServices(instanceID, endpoints)
	r.registered[instanceID] = true
}

// Drain terminates every remaining child with the usual TERM-then-KILL
// escalation, polling until the live set is empty or the drain budget is
// spent. Anything still alive at the deadline is killed outright so no child
// outlives the agent unsignalled.
func (r *Reconciler) Drain() {
	none := map[string]bool{}
	deadline := time.Now().Add(r.cfg.DrainTimeout)
	for time.Now().Before(deadline) {
		r.reapExited()
		r.stopExtras(none)
		if len(r.instances) == 0 {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	for id, child := range r.instances {
		r.logger.Warn().Str("instance_id", id).Msg("drain deadline hit, killing")
		child.Kill()
	}
	time.Sleep(200 * time.Millisecond)
	r.reapExited()
	for id := range r.instances {
		r.finish(id, types.PhaseStopped, 0, true)
	}
}

// Instances returns the ids of currently tracked children. Only for tests
// and diagnostics; the map itself never escapes the reconciler.
func (r *Reconciler) Instances() []string {
	ids := make([]string, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	return ids
}
