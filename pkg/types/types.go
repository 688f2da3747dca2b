package types

// DesiredState is the controller's intent for one instance
type DesiredState string

const (
	DesiredRunning DesiredState = "Running"
	DesiredStopped DesiredState = "Stopped"
)

// Phase is the lifecycle phase the agent reports for an instance.
//
// Running means a live child the agent has not been told to stop. Stopped is
// an operator-initiated termination that has been reaped. Exited and Failed
// classify self-terminations by exit status.
type Phase string

const (
	PhaseRunning Phase = "Running"
	PhaseStopped Phase = "Stopped"
	PhaseExited  Phase = "Exited"
	PhaseFailed  Phase = "Failed"
)

// Assignment is one controller-emitted record describing desired state for
// one instance. Unknown fields in the wire form are ignored; StartCmd,
// AppName and AppVersion are optional and may be absent.
type Assignment struct {
	InstanceID   string       `json:"instanceId"`
	DeploymentID string       `json:"deploymentId,omitempty"`
	NodeID       string       `json:"nodeId,omitempty"`
	Desired      DesiredState `json:"desired"`
	ArtifactURL  string       `json:"artifactUrl"`
	StartCmd     string       `json:"startCmd,omitempty"`
	AppName      string       `json:"appName,omitempty"`
	AppVersion   string       `json:"appVersion,omitempty"`
}

// AssignmentList is the controller's assignments response body
type AssignmentList struct {
	Items []Assignment `json:"items"`
}

// InstanceStatus is the body posted to /v1/instances/status
type InstanceStatus struct {
	InstanceID string `json:"instanceId"`
	Phase      Phase  `json:"phase"`
	ExitCode   int    `json:"exitCode"`
	Healthy    bool   `json:"healthy"`
	TsUnix     int64  `json:"tsUnix"`
}

// ServiceEndpoint is one (name, protocol, port) tuple derived from a
// service= line in an instance's meta.ini
type ServiceEndpoint struct {
	ServiceName string `json:"serviceName"`
	Protocol    string `json:"protocol"`
	Port        int    `json:"port"`
}

// ServiceRegistration is the body posted to /v1/services/register
type ServiceRegistration struct {
	InstanceID string            `json:"instanceId"`
	NodeID     string            `json:"nodeId"`
	IP         string            `json:"ip"`
	Endpoints  []ServiceEndpoint `json:"endpoints"`
}

// ServiceHeartbeat is the body posted to /v1/services/heartbeat
type ServiceHeartbeat struct {
	InstanceID string `json:"instanceId"`
}

// NodeHeartbeat is the body posted to /v1/nodes/heartbeat
type NodeHeartbeat struct {
	NodeID string `json:"nodeId"`
	IP     string `json:"ip"`
}
