/*
Package report emits the agent's lifecycle and service events to the
controller.

# Calls

Every operation is a single HTTP exchange against the controller base:

	NodeHeartbeat()          POST   /v1/nodes/heartbeat
	ReportInstance(...)      POST   /v1/instances/status
	RegisterServices(...)    POST   /v1/services/register
	HeartbeatService(...)    POST   /v1/services/heartbeat
	DeleteServices(...)      DELETE /v1/services?instanceId=<id>

The reconciler drives them: a node heartbeat opens every tick, phase
transitions are reported as they happen, and service register/heartbeat run
for each desired instance after the desired set has been applied.

# Best-effort delivery

No call retries and none returns an error; failures are counted, logged and
dropped. That is a deliberate contract, not an oversight: the controller's
own reconcile loop treats missing heartbeats as the ground truth for
staleness, so a lost report converges anyway. Consider a Stopped report
that vanishes in a network partition — the controller stops receiving that
instance's service heartbeats within one tick and expires its endpoints on
its own. Adding agent-side retries would only delay that convergence and
create duplicate-report ambiguity.

# Service endpoints from meta.ini

An instance declares its endpoints in an optional app/meta.ini, one line
per endpoint:

	# demo application metadata
	name=demo
	service=web:http:8080
	service=rpc:grpc:9090

ParseMetaINI extracts the service= lines and ignores everything else: blank
lines, #/; comments, unknown keys (reserved for future use), and malformed
entries — a non-numeric or non-positive port, a missing field, an empty
name. Silently skipping the bad lines keeps one typo in a deployed bundle
from suppressing the instance's remaining endpoints. The example above
yields:

	[{web http 8080} {rpc grpc 9090}]

which RegisterServices posts under the owning instance's (instanceId,
nodeId, ip) triple. An instance with no meta.ini simply has no services;
that is the common case and costs nothing.
*/
package report
