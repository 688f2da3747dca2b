/*
Package types defines the data structures shared between the Plum agent's
components and the controller's HTTP surface.

# Desired state: assignments

The controller publishes intent as a list of Assignment records:

	{"items": [
	  {"instanceId": "i1", "desired": "Running",
	   "artifactUrl": "/artifacts/demo-1.4.zip",
	   "startCmd": "", "appName": "demo", "appVersion": "1.4.0"}
	]}

Only instanceId, desired and artifactUrl are load-bearing. StartCmd is
optional (empty means ./start.sh), appName/appVersion are optional and only
feed the child's environment, and unknown fields are ignored so the
controller can evolve the schema without breaking older agents. Only items
with desired == Running are ever materialized.

# Actual state: phases

The agent reports each instance's lifecycle with a Phase:

	            spawn                     told to stop, reaped
	  (absent) ───────▶ Running ──────────────────────▶ Stopped
	                       │
	                       │ exits on its own
	                       ├─ code 0 ────▶ Exited   (healthy)
	                       └─ non-zero ──▶ Failed   (unhealthy)

Stopped, Exited and Failed are terminal: each is reported exactly once, the
instance leaves the agent's tracking map, and a later desired=Running item
starts a fresh child. When a stop was requested and the child also happens
to exit on its own, Stopped wins; the operator's intent outranks the
incidental exit code.

# Report and registration bodies

InstanceStatus, ServiceRegistration, ServiceHeartbeat and NodeHeartbeat
mirror the controller's POST bodies field for field:

	{"instanceId":"i1","phase":"Failed","exitCode":3,"healthy":false,"tsUnix":1722951900}

ServiceEndpoint tuples come from service= lines in an instance's meta.ini
(see package report) and attach to the owning instance's (instanceId,
nodeId, ip) triple. This package stays declaration-only: parsing, posting
and state transitions live with the components that own them.
*/
package types
