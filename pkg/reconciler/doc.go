/*
Package reconciler implements the agent's control loop.

The reconciler owns the map from instance id to supervised child and is its
sole mutator. One tick is a strictly ordered three-phase pass:

	┌──────────────────────────────────────────────────────┐
	│                 Reconcile tick (5s or nudge)         │
	└──────────────┬───────────────────────────────────────┘
	               │
	     1. Reap   │  collect self-exited children,
	               │  report Stopped / Exited / Failed
	               ▼
	     2. Stop extras   SIGTERM instances missing from the
	               │      desired set; SIGKILL after 5s grace
	               ▼
	     3. Start missing  download + unpack artifact, spawn,
	                       report Running

After the desired set is applied the same tick registers and heartbeats
service endpoints for every desired instance, so a just-started instance is
registered without waiting for the next pass.

Failure policy: a failed assignments fetch (status 0, 5xx, or a malformed
body) mutates nothing; an empty desired set is never inferred from a failed
call. Artifact and spawn failures abort only that instance's start and are
retried by the next tick.

On shutdown Drain runs the stop/reap phases against an empty desired set in
a 100ms polling loop bounded by the drain budget (about 7s), guaranteeing
every child has been signalled before the agent exits.
*/
package reconciler
