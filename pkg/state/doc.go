/*
Package state persists the agent's spawned-instance records in a local bbolt
database, so that a restarted agent can re-attach to children that are still
running instead of starting a second copy.

# What is stored

One record per spawned child, keyed by instance id, written at spawn time
and deleted at reap time:

	InstanceRecord{
		InstanceID: "i1",
		PID:        4217,
		StartCmd:   "./start.sh",
		StartedAt:  1722951843,
	}

The database lives at <dataDir>/<nodeId>/agent.db next to the instance
directories it describes, and holds a single "instances" bucket with
JSON-encoded values. Records are deliberately small: everything else about
an instance (its artifact, its services, its desired state) is either on
disk already or owned by the controller.

# Restart and adoption

Children run in their own sessions, so they survive an agent crash or
restart. On startup the reconciler replays the stored records:

	store, _ := state.Open(nodeDir)
	records, _ := store.List()
	for _, rec := range records {
		// verify rec.PID still belongs to rec.InstanceID, then adopt
	}

Verification is the supervisor's job (the pid must be alive and carry
PLUM_INSTANCE_ID=<id> in its /proc environ); this package only remembers
what was started. An adopted instance continues to be tracked, stopped, and
reported exactly like one the current process spawned.

# Failure scenarios

A record can go stale in two ways. The process may have exited while the
agent was down: verification fails, the record is pruned, and the next
reconcile tick starts the instance fresh. Or the pid may have been recycled
by an unrelated process: the environ check rejects it, which is why adoption
never trusts a bare pid match.

Writes are best-effort from the reconciler's point of view: a failed Put or
Delete costs at worst one redundant start or one stale record after the
next restart, both of which the verification step absorbs. The database
being unopenable at startup, however, is a bootstrap failure and stops the
agent, like the data directory itself being uncreatable.
*/
package state
