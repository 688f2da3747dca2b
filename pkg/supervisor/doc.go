/*
Package supervisor spawns and tracks the agent's child processes.

Every child is launched through /bin/sh -c inside its application directory
and placed in a new session, so the child's process group id equals its pid
and a signal addressed to the negative pid reaches the entire subtree.

Termination is a two-phase escalation driven by the reconciler:

	Running ──SignalStop (SIGTERM to -pgid)──▶ Terminating
	Terminating ──grace elapsed, Kill (SIGKILL to -pgid)──▶ reaped

TryReap never blocks: an internal goroutine performs the Wait and publishes
the classified exit status. Children that survived an agent restart can be
re-attached with Adopt after VerifyInstancePID confirms, via the process's
/proc environ, that the pid still belongs to the instance.
*/
package supervisor
