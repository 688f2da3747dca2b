/*
Package taskworker embeds a task-execution runtime inside application
processes launched by the Plum agent.

A worker declares named handlers, opens one bidirectional gRPC stream to the
controller, registers itself, and then serves tasks pushed over the stream:

	w := taskworker.New(taskworker.Options{})
	w.RegisterTask("demo.echo", func(taskID string, payload []byte) ([]byte, error) {
		return payload, nil
	})
	if err := w.Start(); err != nil {
		...
	}
	defer w.Stop()

Identity (worker, node, instance, application) defaults to the environment
variables the agent injects into every child, so most workers construct with
empty Options.

Every inbound task produces exactly one Result message with the same task
id: handler output on success, the error text on failure, a captured message
on panic, and "Unknown task: <name>" when no handler matches. Handlers run
concurrently, one goroutine per task; stream writes are serialised under a
single mutex. A broken stream is re-dialled every ReconnectInterval with the
handler set intact, starting over from registration.
*/
package taskworker
