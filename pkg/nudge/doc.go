/*
Package nudge holds the long-lived subscription to the controller's event
stream and converts it into wake-ups for the reconcile loop.

# Why a nudger

The reconciler polls assignments every tick. Polling alone makes a
controller-side change wait up to a full tick before the agent notices; the
event stream cuts that to near-zero:

	controller ──SSE /v1/stream?nodeId=──▶ Nudger ──nudge──▶ reconcile loop
	                 (any bytes)                    (chan)     wakes early

	w := nudge.New(cfg.Controller, cfg.NodeID)
	w.Start()
	recon.Run(stopCh, w.C())   // select{ ...; case <-nudgeCh; case <-ticker.C }

The stream payload is deliberately never parsed. The assignments endpoint
is the single source of truth; if the nudger interpreted stream events it
would become a second, redundant one, and a schema change could wedge it.
Any arriving bytes — the controller's initial ping included — mean exactly
"re-fetch now".

# Coalescing

The nudge channel has capacity one and sends never block. A burst of ten
stream events while the reconciler is mid-tick collapses into a single
pending wake-up, which is correct: one fetch observes the sum of all ten
changes. Losing the distinction costs nothing because nudges carry no data.

# Disconnection

Stream drops are routine — controller restarts, idle connection reaping,
network blips. The loop sleeps one second and reconnects, forever, until
Stop. During an outage the agent degrades to plain periodic polling rather
than failing: a dead stream costs latency, never correctness. Reconnect
attempts are visible in the plum_agent_stream_reconnects_total metric, which is the signal
to look at when assignment changes seem slow to land.
*/
package nudge
