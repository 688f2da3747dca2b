package nudge

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plumstack/plum/pkg/log"
	"github.com/plumstack/plum/pkg/metrics"
	"github.com/plumstack/plum/pkg/transport"
)

const reconnectDelay = time.Second

// Nudger subscribes to the controller's push channel and converts any
// arriving bytes into wake-ups for the reconciler. The stream payload is
// deliberately not parsed: the assignments endpoint is the single source of
// truth and the stream is only a latency optimisation, so coupling to its
// schema would buy nothing.
type Nudger struct {
	controller string
	nodeID     string
	nudgeCh    chan struct{}
	stopCh     chan struct{}
	doneCh     chan struct{}
	logger     zerolog.Logger
}

// New creates a nudger for the given controller and node.
func New(controller, nodeID string) *Nudger {
	return &Nudger{
		controller: controller,
		nodeID:     nodeID,
		nudgeCh:    make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
		logger:     log.WithComponent("nudge"),
	}
}

// C returns the channel nudges are delivered on. The channel has capacity
// one; while a nudge is pending further arrivals coalesce into it.
func (n *Nudger) C() <-chan struct{} {
	return n.nudgeCh
}

// Start runs the subscribe/reconnect loop in its own goroutine.
func (n *Nudger) Start() {
	go n.run()
}

// Stop tears the stream down and waits for the loop to exit.
func (n *Nudger) Stop() {
	close(n.stopCh)
	<-n.doneCh
}

func (n *Nudger) run() {
	defer close(n.doneCh)
	url := fmt.Sprintf("%s/v1/stream?nodeId=%s", n.controller, n.nodeID)

	for {
		select {
		case <-n.stopCh:
			return
		default:
		}

		err := transport.Stream(url, func([]byte) { n.nudge() }, n.stopCh)
		if err != nil {
			n.logger.Debug().Err(err).Msg("event stream disconnected")
		}

		select {
		case <-n.stopCh:
			return
		case <-time.After(reconnectDelay):
			metrics.StreamReconnectsTotal.Inc()
		}
	}
}

func (n *Nudger) nudge() {
	select {
	case n.nudgeCh <- struct{}{}:
	default:
		// A wake-up is already pending; arrivals coalesce.
	}
}
