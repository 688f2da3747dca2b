/*
Package config loads the agent configuration.

Sources are layered, lowest to highest precedence: compiled-in defaults, an
optional YAML file, a .env file (searched next to the executable, in its
parent directory, then the working directory), and finally the process
environment. The environment variables understood are:

	AGENT_NODE_ID        node identity (default nodeA)
	CONTROLLER_BASE      controller base URL (default http://127.0.0.1:8080)
	CONTROLLER_GRPC_ADDR controller task-stream address (default <controller host>:9090)
	AGENT_IP             node address reported to the controller
	AGENT_DATA_DIR       on-disk state root (default /tmp/plum-agent)
	AGENT_METRICS_ADDR   Prometheus listen address (empty disables)
	AGENT_LOG_LEVEL      debug, info, warn or error
	AGENT_TICK_INTERVAL  reconcile period
	AGENT_DRAIN_TIMEOUT  shutdown drain bound
*/
package config
