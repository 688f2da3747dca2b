/*
Package log provides structured logging for the Plum agent built on zerolog.

Setup runs once at startup and configures the global logger; components
derive child loggers carrying the fields operators filter on:

	log.Setup(log.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	logger := log.WithComponent("reconciler")
	logger.Info().Str("instance_id", id).Msg("instance started")

Output goes to stderr: stdout belongs to the agent's children, which inherit
its file descriptors. The console format (RFC3339 timestamps) is the
default; JSON output is available for log collectors. Level strings
tolerate the usual aliases ("warning", "err"); an unrecognized level falls
back to info rather than failing startup.
*/
package log
