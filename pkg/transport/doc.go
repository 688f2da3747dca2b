/*
Package transport is the agent's HTTP client layer for the controller API.

Request/response calls go through Client, which reports a failed exchange as
status 0 rather than an error: the reconciler treats status 0 the same as a
5xx and simply retries on its next tick, so pushing error values through
every call site would only duplicate that policy.

Stream consumes the controller's long-lived event channel. It runs on a
dedicated client with TCP keep-alive and no overall deadline, and honours
stop requests by cancelling the request context and closing the body, which
unblocks the pending read.
*/
package transport
