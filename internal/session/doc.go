// Package session owns the lifecycle of one eye tracker session.
//
// A Manager selects a device through the driver port, subscribes to the
// streams it needs, pumps the driver's blocking wait/dispatch pair one step
// per Poll call and tears everything down on Close:
//
//	Unopened -> Opening -> Opened -> Subscribed -> Closed
//
// Poll is only valid while Subscribed. Close is valid from any state, is
// best-effort and always ends in Closed.
//
// Driver callbacks run synchronously inside Poll. The latest sample is
// published by pointer swap, so LatestSample may be called from any
// goroutine without blocking.
package session
