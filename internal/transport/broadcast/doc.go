// Package broadcast is the fire-and-forget publish/subscribe channel between
// the daemon and its listeners, carried over ZeroMQ PUB/SUB sockets.
//
// Publishing never waits for subscribers. A subscriber only sees frames sent
// after it connected: there is no buffering, replay or acknowledgement.
package broadcast
