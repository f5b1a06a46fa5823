package peerfilter

// ErrorCode classifies a disconnect for the engine's teardown accounting.
type ErrorCode int

// ErrConnectionRefused surfaces the teardown as a refused connection, with
// no retry from this subsystem's perspective.
const ErrConnectionRefused ErrorCode = 1

// Operation tags which protocol layer requested the disconnect.
type Operation int

// OpBittorrent marks a disconnect originating from peer-wire handling.
const OpBittorrent Operation = 1

// DisconnectSeverity is the engine's disconnect severity scale.
type DisconnectSeverity int

// DisconnectDefault is the default severity.
const DisconnectDefault DisconnectSeverity = 0

// ConnectionHandle is the engine-owned handle for one live peer connection.
// Disconnect must tolerate being called on an already-closing connection.
type ConnectionHandle interface {
	Disconnect(ec ErrorCode, op Operation, severity DisconnectSeverity)
}

// ActionFunc is a corrective action applied to a matched connection.
type ActionFunc func(ph ConnectionHandle)

// DropConnection asks the engine to terminate the connection as
// "connection refused". Fire-and-forget: invoking it on a connection that
// is already closing is a no-op from the caller's viewpoint.
func DropConnection(ph ConnectionHandle) {
	if ph == nil {
		return
	}
	ph.Disconnect(ErrConnectionRefused, OpBittorrent, DisconnectDefault)
}
