package peerfilter

import "net"

// PeerInfo is a read-only snapshot of one connected peer's observable
// attributes. The engine constructs it per connection event; it is only
// valid for the duration of the filter callback and must not be retained.
type PeerInfo struct {
	ID     []byte // protocol peer-id, 20 bytes from a well-formed handshake
	Client string // client string declared by the remote peer, forgeable
	IP     net.IP
	Port   uint16
}

// idPrefix returns the first 8 bytes of the peer-id, where clients embed
// their signature token, or "" when the peer-id is too short to carry one.
func (p PeerInfo) idPrefix() string {
	if len(p.ID) < 8 {
		return ""
	}
	return string(p.ID[:8])
}
