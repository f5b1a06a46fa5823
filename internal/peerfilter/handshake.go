package peerfilter

import "bytes"

// Peer-wire handshake layout: one length byte, the 19-byte protocol string,
// 8 reserved bytes, a 20-byte info-hash, then the 20-byte peer-id.
const (
	handshakeLen = 68
	peerIDOffset = 48
	peerIDLen    = 20
)

var protocolHeader = []byte("\x13BitTorrent protocol")

// ParseHandshake extracts the peer-id from a raw peer-wire handshake
// payload. Returns false when the payload is not a handshake.
func ParseHandshake(payload []byte) ([]byte, bool) {
	if len(payload) < handshakeLen || !bytes.HasPrefix(payload, protocolHeader) {
		return nil, false
	}
	id := make([]byte, peerIDLen)
	copy(id, payload[peerIDOffset:peerIDOffset+peerIDLen])
	return id, true
}

// Extended-handshake client version key, a bencoded string under "v",
// e.g. "1:v17:qBittorrent/4.5.0".
var clientVersionKey = []byte("1:v")

// Clients keep version strings short; anything longer is garbage.
const maxClientVersionLen = 256

// ParseClientVersion scans a payload for the extended-handshake client
// version string. Bounded; returns false on anything malformed.
func ParseClientVersion(payload []byte) (string, bool) {
	idx := bytes.Index(payload, clientVersionKey)
	if idx < 0 {
		return "", false
	}
	rest := payload[idx+len(clientVersionKey):]

	length := 0
	i := 0
	for ; i < len(rest) && rest[i] >= '0' && rest[i] <= '9'; i++ {
		length = length*10 + int(rest[i]-'0')
		if length > maxClientVersionLen {
			return "", false
		}
	}
	if i == 0 || i >= len(rest) || rest[i] != ':' {
		return "", false
	}

	value := rest[i+1:]
	if len(value) < length {
		return "", false
	}
	return string(value[:length]), true
}
