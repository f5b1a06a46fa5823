package peerfilter

// TorrentHandle exposes the torrent metadata needed to decide whether
// filtering applies to a torrent at all.
type TorrentHandle interface {
	// HasMetadata reports whether the torrent's metadata is known yet.
	HasMetadata() bool
	// Private reports the torrent's private flag; only meaningful when
	// HasMetadata is true.
	Private() bool
}

// TorrentPlugin is the per-torrent extension hook handed back to the
// engine. The engine calls OnPeerConnected for every peer connection
// belonging to the torrent and, on a true result, hands the live connection
// to HandleMatch.
type TorrentPlugin interface {
	OnPeerConnected(peer PeerInfo, handshake bool, stopFiltering *bool) bool
	HandleMatch(ph ConnectionHandle)
}

// peerActionPlugin binds one filter to one action for a torrent's lifetime.
// It holds no other state and is safe for callbacks from any of the
// engine's connection-handling contexts.
type peerActionPlugin struct {
	filter ConnectionFilter
	action ActionFunc
}

func (p *peerActionPlugin) OnPeerConnected(peer PeerInfo, handshake bool, stopFiltering *bool) bool {
	return p.filter(peer, handshake, stopFiltering)
}

func (p *peerActionPlugin) HandleMatch(ph ConnectionHandle) {
	p.action(ph)
}

// NewPeerActionPlugin builds a plugin binding filter and action for the
// given torrent. Private torrents are exempt by policy: their swarms are
// closed and tracker-managed, so nil is returned and nothing is installed
// for them, permanently for that torrent's lifetime.
func NewPeerActionPlugin(th TorrentHandle, filter ConnectionFilter, action ActionFunc) TorrentPlugin {
	if th != nil && th.HasMetadata() && th.Private() {
		return nil
	}
	return &peerActionPlugin{filter: filter, action: action}
}

// Plugin factories, one per rule. Each is independently installable and
// several may run on the same torrent at once, each with its own filter and
// the shared drop action.

// NewDropBadPeersPlugin drops peers with known-bad client signatures or
// spoofed client strings.
func NewDropBadPeersPlugin(th TorrentHandle) TorrentPlugin {
	return NewPeerActionPlugin(th, WrapFilter(IsBadPeer), DropConnection)
}

// NewDropUnknownPeersPlugin drops unrecognized clients from the gated
// region.
func NewDropUnknownPeersPlugin(th TorrentHandle) TorrentPlugin {
	return NewPeerActionPlugin(th, WrapFilter(IsUnknownPeer), DropConnection)
}

// NewDropOfflineDownloaderPlugin drops commercial offline-download
// services.
func NewDropOfflineDownloaderPlugin(th TorrentHandle) TorrentPlugin {
	return NewPeerActionPlugin(th, WrapFilter(IsOfflineDownloader), DropConnection)
}

// NewDropMediaPlayerPlugin drops streaming media players.
func NewDropMediaPlayerPlugin(th TorrentHandle) TorrentPlugin {
	return NewPeerActionPlugin(th, WrapFilter(IsMediaPlayer), DropConnection)
}
