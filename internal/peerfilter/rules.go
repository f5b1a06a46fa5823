package peerfilter

import (
	"regexp"
	"strings"
)

// Rule patterns, assembled from the literal sets in signatures.go. Compiled
// once at package init, immutable afterward, safe for unsynchronized
// concurrent reads. Peer-id patterns are anchored and evaluated against the
// fixed 8-byte signature prefix only.
var (
	badPeerIDRegex     = regexp.MustCompile(`^-(` + strings.Join(BadClientCodes, "|") + `)\d+-$`)
	fakeClientRegex    = regexp.MustCompile(`^(` + fakeClientPattern + `)$`)
	consumeClientRegex = regexp.MustCompile(`(?i)^(` + strings.Join(ConsumeClientSignatures, "|") + `)$`)
	offlinePeerIDRegex = regexp.MustCompile(`^-LT(` + strings.Join(OfflineLibtorrentVersions, "|") + `)-$`)
	playerPeerIDRegex  = regexp.MustCompile(`^-(` + playerIDPattern + `)-$`)
)

// RuleFunc is a single classification rule: a pure predicate over one peer
// snapshot. Rules never mutate the snapshot or any shared state.
type RuleFunc func(peer PeerInfo) bool

// IsBadPeer reports whether the peer carries a known-bad client signature
// in its peer-id or a spoofed client string.
func IsBadPeer(peer PeerInfo) bool {
	// Traffic-consumption clients are only blocked for the region they are
	// reported from; checked before the general signatures.
	if lookupCountry(peer.IP) == consumeClientCountry && consumeClientRegex.MatchString(peer.Client) {
		return true
	}
	return badPeerIDRegex.MatchString(peer.idPrefix()) || fakeClientRegex.MatchString(peer.Client)
}

// IsUnknownPeer reports whether the peer declares an unrecognized client
// from the gated region.
func IsUnknownPeer(peer PeerInfo) bool {
	return strings.Contains(peer.Client, unknownClientMarker) && lookupCountry(peer.IP) == unknownClientCountry
}

// IsOfflineDownloader reports whether the peer looks like a commercial
// offline-download service masquerading as a regular client.
func IsOfflineDownloader(peer PeerInfo) bool {
	country := lookupCountry(peer.IP)
	fakeTransmission := peer.Port >= offlinePortFloor &&
		country == offlineSpoofedCountry &&
		strings.Contains(peer.Client, offlineSpoofedClient)
	fakeLibtorrent := false
	for _, c := range OfflineDownloaderCountries {
		if country == c {
			fakeLibtorrent = offlinePeerIDRegex.MatchString(peer.idPrefix())
			break
		}
	}
	return fakeTransmission || fakeLibtorrent
}

// IsMediaPlayer reports whether the peer is a streaming media player, by
// declared client name or by peer-id signature.
func IsMediaPlayer(peer PeerInfo) bool {
	for _, name := range PlayerClientNames {
		if strings.Contains(peer.Client, name) {
			return true
		}
	}
	return playerPeerIDRegex.MatchString(peer.idPrefix())
}
