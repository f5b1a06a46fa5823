package peerfilter

import (
	"testing"
)

func TestClassifier_Classify(t *testing.T) {
	withResolver(t, testCountries)

	allRules := DefaultConfig()
	allRules.DropBadPeers = true
	allRules.DropUnknownPeers = true
	allRules.DropOfflineDownloaders = true
	allRules.DropMediaPlayers = true

	tests := []struct {
		name     string
		config   Config
		peer     PeerInfo
		wantRule string
	}{
		{
			name:     "Bad peer signature",
			config:   allRules,
			peer:     PeerInfo{ID: peerID("-XL1234-")},
			wantRule: RuleBadPeer,
		},
		{
			name:     "Unknown client from gated region",
			config:   allRules,
			peer:     PeerInfo{ID: peerID("-qB4500-"), Client: "Unknown Client 1.0", IP: cnAddr},
			wantRule: RuleUnknownPeer,
		},
		{
			name:     "Offline downloader signature",
			config:   allRules,
			peer:     PeerInfo{ID: peerID("-LT2070-"), IP: nlAddr},
			wantRule: RuleOfflineDownloader,
		},
		{
			name:     "Media player client",
			config:   allRules,
			peer:     PeerInfo{Client: "Elementum"},
			wantRule: RuleMediaPlayer,
		},
		{
			name:     "Clean peer",
			config:   allRules,
			peer:     PeerInfo{ID: peerID("-qB4500-"), Client: "qBittorrent/4.5.0", IP: usAddr},
			wantRule: "",
		},
		{
			name: "Disabled rule does not match",
			config: func() Config {
				c := DefaultConfig()
				c.DropBadPeers = false
				return c
			}(),
			peer:     PeerInfo{ID: peerID("-XL1234-")},
			wantRule: "",
		},
		{
			name: "Only enabled rule matches",
			config: func() Config {
				c := DefaultConfig()
				c.DropBadPeers = false
				c.DropMediaPlayers = true
				return c
			}(),
			peer:     PeerInfo{ID: peerID("-SP2501-"), Client: "192.168.1.1"},
			wantRule: RuleMediaPlayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewClassifier(tt.config).Classify(tt.peer)
			if result.Matched != (tt.wantRule != "") {
				t.Errorf("Classify().Matched = %v, want %v", result.Matched, tt.wantRule != "")
			}
			if result.Rule != tt.wantRule {
				t.Errorf("Classify().Rule = %q, want %q", result.Rule, tt.wantRule)
			}
		})
	}
}
