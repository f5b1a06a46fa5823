package peerfilter

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectionLogger_Disabled(t *testing.T) {
	dl, err := NewDetectionLogger("")
	require.NoError(t, err)
	assert.False(t, dl.active)

	// Logging and closing a disabled logger are no-ops
	dl.LogDetection(time.Now(), RuleBadPeer, PeerInfo{}, "")
	assert.NoError(t, dl.Close())
}

func TestDetectionLogger_WritesEntry(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "detections.log")
	dl, err := NewDetectionLogger(logPath)
	require.NoError(t, err)

	peer := PeerInfo{
		ID:     peerID("-XL1234-"),
		Client: "Xunlei 9.1",
		IP:     net.ParseIP("1.2.3.4"),
		Port:   6881,
	}
	dl.LogDetection(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), RuleBadPeer, peer, "CN")
	require.NoError(t, dl.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	entry := string(content)

	assert.Contains(t, entry, "Rule:       Bad Peer")
	assert.Contains(t, entry, "Peer:       1.2.3.4:6881")
	assert.Contains(t, entry, "Country:    CN")
	assert.Contains(t, entry, `Client:     "Xunlei 9.1"`)
	assert.Contains(t, entry, "-XL1234-")
}

func TestDetectionLogger_UnknownCountry(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "detections.log")
	dl, err := NewDetectionLogger(logPath)
	require.NoError(t, err)

	dl.LogDetection(time.Now(), RuleMediaPlayer, PeerInfo{Client: "Elementum"}, "")
	require.NoError(t, dl.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Country:    (unknown)")
}

func TestDetectionLogger_CloseTwice(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "detections.log")
	dl, err := NewDetectionLogger(logPath)
	require.NoError(t, err)

	assert.NoError(t, dl.Close())
	assert.NoError(t, dl.Close())
}
