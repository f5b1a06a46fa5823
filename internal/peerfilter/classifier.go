package peerfilter

// Rule names reported in classification results and detection logs.
const (
	RuleBadPeer           = "Bad Peer"
	RuleUnknownPeer       = "Unknown Peer"
	RuleOfflineDownloader = "Offline Downloader"
	RuleMediaPlayer       = "Media Player"
)

// ClassifyResult contains the result of classifying one peer
type ClassifyResult struct {
	Matched bool
	Rule    string
}

// Classifier runs the enabled classification rules against peer snapshots
type Classifier struct {
	config Config
}

// NewClassifier creates a new peer classifier with the given configuration
func NewClassifier(config Config) *Classifier {
	return &Classifier{
		config: config,
	}
}

// Classify evaluates the enabled rules in fixed order and returns the first
// match. It is pure and safe for concurrent use.
func (c *Classifier) Classify(peer PeerInfo) ClassifyResult {
	if c.config.DropBadPeers && IsBadPeer(peer) {
		return ClassifyResult{Matched: true, Rule: RuleBadPeer}
	}
	if c.config.DropUnknownPeers && IsUnknownPeer(peer) {
		return ClassifyResult{Matched: true, Rule: RuleUnknownPeer}
	}
	if c.config.DropOfflineDownloaders && IsOfflineDownloader(peer) {
		return ClassifyResult{Matched: true, Rule: RuleOfflineDownloader}
	}
	if c.config.DropMediaPlayers && IsMediaPlayer(peer) {
		return ClassifyResult{Matched: true, Rule: RuleMediaPlayer}
	}
	return ClassifyResult{}
}
