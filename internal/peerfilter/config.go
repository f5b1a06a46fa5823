package peerfilter

// Config holds the configuration for the peer monitor and classifier
type Config struct {
	Interface        string // Network interface to monitor (e.g., "eth0")
	GeoIPPath        string // Path to the GeoLite2-Country mmdb database
	IPSetName        string
	BanDuration      int    // Duration in seconds
	LogLevel         string // Logging level: error, warn, info, debug
	DetectionLogPath string // Path to detection log file (empty = disabled)
	MonitorOnly      bool   // If true, only log detections without banning IPs

	// Per-rule enable flags; several rules may run at once
	DropBadPeers           bool
	DropUnknownPeers       bool
	DropOfflineDownloaders bool
	DropMediaPlayers       bool

	// Worker pool sizing for packet processing (0 = unbounded goroutines)
	MaxWorkers int
	QueueSize  int
}

// DefaultConfig returns a configuration with recommended defaults
func DefaultConfig() Config {
	pool := DefaultWorkerPoolConfig()
	return Config{
		Interface:        "eth0",
		GeoIPPath:        "/usr/share/GeoIP/GeoLite2-Country.mmdb",
		IPSetName:        "peer_block",
		BanDuration:      18000, // 5 hours in seconds
		LogLevel:         "info",
		DetectionLogPath: "",    // Disabled by default
		MonitorOnly:      false, // Enable banning by default

		// Bad peers are high-confidence signatures; the other rules are
		// narrower heuristics and opt-in
		DropBadPeers:           true,
		DropUnknownPeers:       false,
		DropOfflineDownloaders: false,
		DropMediaPlayers:       false,

		MaxWorkers: pool.MaxWorkers,
		QueueSize:  pool.QueueSize,
	}
}
