package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/PeerGuard/internal/peerfilter"
)

// Version information (set at build time via ldflags)
var (
	Version = "0.1.0"
	Commit  = "dev"
	Date    = "unknown"
)

func main() {
	config := peerfilter.DefaultConfig()

	// Define flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&config.Interface, "iface", config.Interface, "Network interface to monitor")
	flag.StringVar(&config.GeoIPPath, "geoip", config.GeoIPPath, "Path to GeoLite2-Country database")
	flag.StringVar(&config.IPSetName, "ipset", config.IPSetName, "ipset set name for banned peers")
	flag.IntVar(&config.BanDuration, "ban-duration", config.BanDuration, "Ban duration in seconds")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: error, warn, info, debug")
	flag.StringVar(&config.DetectionLogPath, "detection-log", config.DetectionLogPath, "Detection log file path (empty = disabled)")
	flag.BoolVar(&config.MonitorOnly, "monitor-only", config.MonitorOnly, "Only log detections without banning IPs")
	flag.BoolVar(&config.DropBadPeers, "drop-bad-peers", config.DropBadPeers, "Ban peers with known-bad client signatures")
	flag.BoolVar(&config.DropUnknownPeers, "drop-unknown-peers", config.DropUnknownPeers, "Ban unrecognized clients from the gated region")
	flag.BoolVar(&config.DropOfflineDownloaders, "drop-offline-downloaders", config.DropOfflineDownloaders, "Ban commercial offline-download services")
	flag.BoolVar(&config.DropMediaPlayers, "drop-media-players", config.DropMediaPlayers, "Ban streaming media players")
	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("peerguard version %s\n", Version)
		fmt.Printf("  commit: %s\n", Commit)
		fmt.Printf("  built:  %s\n", Date)
		os.Exit(0)
	}

	// The resolver must be installed before any classification runs
	resolver, err := peerfilter.OpenGeoIPResolver(config.GeoIPPath)
	if err != nil {
		log.Fatalf("Failed to open GeoIP database: %v", err)
	}
	defer resolver.Close()
	peerfilter.SetResolver(resolver)

	monitor, err := peerfilter.NewMonitor(config)
	if err != nil {
		log.Fatalf("Failed to create monitor: %v", err)
	}
	defer monitor.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := monitor.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Monitor stopped: %v", err)
	}

	log.Println("Shutting down...")
}
