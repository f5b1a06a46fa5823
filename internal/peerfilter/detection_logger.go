package peerfilter

import (
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"
)

// DetectionLogger logs detailed peer information for matched connections.
// This helps analyze false positives and keep the literal signature sets
// current.
type DetectionLogger struct {
	file   *os.File
	mu     sync.Mutex
	active bool
}

// NewDetectionLogger creates a new detection logger.
// If logPath is empty, detection logging is disabled.
func NewDetectionLogger(logPath string) (*DetectionLogger, error) {
	if logPath == "" {
		return &DetectionLogger{active: false}, nil
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open detection log file: %w", err)
	}

	return &DetectionLogger{
		file:   file,
		active: true,
	}, nil
}

// LogDetection logs one matched peer with the rule that caught it
func (dl *DetectionLogger) LogDetection(timestamp time.Time, rule string, peer PeerInfo, country string) {
	if !dl.active {
		return
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	if country == "" {
		country = "(unknown)"
	}

	fmt.Fprintf(dl.file, "================================================================================\n")
	fmt.Fprintf(dl.file, "Timestamp:  %s\n", timestamp.Format("2006-01-02 15:04:05.000"))
	fmt.Fprintf(dl.file, "Rule:       %s\n", rule)
	fmt.Fprintf(dl.file, "Peer:       %s:%d\n", peer.IP, peer.Port)
	fmt.Fprintf(dl.file, "Country:    %s\n", country)
	fmt.Fprintf(dl.file, "Client:     %q\n", peer.Client)
	fmt.Fprintf(dl.file, "Peer ID:    %s  |%s|\n", hex.EncodeToString(peer.ID), printableASCII(peer.ID))
	fmt.Fprintf(dl.file, "\n")
}

// Close closes the detection log file
func (dl *DetectionLogger) Close() error {
	if !dl.active || dl.file == nil {
		return nil
	}

	// Close the file and set it to nil to prevent double-close
	err := dl.file.Close()
	dl.file = nil
	dl.active = false
	return err
}

// printableASCII renders data with non-printable bytes as dots
func printableASCII(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	result := make([]byte, 0, len(data))
	for _, b := range data {
		if b >= 32 && b <= 126 {
			result = append(result, b)
		} else {
			result = append(result, '.')
		}
	}
	return string(result)
}
