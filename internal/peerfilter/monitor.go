package peerfilter

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// Monitor watches a network interface for peer-wire handshakes and applies
// the classification rules to every peer it observes. It is the standalone
// counterpart of the in-engine plugins: same rules, firewall-level action.
type Monitor struct {
	config       Config
	classifier   *Classifier
	banManager   *IPBanManager
	handle       *pcap.Handle
	logger       *Logger
	detectionLog *DetectionLogger
	pool         *WorkerPool
}

// NewMonitor creates a monitor capturing on the configured interface
func NewMonitor(config Config) (*Monitor, error) {
	handle, err := pcap.OpenLive(
		config.Interface,
		65536, // Snapshot length (max bytes per packet)
		true,  // Promiscuous mode
		pcap.BlockForever,
	)
	if err != nil {
		return nil, fmt.Errorf("could not open interface %s: %w", config.Interface, err)
	}

	// Handshakes only travel over TCP
	if err := handle.SetBPFFilter("tcp"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("could not set BPF filter: %w", err)
	}

	detectionLog, err := NewDetectionLogger(config.DetectionLogPath)
	if err != nil {
		handle.Close()
		return nil, err
	}

	m := &Monitor{
		config:       config,
		classifier:   NewClassifier(config),
		banManager:   NewIPBanManager(config.IPSetName, config.BanDuration),
		handle:       handle,
		logger:       NewLogger(config.LogLevel),
		detectionLog: detectionLog,
	}
	m.pool = NewWorkerPool(WorkerPoolConfig{
		MaxWorkers: config.MaxWorkers,
		QueueSize:  config.QueueSize,
	}, m.processPacket)
	return m, nil
}

// Start begins the capture loop; it returns when ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) error {
	m.logger.Info("peer monitor started on interface %s (monitor-only: %v, log level: %s)",
		m.config.Interface, m.config.MonitorOnly, m.config.LogLevel)

	if m.pool != nil {
		m.pool.Start(ctx)
	}

	packetSource := gopacket.NewPacketSource(m.handle, m.handle.LinkType())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case packet := <-packetSource.Packets():
			if packet == nil {
				continue
			}
			if m.pool != nil {
				if !m.pool.Submit(packet) {
					m.logger.Debug("worker queue full, packet dropped")
				}
			} else {
				go m.processPacket(packet)
			}
		}
	}
}

// processPacket extracts the TCP payload and source endpoint of one packet
func (m *Monitor) processPacket(packet gopacket.Packet) {
	ipLayer := packet.Layer(layers.LayerTypeIPv4)
	if ipLayer == nil {
		return
	}
	ip, _ := ipLayer.(*layers.IPv4)

	tcpLayer := packet.Layer(layers.LayerTypeTCP)
	if tcpLayer == nil {
		return
	}
	tcp, _ := tcpLayer.(*layers.TCP)
	if len(tcp.Payload) == 0 {
		return
	}

	m.handlePayload(ip.SrcIP, uint16(tcp.SrcPort), tcp.Payload)
}

// handlePayload classifies the remote peer behind one TCP payload and bans
// it on a match.
func (m *Monitor) handlePayload(srcIP net.IP, srcPort uint16, payload []byte) {
	id, ok := ParseHandshake(payload)
	if !ok {
		return
	}

	peer := PeerInfo{ID: id, IP: srcIP, Port: srcPort}
	// Some clients pack the extended handshake into the same segment
	if client, ok := ParseClientVersion(payload); ok {
		peer.Client = client
	}

	result := m.classifier.Classify(peer)
	if !result.Matched {
		return
	}

	country := lookupCountry(peer.IP)
	duration := formatDuration(m.config.BanDuration)
	m.logger.Info("[DETECT] %s:%d client=%q country=%q (%s) - banning for %s",
		srcIP, srcPort, peer.Client, country, result.Rule, duration)
	m.detectionLog.LogDetection(time.Now(), result.Rule, peer, country)

	if m.config.MonitorOnly {
		return
	}
	if err := m.banManager.BanIP(srcIP.String()); err != nil {
		m.logger.Error("failed to ban peer %s: %v", srcIP, err)
	}
}

// formatDuration converts seconds to a human-readable duration string
func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, minutes)
}

// Close cleans up resources
func (m *Monitor) Close() error {
	if m.handle != nil {
		m.handle.Close()
	}
	if m.detectionLog != nil {
		return m.detectionLog.Close()
	}
	return nil
}
