package peerfilter

import (
	"context"
	"runtime"

	"github.com/google/gopacket"
)

// WorkerPoolConfig bounds concurrent packet processing in the monitor
type WorkerPoolConfig struct {
	// MaxWorkers is the maximum number of concurrent packet processors.
	// Set to 0 to disable the pool (one goroutine per packet).
	MaxWorkers int

	// QueueSize is the buffered channel size for pending packets.
	// Larger values use more memory but absorb traffic bursts better.
	QueueSize int
}

// DefaultWorkerPoolConfig returns recommended worker pool settings
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	cpus := runtime.NumCPU()
	return WorkerPoolConfig{
		MaxWorkers: cpus * 2,
		QueueSize:  cpus * 8,
	}
}

// WorkerPool processes captured packets with bounded concurrency
type WorkerPool struct {
	config WorkerPoolConfig
	jobs   chan gopacket.Packet
	fn     func(gopacket.Packet)
}

// NewWorkerPool creates a worker pool invoking fn for each submitted
// packet. Returns nil when config.MaxWorkers is 0 (pool disabled).
func NewWorkerPool(config WorkerPoolConfig, fn func(gopacket.Packet)) *WorkerPool {
	if config.MaxWorkers <= 0 {
		return nil
	}
	if config.QueueSize <= 0 {
		config.QueueSize = config.MaxWorkers * 4
	}
	return &WorkerPool{
		config: config,
		jobs:   make(chan gopacket.Packet, config.QueueSize),
		fn:     fn,
	}
}

// Start launches the workers; they exit when ctx is cancelled.
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.config.MaxWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case packet := <-p.jobs:
					p.fn(packet)
				}
			}
		}()
	}
}

// Submit queues a packet for processing. Returns false when the queue is
// full and the packet was dropped; classification is best-effort under
// load.
func (p *WorkerPool) Submit(packet gopacket.Packet) bool {
	select {
	case p.jobs <- packet:
		return true
	default:
		return false
	}
}
