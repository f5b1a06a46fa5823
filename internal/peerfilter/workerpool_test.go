package peerfilter

import (
	"context"
	"testing"
	"time"

	"github.com/google/gopacket"
)

func TestNewWorkerPool_Disabled(t *testing.T) {
	if pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 0}, nil); pool != nil {
		t.Error("MaxWorkers 0 should disable the pool")
	}
}

func TestWorkerPool_ProcessesSubmittedPackets(t *testing.T) {
	processed := make(chan gopacket.Packet, 4)
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 2, QueueSize: 4}, func(p gopacket.Packet) {
		processed <- p
	})
	if pool == nil {
		t.Fatal("NewWorkerPool returned nil for an enabled pool")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	if !pool.Submit(nil) {
		t.Fatal("Submit failed on an empty queue")
	}

	select {
	case <-processed:
	case <-time.After(time.Second):
		t.Fatal("submitted packet was not processed")
	}
}

func TestWorkerPool_DropsWhenQueueFull(t *testing.T) {
	// Pool never started: the queue fills up and further submits are dropped
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 1, QueueSize: 1}, func(gopacket.Packet) {})

	if !pool.Submit(nil) {
		t.Fatal("first Submit should fit in the queue")
	}
	if pool.Submit(nil) {
		t.Error("Submit should report a drop when the queue is full")
	}
}
