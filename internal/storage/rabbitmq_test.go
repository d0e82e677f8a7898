package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAcknowledger 记录Ack/Nack调用，替代真实AMQP通道
type fakeAcknowledger struct {
	mu      sync.Mutex
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nacked = append(f.nacked, tag)
	f.requeue = append(f.requeue, requeue)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func (f *fakeAcknowledger) snapshot() (acked, nacked []uint64, requeue []bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uint64(nil), f.acked...),
		append([]uint64(nil), f.nacked...),
		append([]bool(nil), f.requeue...)
}

func TestConsumeLoopAckAndNackNoRequeue(t *testing.T) {
	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("ok")}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("bad")}
	close(deliveries)

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumeLoop(context.Background(), "q.test", deliveries, func(body []byte) bool {
			return string(body) == "ok"
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("投递通道关闭后消费循环未退出")
	}

	acked, nacked, requeue := ack.snapshot()
	assert.Equal(t, []uint64{1}, acked)
	require.Equal(t, []uint64{2}, nacked)
	// 失败的消息不重新入队
	assert.Equal(t, []bool{false}, requeue)
}

func TestConsumeLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan amqp.Delivery)

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumeLoop(ctx, "q.test", deliveries, func([]byte) bool { return true })
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ctx取消后消费循环未退出")
	}
}
