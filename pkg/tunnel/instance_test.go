package tunnel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arhat.dev/tunnet/pkg/packet"
)

// captureStack records dispatched buffers for inspection.
type captureStack struct {
	mu      sync.Mutex
	packets []*packet.Buffer
	frames  []*packet.Buffer
}

func (s *captureStack) DeliverPacket(b *packet.Buffer) error {
	s.mu.Lock()
	s.packets = append(s.packets, b)
	s.mu.Unlock()
	return nil
}

func (s *captureStack) DeliverFrame(b *packet.Buffer) error {
	s.mu.Lock()
	s.frames = append(s.frames, b)
	s.mu.Unlock()
	return nil
}

func newTestInstance(t *testing.T, opts Options) (*Instance, *Adapter, *captureStack) {
	ins, err := NewInstance("tun0", 0, opts)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	stack := new(captureStack)
	ad, err := AttachAdapter(ins, stack)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return ins, ad, stack
}

func TestInstanceOpenExclusive(t *testing.T) {
	ins, _, _ := newTestInstance(t, Options{})

	ep, err := ins.Open("first")
	assert.NoError(t, err)
	assert.Equal(t, StateOpen, ins.State())

	_, err = ins.Open("second")
	assert.True(t, errors.Is(err, ErrBusy))

	// closing the endpoint releases the instance for the next opener
	assert.NoError(t, ep.Close())
	assert.Equal(t, StateInitialized, ins.State())

	ep2, err := ins.Open("second")
	assert.NoError(t, err)
	_ = ep2.Close()
}

func TestInstanceOpenWithoutAdapter(t *testing.T) {
	ins, err := NewInstance("tun0", 0, Options{})
	assert.NoError(t, err)

	_, err = ins.Open("test")
	assert.True(t, errors.Is(err, ErrNotReady))
}

func TestInstanceHeaderMode(t *testing.T) {
	ins, _, _ := newTestInstance(t, Options{})

	info := ins.Status()
	assert.False(t, info.HeaderEnabled)

	assert.Error(t, ins.SetHeaderMode(true, 5))

	assert.NoError(t, ins.SetHeaderMode(true, packet.HeaderLenOffload))
	info = ins.Status()
	assert.True(t, info.HeaderEnabled)
	assert.EqualValues(t, packet.HeaderLenOffload, info.HeaderLen)

	assert.NoError(t, ins.SetHeaderMode(false, 0))
	info = ins.Status()
	assert.False(t, info.HeaderEnabled)
	assert.Zero(t, info.HeaderLen)
}

func TestInstanceSubscribe(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{})

	evCh, cancel := ins.Subscribe(16)
	defer cancel()

	ep, err := ins.Open("test")
	assert.NoError(t, err)

	select {
	case ev := <-evCh:
		assert.Equal(t, EventLinkUp, ev.Kind)
		assert.Equal(t, "tun0", ev.Name)
	case <-time.After(time.Second):
		assert.FailNow(t, "no link up event")
	}

	err = ad.SubmitOutbound(packet.New([]byte{0x45}, packet.FamilyIPv4))
	assert.NoError(t, err)

	select {
	case ev := <-evCh:
		assert.Equal(t, EventPacketQueued, ev.Kind)
	case <-time.After(time.Second):
		assert.FailNow(t, "no packet queued event")
	}

	_ = ep.Close()

	select {
	case ev := <-evCh:
		assert.Equal(t, EventLinkDown, ev.Kind)
	case <-time.After(time.Second):
		assert.FailNow(t, "no link down event")
	}
}

func TestInstanceQueueFull(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{QueueSize: 2})

	assert.NoError(t, ad.SubmitOutbound(packet.New([]byte{0x45}, packet.FamilyIPv4)))
	assert.NoError(t, ad.SubmitOutbound(packet.New([]byte{0x45}, packet.FamilyIPv4)))

	err := ad.SubmitOutbound(packet.New([]byte{0x45}, packet.FamilyIPv4))
	assert.True(t, errors.Is(err, ErrNoBuffers))

	assert.Equal(t, 2, ins.Status().QueueLen)
}

func TestInstanceMarkDying(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{})

	assert.NoError(t, ins.MarkDying())
	assert.Equal(t, StateDying, ins.State())

	// second destroy claim fails
	assert.True(t, errors.Is(ins.MarkDying(), ErrBusy))

	// new operations are refused
	_, err := ins.Open("late")
	assert.True(t, errors.Is(err, ErrBusy))
	assert.True(t, errors.Is(ins.Ensure(true), ErrHostDown))
	err = ad.SubmitOutbound(packet.New([]byte{0x45}, packet.FamilyIPv4))
	assert.True(t, errors.Is(err, ErrHostDown))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, ins.AwaitDrained(ctx))
}

func TestInstanceDestroyWakesBlockedReader(t *testing.T) {
	ins, _, _ := newTestInstance(t, Options{})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	readRet := make(chan error, 1)
	go func() {
		_, err2 := ep.ReadPacket(context.Background(), ReadOptions{Blocking: true})
		readRet <- err2
	}()

	// let the reader block before destruction starts
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, ins.MarkDying())

	select {
	case err = <-readRet:
		assert.True(t, errors.Is(err, ErrHostDown))
	case <-time.After(time.Second):
		assert.FailNow(t, "blocked reader not woken by destroy")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, ins.AwaitDrained(ctx))
}
