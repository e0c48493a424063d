package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string

		mode    tunnel.Mode
		unit    int
		auto    bool
		invalid bool
	}{
		{name: "", mode: tunnel.ModePacket, auto: true},
		{name: "tun", mode: tunnel.ModePacket, auto: true},
		{name: "tap", mode: tunnel.ModeFrame, auto: true},
		{name: "tun0", mode: tunnel.ModePacket, unit: 0},
		{name: "tun10", mode: tunnel.ModePacket, unit: 10},
		{name: "tap3", mode: tunnel.ModeFrame, unit: 3},

		{name: "eth0", invalid: true},
		{name: "tun01", invalid: true},
		{name: "tun-1", invalid: true},
		{name: "tun1x", invalid: true},
		{name: "Tun0", invalid: true},
	}

	for _, test := range tests {
		t.Run("name="+test.name, func(t *testing.T) {
			mode, unit, auto, err := ParseName(test.name)
			if test.invalid {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.mode, mode)
			assert.Equal(t, test.unit, unit)
			assert.Equal(t, test.auto, auto)
		})
	}
}

func TestRegistryAutoAllocation(t *testing.T) {
	r := New()

	t0, err := r.Create("tun", tunnel.Options{})
	assert.NoError(t, err)
	assert.Equal(t, "tun0", t0.Name())
	assert.Equal(t, 0, t0.Unit())

	t1, err := r.Create("", tunnel.Options{})
	assert.NoError(t, err)
	assert.Equal(t, "tun1", t1.Name())

	// frame mode units come from their own pool
	f0, err := r.Create("tap", tunnel.Options{})
	assert.NoError(t, err)
	assert.Equal(t, "tap0", f0.Name())
	assert.Equal(t, tunnel.ModeFrame, f0.Mode())

	assert.Equal(t, []string{"tap0", "tun0", "tun1"}, r.Names())
}

func TestRegistryCloneOnOpen(t *testing.T) {
	r := New()

	t0, err := r.Create("tun2", tunnel.Options{MTU: 1400})
	assert.NoError(t, err)
	assert.Equal(t, "tun2", t0.Name())

	// same name resolves to the live instance, options are not reapplied
	t1, err := r.Create("tun2", tunnel.Options{MTU: 9000})
	assert.NoError(t, err)
	assert.Same(t, t0, t1)
	assert.EqualValues(t, 1400, t1.MTU())
}

func TestRegistryDestroy(t *testing.T) {
	r := New()

	t0, err := r.Create("tun0", tunnel.Options{})
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, r.Destroy(ctx, "tun0"))
	assert.Equal(t, tunnel.StateDying, t0.State())

	_, found := r.Get("tun0")
	assert.False(t, found)

	err = r.Destroy(ctx, "tun0")
	assert.Error(t, err)

	// unit number is free again after the drain completed
	t1, err := r.Create("tun", tunnel.Options{})
	assert.NoError(t, err)
	assert.Equal(t, "tun0", t1.Name())
	assert.NotSame(t, t0, t1)
}

func TestRegistryDestroyWaitsForDrain(t *testing.T) {
	r := New()

	t0, err := r.Create("tun0", tunnel.Options{})
	assert.NoError(t, err)

	stack := new(discardStack)
	_, err = tunnel.AttachAdapter(t0, stack)
	assert.NoError(t, err)

	ep, err := t0.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	readRet := make(chan error, 1)
	go func() {
		_, err2 := ep.ReadPacket(context.Background(), tunnel.ReadOptions{Blocking: true})
		readRet <- err2
	}()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// destroy wakes the blocked reader and waits for it to return
	assert.NoError(t, r.Destroy(ctx, "tun0"))

	select {
	case err = <-readRet:
		assert.True(t, errors.Is(err, tunnel.ErrHostDown))
	case <-time.After(time.Second):
		assert.FailNow(t, "destroy returned before the reader drained")
	}
}

type discardStack struct{}

func (discardStack) DeliverPacket(*packet.Buffer) error { return nil }
func (discardStack) DeliverFrame(*packet.Buffer) error  { return nil }
