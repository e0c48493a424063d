package loopback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arhat.dev/tunnet/pkg/registry"
	"arhat.dev/tunnet/pkg/tunnel"
)

func TestLoopbackReflect(t *testing.T) {
	be, err := NewBackend(context.Background(), "test", NewConfig())
	assert.NoError(t, err)
	defer func() { _ = be.Close() }()

	r := registry.New()
	ins, err := r.Create("tun0", tunnel.Options{MTU: 1500})
	assert.NoError(t, err)

	assert.NoError(t, be.Attach(ins))

	// double attach of the same tunnel is rejected
	assert.Error(t, be.Attach(ins))

	ep, err := ins.Open("test")
	assert.NoError(t, err)

	// one write, one packet, reflected back into our own queue
	p := make([]byte, 40)
	p[0] = 0x45
	n, err := ep.Write(p)
	assert.NoError(t, err)
	assert.Equal(t, len(p), n)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	buf := make([]byte, 2048)
	n, err = ep.Read(ctx, buf, tunnel.ReadOptions{Blocking: true})
	assert.NoError(t, err)
	assert.Equal(t, p, buf[:n])

	// releasing the endpoint makes the instance reopenable
	assert.NoError(t, ep.Close())

	ep2, err := ins.Open("again")
	assert.NoError(t, err)
	_ = ep2.Close()

	assert.NoError(t, be.Detach(ins.Name()))

	// the stack facing half is gone, the instance is no longer openable
	_, err = ins.Open("detached")
	assert.True(t, errors.Is(err, tunnel.ErrNotReady))

	assert.NoError(t, r.Destroy(ctx, "tun0"))
}

func TestLoopbackDetachUnknown(t *testing.T) {
	be, err := NewBackend(context.Background(), "test", NewConfig())
	assert.NoError(t, err)

	assert.Error(t, be.Detach("tun9"))
}
