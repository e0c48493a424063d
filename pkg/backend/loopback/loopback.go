package loopback

import (
	"context"
	"fmt"
	"sync"

	"arhat.dev/pkg/log"

	"arhat.dev/tunnet/pkg/backend"
	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/types"
)

const (
	DriverName = "loopback"
)

func init() {
	backend.Register(DriverName, "aix", NewBackend, NewConfig)
	backend.Register(DriverName, "dragonfly", NewBackend, NewConfig)
	backend.Register(DriverName, "darwin", NewBackend, NewConfig)
	backend.Register(DriverName, "freebsd", NewBackend, NewConfig)
	backend.Register(DriverName, "openbsd", NewBackend, NewConfig)
	backend.Register(DriverName, "solaris", NewBackend, NewConfig)
	backend.Register(DriverName, "netbsd", NewBackend, NewConfig)
	backend.Register(DriverName, "windows", NewBackend, NewConfig)
	backend.Register(DriverName, "linux", NewBackend, NewConfig)
}

func NewConfig() interface{} {
	return &Config{}
}

type Config struct{}

func NewBackend(ctx context.Context, name string, cfg interface{}) (types.Backend, error) {
	_, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("invalid non loopback backend config")
	}

	return &Driver{
		ctx:    ctx,
		name:   name,
		logger: log.Log.WithName(DriverName).WithFields(log.String("backend", name)),

		mu:    new(sync.RWMutex),
		links: make(map[string]*tunnel.Adapter),
	}, nil
}

// Driver is the simplest external stack: every packet dispatched by an
// instance is reflected back into that instance's own queue untouched.
// Mostly useful for wiring checks and tests.
type Driver struct {
	ctx    context.Context
	name   string
	logger log.Interface

	mu    *sync.RWMutex
	links map[string]*tunnel.Adapter
}

func (d *Driver) DriverName() string {
	return DriverName
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Attach(t *tunnel.Instance) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.links[t.Name()]; ok {
		return fmt.Errorf("tunnel %s already attached", t.Name())
	}

	ad, err := tunnel.AttachAdapter(t, &reflector{d: d, tunnelName: t.Name()})
	if err != nil {
		return fmt.Errorf("failed to attach adapter: %w", err)
	}

	d.links[t.Name()] = ad

	return nil
}

func (d *Driver) Detach(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ad, ok := d.links[name]
	if !ok {
		return fmt.Errorf("tunnel %s not attached", name)
	}

	ad.Detach()
	delete(d.links, name)

	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for name, ad := range d.links {
		ad.Detach()
		delete(d.links, name)
	}

	return nil
}

func (d *Driver) reflect(tunnelName string, b *packet.Buffer) error {
	d.mu.RLock()
	ad, ok := d.links[tunnelName]
	d.mu.RUnlock()

	if !ok {
		return fmt.Errorf("tunnel %s not attached", tunnelName)
	}

	return ad.SubmitOutbound(b)
}

// reflector is the per instance stack entry point.
type reflector struct {
	d          *Driver
	tunnelName string
}

func (r *reflector) DeliverPacket(b *packet.Buffer) error {
	return r.d.reflect(r.tunnelName, b)
}

func (r *reflector) DeliverFrame(b *packet.Buffer) error {
	return r.d.reflect(r.tunnelName, b)
}
