package hostlink

import (
	"context"
	"fmt"
	"sync"

	"arhat.dev/pkg/log"
	"golang.zx2c4.com/wireguard/tun"

	"arhat.dev/tunnet/pkg/backend"
	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/types"
	"arhat.dev/tunnet/pkg/util"
	"arhat.dev/tunnet/pkg/wrap/netlink"
)

const (
	DriverName = "hostlink"
)

// tun devices hand packets to userspace with a 4 byte packet
// information header in front
const deviceHeaderOffset = 4

func init() {
	backend.Register(DriverName, "linux", NewBackend, NewConfig)
}

func NewBackend(ctx context.Context, name string, cfg interface{}) (types.Backend, error) {
	config, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("invalid non hostlink backend config")
	}

	return &Driver{
		ctx:    ctx,
		name:   name,
		logger: log.Log.WithName(DriverName).WithFields(log.String("backend", name)),

		config: config,

		mu:    new(sync.Mutex),
		links: make(map[string]*hostLink),
	}, nil
}

// Driver mirrors each attached tunnel as a kernel tun device of the
// same name: packets written to the endpoint show up on the host
// device, packets the host routes into the device are queued for the
// endpoint.
type Driver struct {
	ctx    context.Context
	name   string
	logger log.Interface

	config *Config

	mu    *sync.Mutex
	links map[string]*hostLink
}

type hostLink struct {
	dev    tun.Device
	ad     *tunnel.Adapter
	cancel context.CancelFunc
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

	if t.Mode() != tunnel.ModePacket {
		return fmt.Errorf("hostlink backend only supports packet mode tunnels")
	}

	if _, ok := d.links[t.Name()]; ok {
		return fmt.Errorf("tunnel %s already attached", t.Name())
	}

	dev, err := tun.CreateTUN(t.Name(), int(t.MTU()))
	if err != nil {
		return fmt.Errorf("failed to create host device %s: %w", t.Name(), err)
	}

	ifname, err := dev.Name()
	if err != nil {
		_ = dev.Close()
		return fmt.Errorf("failed to check host device name: %w", err)
	}

	err = d.configureLink(ifname, t.Name())
	if err != nil {
		_ = dev.Close()
		return err
	}

	ad, err := tunnel.AttachAdapter(t, &deviceWriter{dev: dev})
	if err != nil {
		_ = dev.Close()
		return fmt.Errorf("failed to attach adapter: %w", err)
	}

	linkCtx, cancel := context.WithCancel(d.ctx)
	l := &hostLink{
		dev:    dev,
		ad:     ad,
		cancel: cancel,
	}
	d.links[t.Name()] = l

	go d.routine(linkCtx, t.Name(), l)

	return nil
}

func (d *Driver) configureLink(ifname, tunnelName string) error {
	h := &netlink.Handle{}
	link, err := h.LinkByName(ifname)
	if err != nil {
		return fmt.Errorf("failed to find host device %s: %w", ifname, err)
	}

	err = h.LinkSetUp(link)
	if err != nil {
		return fmt.Errorf("failed to bring up host device %s: %w", ifname, err)
	}

	addrs, err := util.ParseIPs(d.config.Addresses[tunnelName])
	if err != nil {
		return err
	}

	err = util.EnsureIPs(h, link, addrs)
	if err != nil {
		return fmt.Errorf("failed to ensure addresses of host device %s: %w", ifname, err)
	}

	return nil
}

// routine moves host device packets into the tunnel queue until the
// link context is canceled or the device is closed.
func (d *Driver) routine(ctx context.Context, tunnelName string, l *hostLink) {
	go func() {
		// the device event channel has a small buffer, keep it drained
		for range l.dev.Events() {
		}
	}()

	buff := make([]byte, deviceHeaderOffset+65535)
	for {
		n, err := l.dev.Read(buff, deviceHeaderOffset)
		if err != nil {
			select {
			case <-ctx.Done():
			default:
				d.logger.I("failed to read host device",
					log.String("tunnel", tunnelName), log.Error(err))
			}

			return
		}

		if n == 0 {
			continue
		}

		data := buff[deviceHeaderOffset : deviceHeaderOffset+n]

		family := packet.FamilyUnspec
		switch data[0] >> 4 {
		case 4:
			family = packet.FamilyIPv4
		case 6:
			family = packet.FamilyIPv6
		}

		err = l.ad.SubmitOutbound(packet.NewCopy(data, family))
		if err != nil {
			d.logger.V("dropped host inbound packet",
				log.String("tunnel", tunnelName), log.Error(err))
		}
	}
}

func (d *Driver) Detach(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.links[name]
	if !ok {
		return fmt.Errorf("tunnel %s not attached", name)
	}

	l.cancel()
	l.ad.Detach()
	err := l.dev.Close()

	delete(d.links, name)

	return err
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for name, l := range d.links {
		l.cancel()
		l.ad.Detach()
		_ = l.dev.Close()
		delete(d.links, name)
	}

	return nil
}

// deviceWriter is the per instance stack entry point, writing
// dispatched packets to the kernel device.
type deviceWriter struct {
	dev tun.Device
}

func (w *deviceWriter) DeliverPacket(b *packet.Buffer) error {
	buff := make([]byte, deviceHeaderOffset+b.Len())
	copy(buff[deviceHeaderOffset:], b.Payload)

	_, err := w.dev.Write(buff, deviceHeaderOffset)
	if err != nil {
		return fmt.Errorf("failed to write host device: %w", err)
	}

	return nil
}

func (w *deviceWriter) DeliverFrame(b *packet.Buffer) error {
	return fmt.Errorf("%w: frames not routable to host tun device", tunnel.ErrFamilyNotSupported)
}
