package netstack

import (
	"context"
	"fmt"
	"hash/crc32"
	"sync"

	"arhat.dev/pkg/log"
	"gvisor.dev/gvisor/pkg/tcpip"
	"gvisor.dev/gvisor/pkg/tcpip/buffer"
	"gvisor.dev/gvisor/pkg/tcpip/header"
	"gvisor.dev/gvisor/pkg/tcpip/link/channel"
	"gvisor.dev/gvisor/pkg/tcpip/network/arp"
	"gvisor.dev/gvisor/pkg/tcpip/network/ipv4"
	"gvisor.dev/gvisor/pkg/tcpip/network/ipv6"
	"gvisor.dev/gvisor/pkg/tcpip/stack"

	"arhat.dev/tunnet/pkg/backend"
	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/types"
)

const (
	DriverName = "netstack"
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

func NewBackend(ctx context.Context, name string, cfg interface{}) (types.Backend, error) {
	config, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("invalid non netstack backend config")
	}

	opts := stack.Options{
		NetworkProtocols:   config.ProtocolStack.resolveNetworks(),
		TransportProtocols: config.ProtocolStack.resolveProtocols(),
		RawFactory:         config.ProtocolStack.resolveRawFactory(),
	}

	netStack := stack.New(opts)

	err := config.ProtocolStack.configureNetworks(netStack)
	if err != nil {
		return nil, fmt.Errorf("failed to configure network: %w", err)
	}

	err = config.ProtocolStack.configureProtocols(netStack)
	if err != nil {
		return nil, fmt.Errorf("failed to configure protocol: %w", err)
	}

	return &Driver{
		ctx:    ctx,
		name:   name,
		logger: log.Log.WithName(DriverName).WithFields(log.String("backend", name)),

		netStack: netStack,
		config:   config,

		mu:    new(sync.RWMutex),
		links: make(map[string]*link),
	}, nil
}

// Driver runs one gvisor userspace protocol stack, each attached tunnel
// instance becomes a NIC backed by a channel endpoint: endpoint writes are
// injected inbound, packets the stack routes out come back through
// SubmitOutbound.
type Driver struct {
	ctx    context.Context
	name   string
	logger log.Interface

	netStack *stack.Stack
	config   *Config

	mu    *sync.RWMutex
	links map[string]*link
}

type link struct {
	ch     *channel.Endpoint
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

	if _, ok := d.links[t.Name()]; ok {
		return fmt.Errorf("tunnel %s already attached", t.Name())
	}

	chSize := d.config.ProtocolStack.ChannelSize
	if chSize == 0 {
		chSize = 256
	}

	ch := channel.New(chSize, t.MTU(), tcpip.LinkAddress(t.LinkAddress()))

	ad, err := tunnel.AttachAdapter(t, &injector{ch: ch, mode: t.Mode()})
	if err != nil {
		return fmt.Errorf("failed to attach adapter: %w", err)
	}

	nicID := tcpip.NICID(crc32.ChecksumIEEE([]byte(t.Name())))
	err2 := d.netStack.CreateNICWithOptions(nicID, ch, stack.NICOptions{
		Name:     t.Name(),
		Disabled: false,
		Context:  d.ctx,
	})
	if err2 != nil {
		ad.Detach()
		return fmt.Errorf("failed to create nic %s: %s", t.Name(), err2.String())
	}

	err = d.config.ProtocolStack.addAddresses(d.netStack, nicID, t.Name())
	if err != nil {
		ad.Detach()
		return err
	}

	d.addRoutesLocked(nicID)

	linkCtx, cancel := context.WithCancel(d.ctx)
	l := &link{
		ch:     ch,
		ad:     ad,
		cancel: cancel,
	}
	d.links[t.Name()] = l

	go d.routine(linkCtx, t.Name(), l)

	return nil
}

// addRoutesLocked rebuilds the default route table over all live NICs.
func (d *Driver) addRoutesLocked(newNIC tcpip.NICID) {
	nicIDs := []tcpip.NICID{newNIC}
	for name := range d.links {
		nicIDs = append(nicIDs, tcpip.NICID(crc32.ChecksumIEEE([]byte(name))))
	}

	var routes []tcpip.Route
	for _, id := range nicIDs {
		if d.config.ProtocolStack.Networks.IPv4.Enabled {
			routes = append(routes, tcpip.Route{
				Destination: header.IPv4EmptySubnet,
				NIC:         id,
			})
		}

		if d.config.ProtocolStack.Networks.IPv6.Enabled {
			routes = append(routes, tcpip.Route{
				Destination: header.IPv6EmptySubnet,
				NIC:         id,
			})
		}
	}

	d.netStack.SetRouteTable(routes)
}

// routine drains stack outbound packets into the instance queue.
func (d *Driver) routine(ctx context.Context, tunnelName string, l *link) {
	for {
		pkt, more := l.ch.ReadContext(ctx)
		if !more {
			return
		}

		var family packet.Family
		switch pkt.Proto {
		case ipv4.ProtocolNumber:
			family = packet.FamilyIPv4
		case ipv6.ProtocolNumber:
			family = packet.FamilyIPv6
		case arp.ProtocolNumber:
			family = packet.FamilyARP
		default:
			continue
		}

		var data []byte
		for _, v := range pkt.Pkt.Views() {
			if v.IsEmpty() {
				continue
			}

			data = append(data, v...)
		}

		err := l.ad.SubmitOutbound(packet.New(data, family))
		if err != nil {
			d.logger.V("dropped stack outbound packet",
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

	nicID := tcpip.NICID(crc32.ChecksumIEEE([]byte(name)))
	if err := d.netStack.RemoveNIC(nicID); err != nil {
		d.logger.I("failed to remove nic", log.String("tunnel", name), log.String("err", err.String()))
	}

	delete(d.links, name)

	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for name, l := range d.links {
		l.cancel()
		l.ad.Detach()
		delete(d.links, name)
	}

	d.netStack.Close()

	return nil
}

// injector is the per instance stack entry point, turning dispatched
// buffers into inbound packets of the gvisor stack.
type injector struct {
	ch   *channel.Endpoint
	mode tunnel.Mode
}

func (in *injector) DeliverPacket(b *packet.Buffer) error {
	var proto tcpip.NetworkProtocolNumber
	switch b.Proto {
	case packet.FamilyIPv4:
		proto = ipv4.ProtocolNumber
	case packet.FamilyIPv6:
		proto = ipv6.ProtocolNumber
	default:
		return fmt.Errorf("%w: %s", tunnel.ErrFamilyNotSupported, b.Proto.String())
	}

	in.inject(proto, b.Payload)

	return nil
}

func (in *injector) DeliverFrame(b *packet.Buffer) error {
	// the channel endpoint is a network layer link, strip the frame
	// header and inject by ethertype
	if b.Len() < tunnel.EthernetHeaderLen {
		return fmt.Errorf("short frame: %d bytes", b.Len())
	}

	payload := b.Payload[tunnel.EthernetHeaderLen:]

	ethertype := packet.Family(uint16(b.Payload[12])<<8 | uint16(b.Payload[13]))
	switch ethertype {
	case packet.FamilyIPv4:
		in.inject(ipv4.ProtocolNumber, payload)
	case packet.FamilyIPv6:
		in.inject(ipv6.ProtocolNumber, payload)
	case packet.FamilyARP:
		in.inject(arp.ProtocolNumber, payload)
	default:
		return fmt.Errorf("%w: %s", tunnel.ErrFamilyNotSupported, ethertype.String())
	}

	return nil
}

func (in *injector) inject(proto tcpip.NetworkProtocolNumber, data []byte) {
	pb := stack.NewPacketBuffer(stack.PacketBufferOptions{
		ReserveHeaderBytes: 0,
		Data:               buffer.NewViewFromBytes(data).ToVectorisedView(),
	})

	in.ch.InjectInbound(proto, pb)
}
