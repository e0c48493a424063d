package netstack

import (
	"fmt"
	"net"

	"gvisor.dev/gvisor/pkg/tcpip"
	"gvisor.dev/gvisor/pkg/tcpip/network/arp"
	"gvisor.dev/gvisor/pkg/tcpip/network/ipv4"
	"gvisor.dev/gvisor/pkg/tcpip/network/ipv6"
	"gvisor.dev/gvisor/pkg/tcpip/stack"
	"gvisor.dev/gvisor/pkg/tcpip/transport/icmp"
	"gvisor.dev/gvisor/pkg/tcpip/transport/raw"
	"gvisor.dev/gvisor/pkg/tcpip/transport/tcp"
	"gvisor.dev/gvisor/pkg/tcpip/transport/udp"
)

func NewConfig() interface{} {
	return &Config{}
}

type Config struct {
	ProtocolStack StackConfig `json:"protocolStack" yaml:"protocolStack"`
}

type StackConfig struct {
	ChannelSize int `json:"channelSize" yaml:"channelSize"`

	// Addresses assigned to every attached tunnel NIC, keyed by tunnel
	// name
	Addresses map[string][]string `json:"addresses" yaml:"addresses"`

	Networks  StackNetworks  `json:"networks" yaml:"networks"`
	Protocols StackProtocols `json:"protocols" yaml:"protocols"`
}

func (s StackConfig) resolveNetworks() []stack.NetworkProtocolFactory {
	var ret []stack.NetworkProtocolFactory
	if s.Networks.ARP.Enabled {
		ret = append(ret, arp.NewProtocol)
	}
	if s.Networks.IPv4.Enabled {
		ret = append(ret, ipv4.NewProtocol)
	}

	if s.Networks.IPv6.Enabled {
		ret = append(ret, ipv6.NewProtocol)
	}

	return ret
}

func (s StackConfig) resolveProtocols() []stack.TransportProtocolFactory {
	var ret []stack.TransportProtocolFactory
	if s.Protocols.TCP.Enabled {
		ret = append(ret, tcp.NewProtocol)
	}
	if s.Protocols.UDP.Enabled {
		ret = append(ret, udp.NewProtocol)
	}

	if s.Protocols.ICMP.Enabled {
		if s.Networks.IPv4.Enabled {
			ret = append(ret, icmp.NewProtocol4)
		}

		if s.Networks.IPv6.Enabled {
			ret = append(ret, icmp.NewProtocol6)
		}
	}

	return ret
}

func (s StackConfig) resolveRawFactory() stack.RawFactory {
	if s.Protocols.Raw.Enabled {
		return &raw.EndpointFactory{}
	}

	return nil
}

func (s StackConfig) configureNetworks(netStack *stack.Stack) error {
	err := s.Networks.ARP.configure(netStack)
	if err != nil {
		return err
	}

	err = s.Networks.IPv4.configure(netStack)
	if err != nil {
		return err
	}

	err = s.Networks.IPv6.configure(netStack)
	if err != nil {
		return err
	}

	return nil
}

func (s StackConfig) configureProtocols(netStack *stack.Stack) error {
	err := s.Protocols.ICMP.configure(netStack)
	if err != nil {
		return err
	}

	err = s.Protocols.TCP.configure(netStack)
	if err != nil {
		return err
	}

	err = s.Protocols.UDP.configure(netStack)
	if err != nil {
		return err
	}

	return nil
}

// addAddresses assigns the configured addresses of one tunnel NIC.
func (s StackConfig) addAddresses(netStack *stack.Stack, nicID tcpip.NICID, tunnelName string) error {
	for _, addr := range s.Addresses[tunnelName] {
		ip := net.ParseIP(addr)
		if ip == nil {
			return fmt.Errorf("invalid ip address %q", addr)
		}

		var err *tcpip.Error
		if ip.To4() == nil {
			err = netStack.AddAddress(nicID, ipv6.ProtocolNumber, tcpip.Address(ip.To16()))
		} else {
			err = netStack.AddAddress(nicID, ipv4.ProtocolNumber, tcpip.Address(ip.To4()))
		}
		if err != nil {
			return fmt.Errorf("failed to add address %s to nic %s: %s", addr, tunnelName, err.String())
		}
	}

	if s.Networks.ARP.Enabled {
		err := netStack.AddAddress(nicID, arp.ProtocolNumber, arp.ProtocolAddress)
		if err != nil {
			return fmt.Errorf("failed to add arp address: %s", err.String())
		}
	}

	return nil
}

type StackNetworks struct {
	ARP  StackARPConfig  `json:"arp" yaml:"arp"`
	IPv4 StackIPv4Config `json:"ipv4" yaml:"ipv4"`
	IPv6 StackIPv6Config `json:"ipv6" yaml:"ipv6"`
}

type StackARPConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

func (s StackARPConfig) configure(netStack *stack.Stack) error {
	if !s.Enabled {
		return nil
	}

	err := netStack.SetForwarding(arp.ProtocolNumber, true)
	if err != nil {
		return fmt.Errorf("failed to enable arp forwarding: %s", err.String())
	}

	return nil
}

type StackIPv4Config struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

func (s StackIPv4Config) configure(netStack *stack.Stack) error {
	if !s.Enabled {
		return nil
	}

	err := netStack.SetForwarding(ipv4.ProtocolNumber, true)
	if err != nil {
		return fmt.Errorf("failed to enable ipv4 forwarding: %s", err.String())
	}
	return nil
}

type StackIPv6Config struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

func (s StackIPv6Config) configure(netStack *stack.Stack) error {
	if !s.Enabled {
		return nil
	}

	err := netStack.SetForwarding(ipv6.ProtocolNumber, true)
	if err != nil {
		return fmt.Errorf("failed to enable ipv6 forwarding: %s", err.String())
	}
	return nil
}

// nolint:maligned
type StackProtocols struct {
	// Raw socket support
	Raw StackRawConfig `json:"raw" yaml:"raw"`

	// ICMP support
	ICMP StackICMPConfig `json:"icmp" yaml:"icmp"`

	// TCP socket support
	TCP StackTCPConfig `json:"tcp" yaml:"tcp"`

	// UDP socket support
	UDP StackUDPConfig `json:"udp" yaml:"udp"`
}

type StackRawConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type StackICMPConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

func (s StackICMPConfig) configure(netStack *stack.Stack) error {
	if !s.Enabled {
		return nil
	}

	_ = netStack
	return nil
}

type StackTCPConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Buffer  struct {
		Send BufferConfig `json:"send" yaml:"send"`
		Recv BufferConfig `json:"recv" yaml:"recv"`
	} `json:"buffer" yaml:"buffer"`
}

func (s StackTCPConfig) configure(netStack *stack.Stack) error {
	if !s.Enabled {
		return nil
	}

	// enable buffer size auto-tuning
	opt := tcpip.TCPModerateReceiveBufferOption(true)
	err := netStack.SetTransportProtocolOption(tcp.ProtocolNumber, &opt)
	if err != nil {
		return fmt.Errorf("failed to configure moderate recv buf: %s", err.String())
	}

	err = netStack.SetTransportProtocolOption(tcp.ProtocolNumber, s.Buffer.Recv.resolveTCPRecvBufOption())
	if err != nil {
		return fmt.Errorf("failed to configure recv buf: %s", err.String())
	}

	err = netStack.SetTransportProtocolOption(tcp.ProtocolNumber, s.Buffer.Send.resolveTCPSendBufOption())
	if err != nil {
		return fmt.Errorf("failed to configure send buf: %s", err.String())
	}

	tcpSACK := tcpip.TCPSACKEnabled(true)
	err = netStack.SetTransportProtocolOption(tcp.ProtocolNumber, &tcpSACK)
	if err != nil {
		return fmt.Errorf("failed to configure tcp sack: %s", err.String())
	}

	// disable Nagle
	tcpDelay := tcpip.TCPDelayEnabled(false)
	err = netStack.SetTransportProtocolOption(tcp.ProtocolNumber, &tcpDelay)
	if err != nil {
		return fmt.Errorf("failed to configure tcp nodelay: %s", err.String())
	}

	return nil
}

type StackUDPConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

func (s StackUDPConfig) configure(netStack *stack.Stack) error {
	if !s.Enabled {
		return nil
	}

	_ = netStack
	return nil
}

type BufferConfig struct {
	Min     int `json:"min" yaml:"min"`
	Max     int `json:"max" yaml:"max"`
	Default int `json:"default" yaml:"default"`
}

func (c BufferConfig) resolveTCPSendBufOption() *tcpip.TCPSendBufferSizeRangeOption {
	min, def, max := c.Min, c.Default, c.Max
	if min == 0 {
		min = 4096
	}

	if max == 0 {
		max = 2 * 1024 * 1024
	}

	if def == 0 {
		def = c.Max
	}

	return &tcpip.TCPSendBufferSizeRangeOption{
		Min:     min,
		Default: def,
		Max:     max,
	}
}

func (c BufferConfig) resolveTCPRecvBufOption() *tcpip.TCPReceiveBufferSizeRangeOption {
	min, def, max := c.Min, c.Default, c.Max
	if min == 0 {
		min = 4096
	}

	if max == 0 {
		max = 2 * 1024 * 1024
	}

	if def == 0 {
		def = c.Max
	}

	return &tcpip.TCPReceiveBufferSizeRangeOption{
		Min:     min,
		Default: def,
		Max:     max,
	}
}
