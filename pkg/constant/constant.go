package constant

const (
	DefaultTunnetConfigFile = "/etc/tunnet/config.yaml"
	DefaultTunnetListenAddr = "unix:///var/run/tunnet/tunnet.sock"

	DefaultTunnelDataDir = "/var/lib/tunnet"
	DefaultTunnelNodeDir = "/var/run/tunnet"
)

const (
	// PrefixPacketTunnel names packet level (network layer) instances
	PrefixPacketTunnel = "tun"
	// PrefixFrameTunnel names frame level (link layer) instances
	PrefixFrameTunnel = "tap"
)

const (
	BackendLoopback = "loopback"
	BackendNetstack = "netstack"
	BackendRelay    = "relay"
	BackendHostlink = "hostlink"
)

type tunnetContextKey struct{}

// nolint:gochecknoglobals
var (
	ContextKeyConfig = &tunnetContextKey{}
)
