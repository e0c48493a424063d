package hostlink

func NewConfig() interface{} {
	return &Config{}
}

// Config of the host tun device mirror: every attached tunnel gets a
// kernel tun device of the same name, packets flow between the kernel
// device and the tunnel queue.
type Config struct {
	// Addresses assigned to the mirrored host device, keyed by tunnel
	// name
	Addresses map[string][]string `json:"addresses" yaml:"addresses"`
}
