package tunnel

import (
	"fmt"

	"arhat.dev/tunnet/pkg/constant"
)

// Mode selects the dispatch behavior of an instance, it is fixed at
// creation time and never swapped.
type Mode int32

const (
	// ModePacket payloads are raw network layer packets tagged by address
	// family
	ModePacket Mode = iota
	// ModeFrame payloads are full link layer frames validated against the
	// instance link address
	ModeFrame
)

// EthernetHeaderLen is the fixed frame header length accounted for on top
// of the MTU in frame mode size checks.
const EthernetHeaderLen = 14

func (m Mode) String() string {
	switch m {
	case ModePacket:
		return "packet"
	case ModeFrame:
		return "frame"
	default:
		return fmt.Sprintf("mode(%d)", int32(m))
	}
}

// Prefix returns the instance name prefix of this mode.
func (m Mode) Prefix() string {
	switch m {
	case ModeFrame:
		return constant.PrefixFrameTunnel
	default:
		return constant.PrefixPacketTunnel
	}
}

// ParseMode resolves a mode name or instance name prefix.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "packet", constant.PrefixPacketTunnel:
		return ModePacket, nil
	case "frame", constant.PrefixFrameTunnel:
		return ModeFrame, nil
	default:
		return ModePacket, fmt.Errorf("unknown tunnel mode %q", s)
	}
}
