package packet

import (
	"fmt"
)

// Family tags the payload of a Buffer, using ethertype values so the same
// tag works for both packet level payloads (address family) and frame level
// payloads (frame type).
type Family uint16

// nolint:golint
const (
	FamilyUnspec Family = 0
	FamilyIPv4   Family = 0x0800
	FamilyIPv6   Family = 0x86dd
	FamilyARP    Family = 0x0806
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	case FamilyARP:
		return "arp"
	case FamilyUnspec:
		return "unspec"
	default:
		return fmt.Sprintf("0x%04x", uint16(f))
	}
}

// Offload carries checksum/segmentation hints alongside the payload, they
// are passed through untouched, never computed here.
type Offload struct {
	ChecksumStart  uint16
	ChecksumOffset uint16
	SegmentType    uint16
	SegmentSize    uint16
}

func (o Offload) zero() bool {
	return o == Offload{}
}

// Origin identifies the tunnel instance a buffer was received on, it is a
// lookup reference only and never extends the lifetime of the instance.
type Origin interface {
	Name() string
	Unit() int
}

// Buffer is one owned unit of packet data plus metadata. Ownership moves
// exactly once on enqueue or dispatch, the previous owner must not touch
// the buffer afterwards.
type Buffer struct {
	Payload []byte
	Proto   Family
	Offload Offload

	origin Origin
}

func New(payload []byte, proto Family) *Buffer {
	return &Buffer{
		Payload: payload,
		Proto:   proto,
	}
}

// NewCopy creates a buffer owning a private copy of data.
func NewCopy(data []byte, proto Family) *Buffer {
	payload := make([]byte, len(data))
	copy(payload, data)

	return New(payload, proto)
}

func (b *Buffer) Len() int {
	return len(b.Payload)
}

func (b *Buffer) SetOrigin(o Origin) {
	b.origin = o
}

// ReceivedOn reports the instance this buffer entered the system through,
// nil for locally originated buffers.
func (b *Buffer) ReceivedOn() Origin {
	return b.origin
}
