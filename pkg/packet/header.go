package packet

import (
	"encoding/binary"
	"fmt"
)

// Optional info header prefixed to every packet on the control/data path
// when header mode is enabled. Layout (network byte order):
//
//	0:2   flags
//	2:4   proto (ethertype)
//	4:6   checksum start    \
//	6:8   checksum offset    | only with HeaderLenOffload
//	8:10  segment type       |
//	10:12 segment size      /
const (
	HeaderLenInfo    = 4
	HeaderLenOffload = 12
)

const (
	// HeaderFlagOffload marks a header carrying valid offload hints
	HeaderFlagOffload uint16 = 1 << 0
)

type InfoHeader struct {
	Flags   uint16
	Proto   Family
	Offload Offload
}

// ValidHeaderLen reports whether n is a supported info header length.
func ValidHeaderLen(n uint16) bool {
	return n == HeaderLenInfo || n == HeaderLenOffload
}

// MarshalInfoHeader encodes hdr into b, which must be exactly headerLen
// bytes long.
func MarshalInfoHeader(b []byte, headerLen uint16, hdr InfoHeader) error {
	if !ValidHeaderLen(headerLen) {
		return fmt.Errorf("unsupported info header length %d", headerLen)
	}

	if len(b) != int(headerLen) {
		return fmt.Errorf("info header buffer length %d, expected %d", len(b), headerLen)
	}

	flags := hdr.Flags
	if headerLen < HeaderLenOffload {
		flags &^= HeaderFlagOffload
	} else if !hdr.Offload.zero() {
		flags |= HeaderFlagOffload
	}

	binary.BigEndian.PutUint16(b[0:2], flags)
	binary.BigEndian.PutUint16(b[2:4], uint16(hdr.Proto))

	if headerLen == HeaderLenOffload {
		binary.BigEndian.PutUint16(b[4:6], hdr.Offload.ChecksumStart)
		binary.BigEndian.PutUint16(b[6:8], hdr.Offload.ChecksumOffset)
		binary.BigEndian.PutUint16(b[8:10], hdr.Offload.SegmentType)
		binary.BigEndian.PutUint16(b[10:12], hdr.Offload.SegmentSize)
	}

	return nil
}

// ParseInfoHeader decodes the first headerLen bytes of b.
func ParseInfoHeader(b []byte, headerLen uint16) (InfoHeader, error) {
	if !ValidHeaderLen(headerLen) {
		return InfoHeader{}, fmt.Errorf("unsupported info header length %d", headerLen)
	}

	if len(b) < int(headerLen) {
		return InfoHeader{}, fmt.Errorf("short info header: %d bytes, expected %d", len(b), headerLen)
	}

	hdr := InfoHeader{
		Flags: binary.BigEndian.Uint16(b[0:2]),
		Proto: Family(binary.BigEndian.Uint16(b[2:4])),
	}

	if headerLen == HeaderLenOffload && hdr.Flags&HeaderFlagOffload != 0 {
		hdr.Offload = Offload{
			ChecksumStart:  binary.BigEndian.Uint16(b[4:6]),
			ChecksumOffset: binary.BigEndian.Uint16(b[6:8]),
			SegmentType:    binary.BigEndian.Uint16(b[8:10]),
			SegmentSize:    binary.BigEndian.Uint16(b[10:12]),
		}
	}

	return hdr, nil
}
