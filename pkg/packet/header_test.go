package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidHeaderLen(t *testing.T) {
	assert.True(t, ValidHeaderLen(HeaderLenInfo))
	assert.True(t, ValidHeaderLen(HeaderLenOffload))

	for _, n := range []uint16{0, 1, 3, 5, 8, 16} {
		assert.False(t, ValidHeaderLen(n), "len %d", n)
	}
}

func TestInfoHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, HeaderLenInfo)
	err := MarshalInfoHeader(buf, HeaderLenInfo, InfoHeader{Proto: FamilyIPv6})
	assert.NoError(t, err)

	hdr, err := ParseInfoHeader(buf, HeaderLenInfo)
	assert.NoError(t, err)
	assert.Equal(t, FamilyIPv6, hdr.Proto)
	assert.Zero(t, hdr.Flags&HeaderFlagOffload)
}

func TestInfoHeaderOffloadRoundTrip(t *testing.T) {
	offload := Offload{
		ChecksumStart:  14,
		ChecksumOffset: 16,
		SegmentType:    1,
		SegmentSize:    1400,
	}

	buf := make([]byte, HeaderLenOffload)
	err := MarshalInfoHeader(buf, HeaderLenOffload, InfoHeader{
		Proto:   FamilyIPv4,
		Offload: offload,
	})
	assert.NoError(t, err)

	hdr, err := ParseInfoHeader(buf, HeaderLenOffload)
	assert.NoError(t, err)
	assert.Equal(t, FamilyIPv4, hdr.Proto)
	assert.NotZero(t, hdr.Flags&HeaderFlagOffload)
	assert.Equal(t, offload, hdr.Offload)
}

func TestInfoHeaderShortFormDropsOffloadFlag(t *testing.T) {
	// the 4 byte form has no room for offload hints, the flag must never
	// survive marshal even when the caller set it
	buf := make([]byte, HeaderLenInfo)
	err := MarshalInfoHeader(buf, HeaderLenInfo, InfoHeader{
		Flags: HeaderFlagOffload,
		Proto: FamilyIPv4,
		Offload: Offload{
			SegmentSize: 1400,
		},
	})
	assert.NoError(t, err)

	hdr, err := ParseInfoHeader(buf, HeaderLenInfo)
	assert.NoError(t, err)
	assert.Zero(t, hdr.Flags&HeaderFlagOffload)
	assert.True(t, hdr.Offload.zero())
}

func TestInfoHeaderInvalidInput(t *testing.T) {
	err := MarshalInfoHeader(make([]byte, 8), 8, InfoHeader{})
	assert.Error(t, err)

	// buffer length must match the header length exactly
	err = MarshalInfoHeader(make([]byte, HeaderLenOffload), HeaderLenInfo, InfoHeader{})
	assert.Error(t, err)

	_, err = ParseInfoHeader(make([]byte, 2), HeaderLenInfo)
	assert.Error(t, err)

	_, err = ParseInfoHeader(make([]byte, 8), 8)
	assert.Error(t, err)
}

func TestBufferOrigin(t *testing.T) {
	b := NewCopy([]byte{0x45, 0x00}, FamilyIPv4)
	assert.Nil(t, b.ReceivedOn())
	assert.Equal(t, 2, b.Len())
}
