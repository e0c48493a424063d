package tunnel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arhat.dev/tunnet/pkg/packet"
)

func ipv4Packet(size int) []byte {
	p := make([]byte, size)
	p[0] = 0x45
	return p
}

func TestEndpointWriteDispatch(t *testing.T) {
	ins, _, stack := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	p := ipv4Packet(40)
	n, err := ep.Write(p)
	assert.NoError(t, err)
	assert.Equal(t, len(p), n)

	if assert.Len(t, stack.packets, 1) {
		assert.Equal(t, p, stack.packets[0].Payload)
		assert.Equal(t, packet.FamilyIPv4, stack.packets[0].Proto)
	}
}

func TestEndpointWriteUnknownFamily(t *testing.T) {
	ins, _, stack := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	// first nibble neither 4 nor 6, packet level dispatch must reject it
	_, err = ep.Write([]byte{0x00, 0x01, 0x02, 0x03})
	assert.True(t, errors.Is(err, ErrFamilyNotSupported))
	assert.Len(t, stack.packets, 0)
}

func TestEndpointWriteOversized(t *testing.T) {
	ins, _, _ := newTestInstance(t, Options{MTU: 100})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	_, err = ep.Write(ipv4Packet(100))
	assert.NoError(t, err)

	_, err = ep.Write(ipv4Packet(101))
	assert.True(t, errors.Is(err, ErrOversizedWrite))

	_, err = ep.Write(nil)
	assert.Error(t, err)
}

func TestEndpointWriteAdminDown(t *testing.T) {
	ins, _, stack := newTestInstance(t, Options{MTU: 1500})

	assert.NoError(t, ins.Ensure(false))

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	// no carrier: write succeeds but nothing reaches the stack
	p := ipv4Packet(40)
	n, err := ep.Write(p)
	assert.NoError(t, err)
	assert.Equal(t, len(p), n)
	assert.Len(t, stack.packets, 0)

	assert.NoError(t, ins.Ensure(true))
	_, err = ep.Write(p)
	assert.NoError(t, err)
	assert.Len(t, stack.packets, 1)
}

func TestEndpointReadOrder(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	for i := 0; i < 3; i++ {
		p := ipv4Packet(40)
		p[1] = byte(i)
		assert.NoError(t, ad.SubmitOutbound(packet.New(p, packet.FamilyIPv4)))
	}

	for i := 0; i < 3; i++ {
		b, err2 := ep.ReadPacket(context.Background(), ReadOptions{})
		assert.NoError(t, err2)
		assert.Equal(t, byte(i), b.Payload[1])
		assert.Equal(t, ins, b.ReceivedOn())
	}

	_, err = ep.ReadPacket(context.Background(), ReadOptions{})
	assert.True(t, errors.Is(err, ErrWouldBlock))
}

func TestEndpointBlockingRead(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	readRet := make(chan *packet.Buffer, 1)
	go func() {
		b, _ := ep.ReadPacket(context.Background(), ReadOptions{Blocking: true})
		readRet <- b
	}()

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, ad.SubmitOutbound(packet.New(ipv4Packet(40), packet.FamilyIPv4)))

	select {
	case b := <-readRet:
		if assert.NotNil(t, b) {
			assert.Equal(t, 40, b.Len())
		}
	case <-time.After(time.Second):
		assert.FailNow(t, "blocked reader not woken by enqueue")
	}
}

func TestEndpointBlockingReadCancel(t *testing.T) {
	ins, _, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	ctx, cancel := context.WithCancel(context.Background())

	readRet := make(chan error, 1)
	go func() {
		_, err2 := ep.ReadPacket(ctx, ReadOptions{Blocking: true})
		readRet <- err2
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-readRet:
		assert.True(t, errors.Is(err, ErrInterrupted))
	case <-time.After(time.Second):
		assert.FailNow(t, "blocked reader not woken by cancel")
	}
}

func TestEndpointBlockingReadDeadline(t *testing.T) {
	ins, _, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	_, err = ep.ReadPacket(context.Background(), ReadOptions{
		Blocking: true,
		Deadline: time.Now().Add(50 * time.Millisecond),
	})
	assert.True(t, errors.Is(err, ErrWouldBlock))
}

func TestEndpointReadTruncation(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	assert.NoError(t, ad.SubmitOutbound(packet.New(ipv4Packet(40), packet.FamilyIPv4)))

	buf := make([]byte, 10)
	n, err := ep.Read(context.Background(), buf, ReadOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 10, n)

	// the remainder of the packet is gone, not carried to the next read
	_, err = ep.Read(context.Background(), buf, ReadOptions{})
	assert.True(t, errors.Is(err, ErrWouldBlock))
}

func TestEndpointHeaderModeRoundTrip(t *testing.T) {
	ins, ad, stack := newTestInstance(t, Options{
		MTU:           1500,
		HeaderEnabled: true,
		HeaderLen:     packet.HeaderLenInfo,
	})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	// write side: leading header tags the payload family
	payload := make([]byte, 40)
	p := make([]byte, packet.HeaderLenInfo+len(payload))
	err = packet.MarshalInfoHeader(p[:packet.HeaderLenInfo], packet.HeaderLenInfo, packet.InfoHeader{
		Proto: packet.FamilyIPv6,
	})
	assert.NoError(t, err)
	copy(p[packet.HeaderLenInfo:], payload)

	n, err := ep.Write(p)
	assert.NoError(t, err)
	assert.Equal(t, len(p), n)

	if assert.Len(t, stack.packets, 1) {
		assert.Equal(t, packet.FamilyIPv6, stack.packets[0].Proto)
		assert.Equal(t, payload, stack.packets[0].Payload)
	}

	// read side: delivered packets come back with the header prefixed
	assert.NoError(t, ad.SubmitOutbound(packet.New(ipv4Packet(40), packet.FamilyIPv4)))

	buf := make([]byte, 2048)
	n, err = ep.Read(context.Background(), buf, ReadOptions{})
	assert.NoError(t, err)
	assert.Equal(t, packet.HeaderLenInfo+40, n)

	hdr, err := packet.ParseInfoHeader(buf, packet.HeaderLenInfo)
	assert.NoError(t, err)
	assert.Equal(t, packet.FamilyIPv4, hdr.Proto)
}

func TestEndpointPoll(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	ready, notify := ep.Poll(ReadReady | WriteReady)
	assert.Equal(t, WriteReady, ready)
	assert.NotNil(t, notify)

	assert.NoError(t, ad.SubmitOutbound(packet.New(ipv4Packet(40), packet.FamilyIPv4)))

	select {
	case <-notify:
	case <-time.After(time.Second):
		assert.FailNow(t, "poll waiter not woken by enqueue")
	}

	ready, _ = ep.Poll(ReadReady)
	assert.Equal(t, ReadReady, ready)
}

func TestAdapterFrameFiltering(t *testing.T) {
	ins, _, stack := newTestInstance(t, Options{Mode: ModeFrame, MTU: 1500})

	linkAddr := ins.LinkAddress()
	assert.Len(t, linkAddr, 6)
	// locally administered unicast address
	assert.NotZero(t, linkAddr[0]&2)
	assert.Zero(t, linkAddr[0]&1)

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	frame := func(dst []byte) []byte {
		f := make([]byte, EthernetHeaderLen+20)
		copy(f, dst)
		f[12], f[13] = 0x08, 0x00
		return f
	}

	// frame for our own address
	_, err = ep.Write(frame(linkAddr))
	assert.NoError(t, err)
	assert.Len(t, stack.frames, 1)

	// broadcast
	_, err = ep.Write(frame([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
	assert.NoError(t, err)
	assert.Len(t, stack.frames, 2)

	// unicast frame for another station is silently dropped
	_, err = ep.Write(frame([]byte{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}))
	assert.NoError(t, err)
	assert.Len(t, stack.frames, 2)

	// unless the instance is promiscuous
	ins.SetPromiscuous(true)
	_, err = ep.Write(frame([]byte{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}))
	assert.NoError(t, err)
	assert.Len(t, stack.frames, 3)

	// short frames are always rejected
	_, err = ep.Write([]byte{0x02, 0x11})
	assert.Error(t, err)
}

func TestEndpointStackReply(t *testing.T) {
	ins, ad, stack := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)

	_, err = ep.Write(ipv4Packet(40))
	assert.NoError(t, err)

	if assert.Len(t, stack.packets, 1) {
		assert.Equal(t, 40, stack.packets[0].Len())
		assert.Equal(t, packet.FamilyIPv4, stack.packets[0].Proto)
	}

	// stack replies with a 60 byte packet
	assert.NoError(t, ad.SubmitOutbound(packet.New(ipv4Packet(60), packet.FamilyIPv4)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	buf := make([]byte, 2048)
	n, err := ep.Read(ctx, buf, ReadOptions{Blocking: true})
	assert.NoError(t, err)
	assert.Equal(t, 60, n)

	assert.NoError(t, ep.Close())

	// nothing outstanding, destruction completes immediately
	assert.NoError(t, ins.MarkDying())
	assert.NoError(t, ins.AwaitDrained(ctx))
}

func TestAdapterDetach(t *testing.T) {
	ins, ad, _ := newTestInstance(t, Options{MTU: 1500})

	ep, err := ins.Open("test")
	assert.NoError(t, err)
	defer func() { _ = ep.Close() }()

	ad.Detach()

	err = ad.SubmitOutbound(packet.New(ipv4Packet(40), packet.FamilyIPv4))
	assert.True(t, errors.Is(err, ErrNotReady))

	_, err = ep.Write(ipv4Packet(40))
	assert.True(t, errors.Is(err, ErrNotReady))
}
