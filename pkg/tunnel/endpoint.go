package tunnel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arhat.dev/tunnet/pkg/packet"
)

// Endpoint is the process facing half of an instance. It doubles as the
// exclusivity token: it is handed out by Instance.Open and the instance
// stays held until Close.
type Endpoint struct {
	t     *Instance
	owner string

	closeOnce sync.Once
}

func (ep *Endpoint) Instance() *Instance {
	return ep.t
}

func (ep *Endpoint) Owner() string {
	return ep.owner
}

// Close releases exclusivity and signals link down. Safe to call more than
// once.
func (ep *Endpoint) Close() error {
	ep.closeOnce.Do(func() {
		ep.t.release(ep.owner)
	})

	return nil
}

type ReadOptions struct {
	// Blocking suspend until a packet arrives instead of failing with
	// ErrWouldBlock on an empty queue
	Blocking bool

	// Deadline bounds a blocking read, expiry yields ErrWouldBlock just
	// like the non blocking empty case
	Deadline time.Time
}

// ReadPacket dequeues at most one packet, transferring ownership to the
// caller. Delivery order is strict enqueue order.
func (ep *Endpoint) ReadPacket(ctx context.Context, opts ReadOptions) (*packet.Buffer, error) {
	t := ep.t

	if err := t.beginOp(); err != nil {
		return nil, err
	}
	defer t.endOp()

	var timeout <-chan time.Time
	if opts.Blocking && !opts.Deadline.IsZero() {
		timer := time.NewTimer(time.Until(opts.Deadline))
		defer timer.Stop()
		timeout = timer.C
	}

	t.mu.Lock()
	for {
		if t.state == StateDying {
			t.mu.Unlock()
			return nil, ErrHostDown
		}

		if len(t.queue) > 0 {
			b := t.queue[0]
			t.queue[0] = nil
			t.queue = t.queue[1:]
			t.mu.Unlock()
			return b, nil
		}

		if !opts.Blocking {
			t.mu.Unlock()
			return nil, ErrWouldBlock
		}

		// the waiter is registered under the same lock as the emptiness
		// check, an enqueue between unlock and the select below still
		// lands in the buffered channel
		w := t.addReadWaiterLocked()
		t.mu.Unlock()

		select {
		case <-w:
			t.mu.Lock()
			t.removeReadWaiterLocked(w)
		case <-ctx.Done():
			t.mu.Lock()
			t.removeReadWaiterLocked(w)
			t.mu.Unlock()
			return nil, ErrInterrupted
		case <-t.dying:
			t.mu.Lock()
			t.removeReadWaiterLocked(w)
			t.mu.Unlock()
			return nil, ErrHostDown
		case <-timeout:
			t.mu.Lock()
			t.removeReadWaiterLocked(w)
			t.mu.Unlock()
			return nil, ErrWouldBlock
		}
	}
}

// Read dequeues one packet and copies it into p, prefixing the info header
// when header mode is enabled. The payload is truncated only when p is too
// small for it.
func (ep *Endpoint) Read(ctx context.Context, p []byte, opts ReadOptions) (int, error) {
	t := ep.t

	t.mu.Lock()
	headerOn, headerLen := t.headerOn, t.headerLen
	t.mu.Unlock()

	if headerOn && len(p) < int(headerLen) {
		return 0, fmt.Errorf("read buffer shorter than info header (%d < %d)", len(p), headerLen)
	}

	b, err := ep.ReadPacket(ctx, opts)
	if err != nil {
		return 0, err
	}

	n := 0
	if headerOn {
		err = packet.MarshalInfoHeader(p[:headerLen], headerLen, packet.InfoHeader{
			Proto:   b.Proto,
			Offload: b.Offload,
		})
		if err != nil {
			return 0, err
		}

		n = int(headerLen)
	}

	n += copy(p[n:], b.Payload)

	return n, nil
}

// Write submits exactly one packet. The whole of p is one packet or the
// call fails, there is no partial packet accumulation across calls.
//
// A write on an administratively down instance is silently discarded and
// reported as success, the way a real adapter behaves with no carrier.
func (ep *Endpoint) Write(p []byte) (int, error) {
	t := ep.t

	if err := t.beginOp(); err != nil {
		return 0, err
	}
	defer t.endOp()

	t.mu.Lock()
	headerOn, headerLen := t.headerOn, t.headerLen
	adminUp := t.adminUp
	adapter := t.adapter
	t.mu.Unlock()

	var (
		hdr     packet.InfoHeader
		payload = p
		err     error
	)

	if headerOn {
		hdr, err = packet.ParseInfoHeader(p, headerLen)
		if err != nil {
			return 0, err
		}

		payload = p[headerLen:]
	}

	if len(payload) == 0 {
		return 0, fmt.Errorf("empty packet payload")
	}

	bound := t.mtu
	if t.mode == ModeFrame {
		bound += EthernetHeaderLen
	}
	if uint32(len(payload)) > bound {
		return 0, ErrOversizedWrite
	}

	proto := hdr.Proto
	if proto == packet.FamilyUnspec {
		proto = sniffFamily(t.mode, payload)
	}

	if !adminUp {
		// no carrier
		return len(p), nil
	}

	if adapter == nil {
		return 0, ErrNotReady
	}

	b := packet.NewCopy(payload, proto)
	b.Offload = hdr.Offload

	err = adapter.dispatch(b)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// WritePacket is the ownership transferring variant of Write for in
// process callers that already hold a packet buffer.
func (ep *Endpoint) WritePacket(b *packet.Buffer) error {
	t := ep.t

	if err := t.beginOp(); err != nil {
		return err
	}
	defer t.endOp()

	t.mu.Lock()
	adminUp := t.adminUp
	adapter := t.adapter
	t.mu.Unlock()

	if b.Len() == 0 {
		return fmt.Errorf("empty packet payload")
	}

	bound := t.mtu
	if t.mode == ModeFrame {
		bound += EthernetHeaderLen
	}
	if uint32(b.Len()) > bound {
		return ErrOversizedWrite
	}

	if b.Proto == packet.FamilyUnspec {
		b.Proto = sniffFamily(t.mode, b.Payload)
	}

	if !adminUp {
		return nil
	}

	if adapter == nil {
		return ErrNotReady
	}

	return adapter.dispatch(b)
}

type Readiness uint8

// nolint:golint
const (
	ReadReady Readiness = 1 << iota
	WriteReady
)

// Poll answers a readiness query. Write interest is always satisfied since
// dispatch never blocks on queue space. When read interest cannot be
// satisfied the returned channel fires on the next enqueue (or on state
// change), registered atomically with the emptiness check.
func (ep *Endpoint) Poll(interest Readiness) (Readiness, <-chan struct{}) {
	t := ep.t

	t.mu.Lock()
	defer t.mu.Unlock()

	var ready Readiness
	if interest&WriteReady != 0 {
		ready |= WriteReady
	}

	var notify <-chan struct{}
	if interest&ReadReady != 0 {
		if len(t.queue) > 0 || t.state == StateDying {
			ready |= ReadReady
		} else {
			ch := make(chan struct{})
			t.pollWaiters = append(t.pollWaiters, ch)
			notify = ch
		}
	}

	return ready, notify
}

// sniffFamily guesses the payload family when no tag was supplied: the IP
// version nibble in packet mode, the ethertype field in frame mode.
func sniffFamily(mode Mode, payload []byte) packet.Family {
	switch mode {
	case ModePacket:
		if len(payload) > 0 {
			switch payload[0] >> 4 {
			case 4:
				return packet.FamilyIPv4
			case 6:
				return packet.FamilyIPv6
			}
		}
	case ModeFrame:
		if len(payload) >= EthernetHeaderLen {
			return packet.Family(uint16(payload[12])<<8 | uint16(payload[13]))
		}
	}

	return packet.FamilyUnspec
}
