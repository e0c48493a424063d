package tunnel

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"sync/atomic"

	"arhat.dev/pkg/log"

	"arhat.dev/tunnet/pkg/packet"
)

// Stack is the external packet stack an instance hands traffic to. Both
// entry points take ownership of the buffer, payloads are opaque here.
type Stack interface {
	// DeliverPacket network layer entry point (packet mode)
	DeliverPacket(b *packet.Buffer) error

	// DeliverFrame link layer entry point (frame mode)
	DeliverFrame(b *packet.Buffer) error
}

type Capabilities uint32

// nolint:golint
const (
	CapLinkState Capabilities = 1 << iota
	CapOffloadHints
)

// Adapter is the stack facing half of an instance: outbound submission
// from the stack into the queue, and mode specific dispatch of endpoint
// writes into the stack.
type Adapter struct {
	t     *Instance
	stack Stack
	caps  Capabilities

	detached int32
}

// AttachAdapter registers the stack facing interface of t. In frame mode a
// random locally administered link address is assigned unless the instance
// already carries one.
func AttachAdapter(t *Instance, s Stack) (*Adapter, error) {
	if s == nil {
		return nil, fmt.Errorf("no stack to attach to")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateDying {
		return nil, ErrHostDown
	}

	if t.adapter != nil {
		return nil, fmt.Errorf("instance %s: %w: adapter attached", t.name, ErrBusy)
	}

	if t.mode == ModeFrame && len(t.linkAddr) == 0 {
		buf := make([]byte, 6)
		_, err := rand.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to generate random link address: %w", err)
		}

		// set local bit and ensure unicast address
		buf[0] = (buf[0] | 2) & 0xfe
		t.linkAddr = buf
	}

	a := &Adapter{
		t:     t,
		stack: s,
		caps:  CapLinkState | CapOffloadHints,
	}
	t.adapter = a

	t.logger.D("adapter attached")

	return a, nil
}

func (a *Adapter) Capabilities() Capabilities {
	return a.caps
}

func (a *Adapter) Instance() *Instance {
	return a.t
}

// SubmitOutbound enqueues a packet routed to this interface by the stack
// ("outbound" from the stack's view) for the endpoint to read, waking all
// waiters.
func (a *Adapter) SubmitOutbound(b *packet.Buffer) error {
	if atomic.LoadInt32(&a.detached) != 0 {
		return ErrNotReady
	}

	if err := a.t.beginOp(); err != nil {
		return err
	}
	defer a.t.endOp()

	return a.t.enqueue(b)
}

// dispatch classifies an endpoint write and hands it to the stack.
func (a *Adapter) dispatch(b *packet.Buffer) error {
	if atomic.LoadInt32(&a.detached) != 0 {
		return ErrNotReady
	}

	t := a.t

	switch t.mode {
	case ModeFrame:
		if b.Len() < EthernetHeaderLen {
			return fmt.Errorf("short frame: %d bytes", b.Len())
		}

		t.mu.Lock()
		linkAddr, promisc := t.linkAddr, t.promisc
		t.mu.Unlock()

		dst := b.Payload[:6]
		if !promisc && dst[0]&1 == 0 && !bytes.Equal(dst, linkAddr) {
			// unicast frame for some other station, real link hardware
			// would not deliver it
			t.logger.V("dropping mismatched unicast frame",
				log.String("dst", fmt.Sprintf("%x", dst)),
			)
			return nil
		}

		return a.stack.DeliverFrame(b)
	case ModePacket:
		switch b.Proto {
		case packet.FamilyIPv4, packet.FamilyIPv6:
			return a.stack.DeliverPacket(b)
		default:
			return fmt.Errorf("%w: %s", ErrFamilyNotSupported, b.Proto.String())
		}
	default:
		return fmt.Errorf("invalid tunnel mode %s", t.mode.String())
	}
}

// Detach removes the interface from the stack side, releases the link
// address, and invalidates the adapter.
func (a *Adapter) Detach() {
	if !atomic.CompareAndSwapInt32(&a.detached, 0, 1) {
		return
	}

	t := a.t

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.adapter == a {
		t.adapter = nil
		t.linkAddr = nil
		t.setLinkLocked(false)
	}

	t.logger.D("adapter detached")
}
