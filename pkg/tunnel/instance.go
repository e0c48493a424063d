package tunnel

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"arhat.dev/pkg/log"

	"arhat.dev/tunnet/pkg/packet"
)

// State of an instance lifecycle:
// Initialized -> Open -> Initialized (close) and any -> Dying (destroy).
type State int32

// nolint:golint
const (
	StateInitialized State = iota
	StateOpen
	StateDying
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateOpen:
		return "open"
	case StateDying:
		return "dying"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type EventKind int32

// nolint:golint
const (
	EventLinkUp EventKind = iota
	EventLinkDown
	EventPacketQueued
)

type Event struct {
	Kind EventKind
	Name string
}

type Options struct {
	Mode      Mode
	MTU       uint32
	QueueSize int

	// LinkAddress frame mode only, random locally administered address
	// assigned at adapter attach when empty
	LinkAddress net.HardwareAddr
	Promiscuous bool

	HeaderEnabled bool
	HeaderLen     uint16
}

const (
	DefaultMTU       = 1500
	DefaultQueueSize = 256
)

// Instance is one virtual tunnel interface: the process facing endpoint
// half and the stack facing adapter half share this state.
type Instance struct {
	name string
	unit int
	mode Mode

	logger log.Interface

	// busy counts in flight endpoint/adapter operations, independent of mu
	// so destruction checks never contend with the data path
	busy    int32
	dyingFl int32

	mu sync.Mutex

	state   State
	holder  string
	adminUp bool
	linkUp  bool

	mtu       uint32
	linkAddr  net.HardwareAddr
	promisc   bool
	headerOn  bool
	headerLen uint16

	queue     []*packet.Buffer
	queueSize int

	readWaiters []chan struct{}
	pollWaiters []chan struct{}
	subs        []chan Event

	adapter *Adapter

	dying       chan struct{}
	drained     chan struct{}
	drainedOnce sync.Once
}

func NewInstance(name string, unit int, opts Options) (*Instance, error) {
	if name == "" {
		return nil, fmt.Errorf("instance name must not be empty")
	}

	if opts.HeaderEnabled && !packet.ValidHeaderLen(opts.HeaderLen) {
		return nil, fmt.Errorf("invalid info header length %d", opts.HeaderLen)
	}

	mtu := opts.MTU
	if mtu == 0 {
		mtu = DefaultMTU
	}

	queueSize := opts.QueueSize
	if queueSize == 0 {
		queueSize = DefaultQueueSize
	}

	return &Instance{
		name: name,
		unit: unit,
		mode: opts.Mode,

		logger: log.Log.WithName("tunnel").WithFields(log.String("name", name)),

		state:   StateInitialized,
		adminUp: true,

		mtu:       mtu,
		linkAddr:  opts.LinkAddress,
		promisc:   opts.Promiscuous,
		headerOn:  opts.HeaderEnabled,
		headerLen: opts.HeaderLen,

		queueSize: queueSize,

		dying:   make(chan struct{}),
		drained: make(chan struct{}),
	}, nil
}

func (t *Instance) Name() string {
	return t.name
}

func (t *Instance) Unit() int {
	return t.unit
}

func (t *Instance) Mode() Mode {
	return t.mode
}

func (t *Instance) MTU() uint32 {
	return t.mtu
}

func (t *Instance) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

func (t *Instance) LinkAddress() net.HardwareAddr {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.linkAddr
}

type Info struct {
	Name  string
	Unit  int
	Mode  Mode
	State State

	MTU         uint32
	LinkAddress net.HardwareAddr
	Promiscuous bool
	Up          bool

	QueueLen int

	HeaderEnabled bool
	HeaderLen     uint16
}

// Status snapshots the instance for get_info queries.
func (t *Instance) Status() Info {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Info{
		Name:  t.name,
		Unit:  t.unit,
		Mode:  t.mode,
		State: t.state,

		MTU:         t.mtu,
		LinkAddress: t.linkAddr,
		Promiscuous: t.promisc,
		Up:          t.adminUp,

		QueueLen: len(t.queue),

		HeaderEnabled: t.headerOn,
		HeaderLen:     t.headerLen,
	}
}

// SetHeaderMode enables or disables the info header prefixed to every
// packet on the control/data path.
func (t *Instance) SetHeaderMode(enabled bool, headerLen uint16) error {
	if enabled && !packet.ValidHeaderLen(headerLen) {
		return fmt.Errorf("invalid info header length %d", headerLen)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateDying {
		return ErrHostDown
	}

	t.headerOn = enabled
	if enabled {
		t.headerLen = headerLen
	} else {
		t.headerLen = 0
	}

	return nil
}

// SetPromiscuous toggles frame mode destination address filtering.
func (t *Instance) SetPromiscuous(on bool) {
	t.mu.Lock()
	t.promisc = on
	t.mu.Unlock()
}

// Ensure sets the administrative state. Writes on an administratively down
// instance are silently discarded, matching no-carrier behavior.
func (t *Instance) Ensure(up bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateDying {
		return ErrHostDown
	}

	t.adminUp = up
	return nil
}

// Subscribe registers an event channel with buffer size n, the returned
// cancel func removes and closes it. Events are dropped, never blocked on,
// when the channel is full.
func (t *Instance) Subscribe(n int) (<-chan Event, func()) {
	ch := make(chan Event, n)

	t.mu.Lock()
	t.subs = append(t.subs, ch)
	t.mu.Unlock()

	return ch, func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		for i := range t.subs {
			if t.subs[i] == ch {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
}

// Open attaches the exclusive holder and returns the endpoint, which also
// serves as the exclusivity token: closing it releases the instance.
func (t *Instance) Open(owner string) (*Endpoint, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.adapter == nil {
		// the stack facing half never registered
		return nil, ErrNotReady
	}

	if t.state == StateDying || t.holder != "" {
		return nil, ErrBusy
	}

	t.holder = owner
	t.state = StateOpen
	t.setLinkLocked(true)

	t.logger.D("endpoint opened", log.String("owner", owner))

	return &Endpoint{t: t, owner: owner}, nil
}

func (t *Instance) release(owner string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.holder != owner {
		return
	}

	t.holder = ""
	if t.state == StateOpen {
		t.state = StateInitialized
	}
	t.setLinkLocked(false)

	t.logger.D("endpoint released", log.String("owner", owner))
}

func (t *Instance) setLinkLocked(up bool) {
	if t.linkUp == up {
		return
	}

	t.linkUp = up

	kind := EventLinkDown
	if up {
		kind = EventLinkUp
	}
	t.sendEventLocked(Event{Kind: kind, Name: t.name})
}

func (t *Instance) sendEventLocked(ev Event) {
	for _, ch := range t.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// beginOp marks an operation in flight, it fails once destruction started.
// Every successful beginOp must be paired with endOp.
func (t *Instance) beginOp() error {
	atomic.AddInt32(&t.busy, 1)
	if atomic.LoadInt32(&t.dyingFl) != 0 {
		t.endOp()
		return ErrHostDown
	}

	return nil
}

func (t *Instance) endOp() {
	if atomic.AddInt32(&t.busy, -1) == 0 && atomic.LoadInt32(&t.dyingFl) != 0 {
		t.drainedOnce.Do(func() { close(t.drained) })
	}
}

// MarkDying requests destruction. It fails with ErrBusy if another destroy
// already claimed the instance. New operations are refused from here on,
// blocked readers wake with ErrHostDown.
func (t *Instance) MarkDying() error {
	t.mu.Lock()

	if t.state == StateDying {
		t.mu.Unlock()
		return ErrBusy
	}

	t.state = StateDying
	atomic.StoreInt32(&t.dyingFl, 1)
	close(t.dying)

	t.setLinkLocked(false)

	// wake pending readiness queries so they observe the state change
	for _, ch := range t.pollWaiters {
		close(ch)
	}
	t.pollWaiters = nil

	t.mu.Unlock()

	if atomic.LoadInt32(&t.busy) == 0 {
		t.drainedOnce.Do(func() { close(t.drained) })
	}

	return nil
}

// AwaitDrained blocks until every in flight operation returned. Only valid
// after MarkDying succeeded.
func (t *Instance) AwaitDrained(ctx context.Context) error {
	select {
	case <-t.drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enqueue appends one buffer to the inbound-to-endpoint queue, taking
// ownership, and drives the notification fan-out. Serialized by t.mu so
// arrival order is delivery order.
func (t *Instance) enqueue(b *packet.Buffer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateDying {
		return ErrHostDown
	}

	if len(t.queue) >= t.queueSize {
		return ErrNoBuffers
	}

	b.SetOrigin(t)
	t.queue = append(t.queue, b)

	t.notifyLocked()

	return nil
}

// notifyLocked fires all three wait mechanisms: blocked readers, pending
// readiness queries, and event subscriptions. Runs under t.mu together
// with the queue mutation so no enqueue can be missed by any of them.
func (t *Instance) notifyLocked() {
	for _, ch := range t.readWaiters {
		select {
		case ch <- struct{}{}:
		default:
		}
	}

	for _, ch := range t.pollWaiters {
		close(ch)
	}
	t.pollWaiters = nil

	t.sendEventLocked(Event{Kind: EventPacketQueued, Name: t.name})
}

func (t *Instance) addReadWaiterLocked() chan struct{} {
	ch := make(chan struct{}, 1)
	t.readWaiters = append(t.readWaiters, ch)
	return ch
}

func (t *Instance) removeReadWaiterLocked(ch chan struct{}) {
	for i := range t.readWaiters {
		if t.readWaiters[i] == ch {
			t.readWaiters = append(t.readWaiters[:i], t.readWaiters[i+1:]...)
			return
		}
	}
}
