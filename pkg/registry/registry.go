package registry

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"arhat.dev/pkg/log"

	"arhat.dev/tunnet/pkg/constant"
	"arhat.dev/tunnet/pkg/tunnel"
)

// ParseName splits an instance name into its mode prefix and unit number.
// A bare prefix (or empty name) requests auto allocation.
func ParseName(name string) (mode tunnel.Mode, unit int, auto bool, err error) {
	if name == "" {
		return tunnel.ModePacket, 0, true, nil
	}

	var rest string
	switch {
	case strings.HasPrefix(name, constant.PrefixPacketTunnel):
		mode = tunnel.ModePacket
		rest = name[len(constant.PrefixPacketTunnel):]
	case strings.HasPrefix(name, constant.PrefixFrameTunnel):
		mode = tunnel.ModeFrame
		rest = name[len(constant.PrefixFrameTunnel):]
	default:
		return tunnel.ModePacket, 0, false, fmt.Errorf("invalid tunnel name %q", name)
	}

	if rest == "" {
		return mode, 0, true, nil
	}

	unit, err = strconv.Atoi(rest)
	if err != nil || unit < 0 || (rest[0] == '0' && len(rest) > 1) {
		return tunnel.ModePacket, 0, false, fmt.Errorf("invalid tunnel unit in name %q", name)
	}

	return mode, unit, false, nil
}

// Registry tracks live instances by canonical name and owns the per mode
// unit number pools. One per process, never torn down implicitly.
type Registry struct {
	logger log.Interface

	// mu guards the name mapping and unit pools only, it is never held
	// across a drain wait, and always taken before any instance lock
	mu     *sync.Mutex
	byName map[string]*tunnel.Instance
	units  map[tunnel.Mode]map[int]struct{}
}

func New() *Registry {
	r := &Registry{
		logger: log.Log.WithName("registry"),

		mu:     new(sync.Mutex),
		byName: make(map[string]*tunnel.Instance),
		units: map[tunnel.Mode]map[int]struct{}{
			tunnel.ModePacket: make(map[int]struct{}),
			tunnel.ModeFrame:  make(map[int]struct{}),
		},
	}

	return r
}

// Create allocates and registers a new instance, or returns the live one
// with the same name (clone-on-open). The mode prefix of the requested
// name overrides opts.Mode, an empty name auto allocates a packet level
// unit.
func (r *Registry) Create(name string, opts tunnel.Options) (*tunnel.Instance, error) {
	mode, unit, auto, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	opts.Mode = mode

	r.mu.Lock()
	defer r.mu.Unlock()

	if !auto {
		canonical := mode.Prefix() + strconv.Itoa(unit)

		if existing, ok := r.byName[canonical]; ok {
			if existing.State() == tunnel.StateDying {
				return nil, fmt.Errorf("tunnel %s: %w: destroy in progress", canonical, tunnel.ErrBusy)
			}

			// clone-on-open
			return existing, nil
		}

		if _, taken := r.units[mode][unit]; taken {
			// unit still draining, name already unreachable
			return nil, fmt.Errorf("tunnel unit %s%d: %w", mode.Prefix(), unit, tunnel.ErrAlreadyExists)
		}
	} else {
		unit = r.nextFreeUnitLocked(mode)
	}

	canonical := mode.Prefix() + strconv.Itoa(unit)

	t, err := tunnel.NewInstance(canonical, unit, opts)
	if err != nil {
		return nil, err
	}

	r.units[mode][unit] = struct{}{}
	r.byName[canonical] = t

	r.logger.D("tunnel created",
		log.String("name", canonical),
		log.String("mode", mode.String()),
	)

	return t, nil
}

func (r *Registry) nextFreeUnitLocked(mode tunnel.Mode) int {
	unit := 0
	for {
		if _, taken := r.units[mode][unit]; !taken {
			return unit
		}
		unit++
	}
}

// Destroy marks the named instance dying, unlinks it so it is unreachable
// by name, then blocks until in flight operations drained before releasing
// its unit number. A concurrent destroy of the same instance fails with
// ErrBusy; a stuck operation cannot make destroy fail, operations are
// cancellable themselves.
func (r *Registry) Destroy(ctx context.Context, name string) error {
	r.mu.Lock()

	t, ok := r.byName[name]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("tunnel %s not found", name)
	}

	err := t.MarkDying()
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("tunnel %s: %w", name, err)
	}

	delete(r.byName, name)
	r.mu.Unlock()

	err = t.AwaitDrained(ctx)
	if err != nil {
		// unit number stays reserved, the instance never fully drained
		return fmt.Errorf("tunnel %s not drained: %w", name, err)
	}

	r.mu.Lock()
	delete(r.units[t.Mode()], t.Unit())
	r.mu.Unlock()

	r.logger.D("tunnel destroyed", log.String("name", name))

	return nil
}

func (r *Registry) Get(name string) (*tunnel.Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byName[name]
	return t, ok
}

// Names lists live instance names in stable order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var names []string
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
