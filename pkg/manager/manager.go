package manager

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"arhat.dev/pkg/log"
	"go.uber.org/multierr"

	"arhat.dev/tunnet/pkg/backend"
	"arhat.dev/tunnet/pkg/conf"
	"arhat.dev/tunnet/pkg/constant"
	"arhat.dev/tunnet/pkg/node"
	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/registry"
	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/tunnetpb"
	"arhat.dev/tunnet/pkg/types"
)

// managedTunnel is the desired state of one tunnel instance: its config,
// the backend it attaches to, and whether it came from the static config
// (static tunnels are not persisted to the data dir).
type managedTunnel struct {
	config  *tunnetpb.TunnelConfig
	backend string

	static   bool
	attached bool
}

type Manager struct {
	ctx    context.Context
	logger log.Interface

	dataDir string

	registry *registry.Registry
	node     *node.Server

	backendSeq []string
	backends   map[string]types.Backend

	tunnelSeq []string
	tunnels   map[string]*managedTunnel

	mu *sync.RWMutex
}

func NewManager(ctx context.Context, config *conf.TunnelsConfig) (*Manager, error) {
	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = constant.DefaultTunnelDataDir
	}

	nodeDir := config.NodeDir
	if nodeDir == "" {
		nodeDir = constant.DefaultTunnelNodeDir
	}

	err := os.MkdirAll(dataDir, 0750)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure data dir %s: %w", dataDir, err)
	}

	nodeSrv, err := node.NewServer(ctx, nodeDir)
	if err != nil {
		return nil, err
	}

	var backendSeq []string
	backends := make(map[string]types.Backend)
	for _, b := range config.Backends {
		if _, ok := backends[b.Name]; ok {
			return nil, fmt.Errorf("invalid duplicate backend name %s", b.Name)
		}

		be, err2 := backend.NewBackend(ctx, b.Driver, runtime.GOOS, b.Name, b.Config)
		if err2 != nil {
			return nil, fmt.Errorf("failed to create backend %s (%s): %w", b.Name, b.Driver, err2)
		}

		backends[b.Name] = be
		backendSeq = append(backendSeq, b.Name)
	}

	var tunnelSeq []string
	tunnels := make(map[string]*managedTunnel)
	for i := range config.Instances {
		ins := config.Instances[i]
		if _, ok := tunnels[ins.Name]; ok {
			return nil, fmt.Errorf("invalid duplicate tunnel name %s", ins.Name)
		}

		if _, ok := backends[ins.Backend]; !ok {
			return nil, fmt.Errorf("unknown backend %s for tunnel %s", ins.Backend, ins.Name)
		}

		if ins.Header.Enabled && ins.Header.Length == 0 {
			ins.Header.Length = packet.HeaderLenInfo
		}

		tunnels[ins.Name] = &managedTunnel{
			config: &tunnetpb.TunnelConfig{
				Name:          ins.Name,
				Mtu:           ins.MTU,
				QueueSize:     uint32(ins.QueueSize),
				Promiscuous:   ins.Promiscuous,
				HeaderEnabled: ins.Header.Enabled,
				HeaderLen:     uint32(ins.Header.Length),
				Up:            ins.Up,
			},
			backend: ins.Backend,
			static:  true,
		}
		tunnelSeq = append(tunnelSeq, ins.Name)
	}

	return &Manager{
		ctx:    ctx,
		logger: log.Log.WithName("manager"),

		dataDir: dataDir,

		registry: registry.New(),
		node:     nodeSrv,

		backendSeq: backendSeq,
		backends:   backends,

		tunnelSeq: tunnelSeq,
		tunnels:   tunnels,

		mu: new(sync.RWMutex),
	}, nil
}

// Start brings up all desired tunnels, runs the periodic ensure loop and
// blocks until the manager context is canceled, then tears everything
// down in reverse creation order.
func (m *Manager) Start() error {
	err := func() error {
		m.mu.Lock()
		defer m.mu.Unlock()

		err := m.restoreTunnelsLocked()
		if err != nil {
			return fmt.Errorf("failed to restore persisted tunnels: %w", err)
		}

		m.logger.D("ensuring all tunnels for the first time")
		err = m.ensureAllLocked()
		if err != nil {
			return fmt.Errorf("failed to ensure all tunnels for the first time: %w", err)
		}

		return nil
	}()
	if err != nil {
		return err
	}

	m.logger.V("all tunnels ensured")
	m.logger.D("starting tunnel ensure routine")
	go m.ensureTunnelsPeriodically(5 * time.Second)

	// nolint:gosimple
	select {
	case <-m.ctx.Done():
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	teardownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := len(m.tunnelSeq) - 1; i >= 0; i-- {
		name := m.tunnelSeq[i]
		if _, ok := m.tunnels[name]; !ok {
			continue
		}

		err = m.teardownTunnelLocked(teardownCtx, name)
		if err != nil {
			m.logger.I("failed to tear down tunnel", log.String("name", name), log.Error(err))
		}
	}

	_ = m.node.Close()

	for i := len(m.backendSeq) - 1; i >= 0; i-- {
		be := m.backends[m.backendSeq[i]]
		err = be.Close()
		if err != nil {
			m.logger.I("failed to close backend", log.String("name", be.Name()), log.Error(err))
		}
	}

	return nil
}

func (m *Manager) ensureTunnelsPeriodically(interval time.Duration) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-tk.C:
			m.mu.Lock()
			m.logger.V("routine: ensuring all tunnels")
			err := m.ensureAllLocked()
			if err != nil {
				m.logger.I("failed to ensure all tunnels", log.Error(err))
			} else {
				m.logger.V("routine: all tunnels ensured")
			}
			m.mu.Unlock()
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) ensureAllLocked() error {
	var err error
	for _, name := range m.tunnelSeq {
		mt, ok := m.tunnels[name]
		if !ok {
			continue
		}

		_, err2 := m.ensureTunnelLocked(mt)
		if err2 != nil {
			err = multierr.Append(err, fmt.Errorf("failed to ensure tunnel %s: %w", name, err2))
		}
	}

	return err
}

// ensureTunnelLocked converges one tunnel onto its desired config,
// creating the instance and attaching it to its backend when needed.
func (m *Manager) ensureTunnelLocked(mt *managedTunnel) (*tunnel.Instance, error) {
	cfg := mt.config

	t, err := m.registry.Create(cfg.Name, tunnel.Options{
		MTU:         cfg.Mtu,
		QueueSize:   int(cfg.QueueSize),
		Promiscuous: cfg.Promiscuous,

		HeaderEnabled: cfg.HeaderEnabled,
		HeaderLen:     uint16(cfg.HeaderLen),
	})
	if err != nil {
		return nil, err
	}

	if !mt.attached {
		be := m.backends[mt.backend]
		err = be.Attach(t)
		if err != nil {
			return nil, fmt.Errorf("failed to attach to backend %s: %w", mt.backend, err)
		}

		err = m.node.Expose(t)
		if err != nil {
			_ = be.Detach(t.Name())
			return nil, fmt.Errorf("failed to expose node socket: %w", err)
		}

		mt.attached = true
	}

	err = t.SetHeaderMode(cfg.HeaderEnabled, uint16(cfg.HeaderLen))
	if err != nil {
		return nil, err
	}

	t.SetPromiscuous(cfg.Promiscuous)

	err = t.Ensure(cfg.Up)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// teardownTunnelLocked destroys the live instance without touching the
// desired state or persisted config.
func (m *Manager) teardownTunnelLocked(ctx context.Context, name string) error {
	mt := m.tunnels[name]

	err := m.registry.Destroy(ctx, name)
	if err != nil {
		return err
	}

	if mt != nil && mt.attached {
		err = m.backends[mt.backend].Detach(name)
		if err != nil {
			m.logger.I("failed to detach tunnel from backend", log.String("name", name), log.Error(err))
		}

		err = m.node.Remove(name)
		if err != nil {
			m.logger.I("failed to remove node socket", log.String("name", name), log.Error(err))
		}

		mt.attached = false
	}

	return nil
}

func (m *Manager) defaultBackendLocked() (string, error) {
	if len(m.backendSeq) == 0 {
		return "", fmt.Errorf("no backend configured")
	}

	return m.backendSeq[0], nil
}
