package manager

import (
	"context"
	"fmt"

	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/tunnetpb"
)

func (m *Manager) Process(ctx context.Context, req *tunnetpb.Request) (resp *tunnetpb.Response, err error) {
	var (
		status     *tunnetpb.TunnelStatusResponse
		statusList *tunnetpb.TunnelStatusListResponse
	)

	switch req.Kind {
	case tunnetpb.REQ_ENSURE_TUNNEL:
		status, err = m.handleTunnelEnsure(ctx, req.Body)
	case tunnetpb.REQ_DELETE_TUNNEL:
		err = m.handleTunnelDelete(ctx, req.Body)
	case tunnetpb.REQ_QUERY_TUNNEL:
		status, statusList, err = m.handleTunnelQuery(ctx, req.Body)
	case tunnetpb.REQ_SET_TUNNEL_HEADER_MODE:
		status, err = m.handleTunnelHeaderMode(ctx, req.Body)
	default:
		err = fmt.Errorf("unknown request kind %s", req.Kind.String())
	}
	if err != nil {
		return nil, err
	}

	switch {
	case status != nil:
		return tunnetpb.NewResponse(status)
	case statusList != nil:
		return tunnetpb.NewResponse(statusList)
	default:
		return tunnetpb.NewResponse(nil)
	}
}

func (m *Manager) handleTunnelEnsure(ctx context.Context, data []byte) (*tunnetpb.TunnelStatusResponse, error) {
	_ = ctx

	req := new(tunnetpb.TunnelEnsureRequest)
	err := req.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal TunnelEnsureRequest: %w", err)
	}

	if req.Config == nil {
		return nil, fmt.Errorf("must provide tunnel config")
	}

	config := req.Config
	if config.HeaderEnabled && config.HeaderLen == 0 {
		config.HeaderLen = packet.HeaderLenInfo
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var t *tunnel.Instance
	if _, ok := m.tunnels[config.Name]; ok {
		t, err = m.updateTunnelLocked(config)
	} else {
		t, err = m.addTunnelLocked(config)
	}
	if err != nil {
		return nil, err
	}

	return &tunnetpb.TunnelStatusResponse{Tunnel: m.tunnelInfoLocked(t)}, nil
}

func (m *Manager) handleTunnelDelete(ctx context.Context, data []byte) error {
	req := new(tunnetpb.TunnelDeleteRequest)
	err := req.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("failed to unmarshal TunnelDeleteRequest: %w", err)
	}

	if req.Name == "" {
		return fmt.Errorf("must specify tunnel name")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deleteTunnelLocked(ctx, req.Name)
}

func (m *Manager) handleTunnelQuery(
	ctx context.Context, data []byte,
) (*tunnetpb.TunnelStatusResponse, *tunnetpb.TunnelStatusListResponse, error) {
	_ = ctx

	req := new(tunnetpb.TunnelQueryRequest)
	if len(data) != 0 {
		err := req.Unmarshal(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal TunnelQueryRequest: %w", err)
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if req.Name != "" {
		t, ok := m.registry.Get(req.Name)
		if !ok {
			return nil, nil, fmt.Errorf("tunnel %s not found", req.Name)
		}

		return &tunnetpb.TunnelStatusResponse{Tunnel: m.tunnelInfoLocked(t)}, nil, nil
	}

	resp := new(tunnetpb.TunnelStatusListResponse)
	for _, name := range m.registry.Names() {
		t, ok := m.registry.Get(name)
		if !ok {
			continue
		}

		resp.Tunnels = append(resp.Tunnels, m.tunnelInfoLocked(t))
	}

	return nil, resp, nil
}

func (m *Manager) handleTunnelHeaderMode(ctx context.Context, data []byte) (*tunnetpb.TunnelStatusResponse, error) {
	_ = ctx

	req := new(tunnetpb.TunnelHeaderModeRequest)
	err := req.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal TunnelHeaderModeRequest: %w", err)
	}

	if req.Name == "" {
		return nil, fmt.Errorf("must specify tunnel name")
	}

	headerLen := uint16(req.HeaderLen)
	if req.Enabled && headerLen == 0 {
		headerLen = packet.HeaderLenInfo
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.registry.Get(req.Name)
	if !ok {
		return nil, fmt.Errorf("tunnel %s not found", req.Name)
	}

	err = t.SetHeaderMode(req.Enabled, headerLen)
	if err != nil {
		return nil, err
	}

	// keep desired state in sync so the ensure routine does not undo it
	if mt, ok2 := m.tunnels[req.Name]; ok2 {
		mt.config.HeaderEnabled = req.Enabled
		mt.config.HeaderLen = uint32(headerLen)
		if !req.Enabled {
			mt.config.HeaderLen = 0
		}
	}

	return &tunnetpb.TunnelStatusResponse{Tunnel: m.tunnelInfoLocked(t)}, nil
}

func (m *Manager) tunnelInfoLocked(t *tunnel.Instance) *tunnetpb.TunnelInfo {
	info := t.Status()

	linkAddr := ""
	if len(info.LinkAddress) != 0 {
		linkAddr = info.LinkAddress.String()
	}

	return &tunnetpb.TunnelInfo{
		Name:  info.Name,
		Unit:  int32(info.Unit),
		Mode:  info.Mode.String(),
		State: info.State.String(),

		Mtu:         info.MTU,
		QueueLen:    uint32(info.QueueLen),
		LinkAddress: linkAddr,
		Up:          info.Up,

		HeaderEnabled: info.HeaderEnabled,
		HeaderLen:     uint32(info.HeaderLen),

		Socket: m.node.SocketPath(info.Name),
	}
}
