// +build !windows

package manager

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"arhat.dev/tunnet/pkg/backend/loopback"
	"arhat.dev/tunnet/pkg/conf"
	"arhat.dev/tunnet/pkg/tunnetpb"
)

func newTestManager(t *testing.T) *Manager {
	dir := t.TempDir()

	m, err := NewManager(context.Background(), &conf.TunnelsConfig{
		DataDir: filepath.Join(dir, "data"),
		NodeDir: filepath.Join(dir, "node"),
		Backends: []conf.BackendConfig{
			{Driver: loopback.DriverName, Name: "lo", Config: loopback.NewConfig()},
		},
	})
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return m
}

func processTunnelStatus(t *testing.T, m *Manager, req *tunnetpb.Request) *tunnetpb.TunnelInfo {
	resp, err := m.Process(context.Background(), req)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, tunnetpb.RESP_TUNNEL_STATUS, resp.Kind)

	status := new(tunnetpb.TunnelStatusResponse)
	assert.NoError(t, status.Unmarshal(resp.Body))
	if !assert.NotNil(t, status.Tunnel) {
		t.FailNow()
	}

	return status.Tunnel
}

func TestManagerProcess(t *testing.T) {
	m := newTestManager(t)

	// ensure with a bare mode prefix auto allocates a unit and persists
	// the resolved config
	req, err := tunnetpb.NewRequest(tunnetpb.NewTunnelEnsureRequest(&tunnetpb.TunnelConfig{
		Name: "tun",
		Mtu:  1400,
		Up:   true,
	}))
	assert.NoError(t, err)

	info := processTunnelStatus(t, m, req)
	assert.Equal(t, "tun0", info.Name)
	assert.EqualValues(t, 1400, info.Mtu)
	assert.True(t, info.Up)
	assert.Equal(t, m.node.SocketPath("tun0"), info.Socket)

	_, err = os.Stat(filepath.Join(m.dataDir, "0.tun0.json"))
	assert.NoError(t, err)

	// node socket is exposed with owner only access
	fi, err := os.Stat(info.Socket)
	if assert.NoError(t, err) {
		assert.EqualValues(t, 0600, fi.Mode().Perm())
	}

	// query all
	req, err = tunnetpb.NewRequest(tunnetpb.NewTunnelQueryRequest(""))
	assert.NoError(t, err)

	resp, err := m.Process(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, tunnetpb.RESP_TUNNEL_STATUS_LIST, resp.Kind)

	list := new(tunnetpb.TunnelStatusListResponse)
	assert.NoError(t, list.Unmarshal(resp.Body))
	if assert.Len(t, list.Tunnels, 1) {
		assert.Equal(t, "tun0", list.Tunnels[0].Name)
	}

	// toggle header mode, length defaults to the short info header
	req, err = tunnetpb.NewRequest(tunnetpb.NewTunnelHeaderModeRequest("tun0", true, 0))
	assert.NoError(t, err)

	info = processTunnelStatus(t, m, req)
	assert.True(t, info.HeaderEnabled)
	assert.EqualValues(t, 4, info.HeaderLen)

	// delete tears the instance down and removes the persisted config
	req, err = tunnetpb.NewRequest(tunnetpb.NewTunnelDeleteRequest("tun0"))
	assert.NoError(t, err)

	resp, err = m.Process(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, tunnetpb.RESP_DONE, resp.Kind)

	_, err = os.Stat(filepath.Join(m.dataDir, "0.tun0.json"))
	assert.True(t, os.IsNotExist(err))

	req, err = tunnetpb.NewRequest(tunnetpb.NewTunnelQueryRequest("tun0"))
	assert.NoError(t, err)
	_, err = m.Process(context.Background(), req)
	assert.Error(t, err)
}

func TestManagerEnsureUpdate(t *testing.T) {
	m := newTestManager(t)

	req, err := tunnetpb.NewRequest(tunnetpb.NewTunnelEnsureRequest(&tunnetpb.TunnelConfig{
		Name: "tun0",
		Up:   true,
	}))
	assert.NoError(t, err)

	info := processTunnelStatus(t, m, req)
	assert.True(t, info.Up)

	// ensure again with up false updates the running instance in place
	req, err = tunnetpb.NewRequest(tunnetpb.NewTunnelEnsureRequest(&tunnetpb.TunnelConfig{
		Name: "tun0",
		Up:   false,
	}))
	assert.NoError(t, err)

	info = processTunnelStatus(t, m, req)
	assert.False(t, info.Up)
}
