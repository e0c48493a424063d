package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"arhat.dev/pkg/iohelper"
	"arhat.dev/pkg/log"

	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/tunnetpb"
)

func (m *Manager) formatConfigFilename(index int, name string) string {
	return filepath.Join(
		m.dataDir,
		fmt.Sprintf("%s.%s.json", strconv.FormatInt(int64(index), 10), name),
	)
}

// restoreTunnelsLocked reloads dynamically ensured tunnel configs
// persisted in the data dir, appending them to the desired set after the
// static definitions.
func (m *Manager) restoreTunnelsLocked() error {
	entries, err := ioutil.ReadDir(m.dataDir)
	if err != nil {
		return fmt.Errorf("failed to list data dir %s: %w", m.dataDir, err)
	}

	type persisted struct {
		index  int
		config *tunnetpb.TunnelConfig
	}

	var restored []persisted
	for _, ent := range entries {
		filename := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(filename, ".json") {
			continue
		}

		parts := strings.SplitN(strings.TrimSuffix(filename, ".json"), ".", 2)
		if len(parts) != 2 {
			continue
		}

		index, err2 := strconv.Atoi(parts[0])
		if err2 != nil {
			continue
		}

		configData, err2 := ioutil.ReadFile(filepath.Join(m.dataDir, filename))
		if err2 != nil {
			return fmt.Errorf("failed to read persisted config %s: %w", filename, err2)
		}

		config := new(tunnetpb.TunnelConfig)
		err2 = json.Unmarshal(configData, config)
		if err2 != nil {
			return fmt.Errorf("failed to unmarshal persisted config %s: %w", filename, err2)
		}

		if config.Name != parts[1] {
			return fmt.Errorf("inconsistent persisted config %s for tunnel %s", filename, config.Name)
		}

		restored = append(restored, persisted{index: index, config: config})
	}

	sort.Slice(restored, func(i, j int) bool {
		return restored[i].index < restored[j].index
	})

	backendName, err := m.defaultBackendLocked()
	if err != nil {
		if len(restored) == 0 {
			return nil
		}

		return err
	}

	for _, p := range restored {
		if _, ok := m.tunnels[p.config.Name]; ok {
			m.logger.I("ignoring persisted config shadowed by static tunnel",
				log.String("name", p.config.Name))
			continue
		}

		m.tunnels[p.config.Name] = &managedTunnel{
			config:  p.config,
			backend: backendName,
		}
		m.tunnelSeq = append(m.tunnelSeq, p.config.Name)
	}

	return nil
}

// addTunnelLocked creates a new dynamically managed tunnel, persisting
// its config before the instance comes up and undoing the write if
// creation fails.
func (m *Manager) addTunnelLocked(config *tunnetpb.TunnelConfig) (_ *tunnel.Instance, err error) {
	backendName, err := m.defaultBackendLocked()
	if err != nil {
		return nil, err
	}

	configData, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config data: %w", err)
	}

	filename := m.formatConfigFilename(len(m.tunnelSeq), config.Name)
	undoConfigWrite, err := iohelper.WriteFile(filename, configData, 0640, false)
	if err != nil {
		return nil, fmt.Errorf("failed to persist config before tunnel creation: %w", err)
	}

	mt := &managedTunnel{
		config:  config,
		backend: backendName,
	}

	defer func() {
		if err == nil {
			return
		}

		// undo config write on error with best effort
		err2 := undoConfigWrite()
		if err2 != nil {
			m.logger.I("failed to undo config data write", log.Error(err2))
		}
	}()

	t, err := m.ensureTunnelLocked(mt)
	if err != nil {
		return nil, err
	}

	name := t.Name()
	if name != config.Name {
		// name resolved after unit auto allocation
		config.Name = name
		configData, err = json.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resolved config data: %w", err)
		}

		err = ioutil.WriteFile(filename, configData, 0640)
		if err != nil {
			return nil, fmt.Errorf("failed to update persisted config: %w", err)
		}

		err = os.Rename(filename, m.formatConfigFilename(len(m.tunnelSeq), name))
		if err != nil {
			return nil, fmt.Errorf("failed to update config file name: %w", err)
		}
	}

	m.tunnels[name] = mt
	m.tunnelSeq = append(m.tunnelSeq, name)

	return t, nil
}

// updateTunnelLocked applies a new config to an existing managed tunnel,
// restoring the previous persisted config on failure.
func (m *Manager) updateTunnelLocked(config *tunnetpb.TunnelConfig) (_ *tunnel.Instance, err error) {
	name := config.Name
	mt, ok := m.tunnels[name]
	if !ok {
		return nil, fmt.Errorf("unexpected tunnel %q not found", name)
	}

	index := -1
	for i, currentName := range m.tunnelSeq {
		if currentName == name {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, fmt.Errorf("unexpected tunnel %q index not found", name)
	}

	prevConfig := mt.config

	if !mt.static {
		configData, err2 := json.Marshal(config)
		if err2 != nil {
			return nil, fmt.Errorf("failed to marshal new config data: %w", err2)
		}

		prevConfigData, err2 := json.Marshal(prevConfig)
		if err2 != nil {
			return nil, fmt.Errorf("failed to marshal previous config data: %w", err2)
		}

		filename := m.formatConfigFilename(index, name)
		err = ioutil.WriteFile(filename, configData, 0640)
		if err != nil {
			return nil, fmt.Errorf("failed to update config data: %w", err)
		}

		defer func() {
			if err == nil {
				return
			}

			err2 := ioutil.WriteFile(filename, prevConfigData, 0640)
			if err2 != nil {
				m.logger.I("failed to restore tunnel old config", log.Error(err2))
			}
		}()
	}

	m.logger.I("updating running tunnel", log.String("name", name))

	mt.config = config
	t, err := m.ensureTunnelLocked(mt)
	if err != nil {
		mt.config = prevConfig
		return nil, fmt.Errorf("failed to ensure updated tunnel %q: %w", name, err)
	}

	return t, nil
}

// deleteTunnelLocked removes a managed tunnel and its persisted config,
// restoring the config file if destruction fails.
func (m *Manager) deleteTunnelLocked(ctx context.Context, name string) (err error) {
	mt, ok := m.tunnels[name]
	if !ok {
		return fmt.Errorf("unexpected tunnel %q not found", name)
	}

	index := -1
	for i, currentName := range m.tunnelSeq {
		if currentName == name {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("unexpected tunnel %q index not found", name)
	}

	if !mt.static {
		configData, err2 := json.Marshal(mt.config)
		if err2 != nil {
			return fmt.Errorf("failed to marshal config data: %w", err2)
		}

		filename := m.formatConfigFilename(index, name)
		err = os.Remove(filename)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config data: %w", err)
		}

		defer func() {
			if err == nil {
				return
			}

			// restore config on error
			_, err2 := iohelper.WriteFile(filename, configData, 0640, false)
			if err2 != nil {
				m.logger.I("failed to restore config data", log.Error(err2))
			}
		}()
	}

	m.logger.I("deleting running tunnel", log.String("name", name))
	err = m.teardownTunnelLocked(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to destroy existing tunnel: %w", err)
	}

	m.tunnelSeq = append(m.tunnelSeq[:index], m.tunnelSeq[index+1:]...)
	delete(m.tunnels, name)

	return nil
}
