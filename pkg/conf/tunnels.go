package conf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"runtime"

	"gopkg.in/yaml.v3"

	"arhat.dev/tunnet/pkg/backend"
)

type TunnelsConfig struct {
	// DataDir to persist dynamically ensured tunnel configs
	DataDir string `json:"dataDir" yaml:"dataDir"`

	// NodeDir to create per tunnel unixpacket sockets in
	NodeDir string `json:"nodeDir" yaml:"nodeDir"`

	// Backends external stacks tunnels can be attached to, the first
	// one is the default for dynamically ensured tunnels
	Backends []BackendConfig `json:"backends" yaml:"backends"`

	// Instances static tunnel definitions
	Instances []InstanceConfig `json:"instances" yaml:"instances"`
}

type InstanceConfig struct {
	Name    string `json:"name" yaml:"name"`
	Backend string `json:"backend" yaml:"backend"`

	MTU         uint32 `json:"mtu" yaml:"mtu"`
	QueueSize   int    `json:"queueSize" yaml:"queueSize"`
	Promiscuous bool   `json:"promiscuous" yaml:"promiscuous"`

	Header struct {
		Enabled bool   `json:"enabled" yaml:"enabled"`
		Length  uint16 `json:"length" yaml:"length"`
	} `json:"header" yaml:"header"`

	Up bool `json:"up" yaml:"up"`
}

type BackendConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	Name   string `json:"name" yaml:"name"`

	Config interface{} `json:"config" yaml:"config"`
}

func (c *BackendConfig) UnmarshalJSON(data []byte) error {
	m := make(map[string]interface{})

	err := json.Unmarshal(data, &m)
	if err != nil {
		return err
	}

	return unmarshalBackendConfig(m, c)
}

func (c *BackendConfig) UnmarshalYAML(value *yaml.Node) error {
	m := make(map[string]interface{})

	configData, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	err = yaml.Unmarshal(configData, &m)
	if err != nil {
		return err
	}

	return unmarshalBackendConfig(m, c)
}

func unmarshalBackendConfig(m map[string]interface{}, config *BackendConfig) error {
	d, ok := m["driver"]
	if !ok {
		return fmt.Errorf("must specify backend driver")
	}

	config.Driver, ok = d.(string)
	if !ok {
		return fmt.Errorf("backend driver must be a string")
	}

	n, ok := m["name"]
	if !ok {
		return fmt.Errorf("must specify backend name")
	}

	config.Name, ok = n.(string)
	if !ok || config.Name == "" {
		return fmt.Errorf("invalid backend name: %s", config.Name)
	}

	configData, err := json.Marshal(m["config"])
	if err != nil {
		return fmt.Errorf("failed to get backend config bytes: %w", err)
	}

	config.Config, err = backend.NewConfig(config.Driver, runtime.GOOS)
	if err != nil {
		return fmt.Errorf("unknown backend driver %s: %w", config.Driver, err)
	}

	dec := json.NewDecoder(bytes.NewReader(configData))
	dec.DisallowUnknownFields()
	err = dec.Decode(config.Config)
	if err != nil {
		return fmt.Errorf("failed to resolve backend config %s: %w", config.Driver, err)
	}

	return nil
}
