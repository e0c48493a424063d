package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	_ "arhat.dev/tunnet/pkg/backend/loopback"
)

func TestTunnelsConfigUnmarshal(t *testing.T) {
	configYaml := `
dataDir: /var/lib/tunnet
backends:
- driver: loopback
  name: lo
instances:
- name: tun0
  backend: lo
  mtu: 1400
  header:
    enabled: true
    length: 12
  up: true
`

	config := new(TunnelsConfig)
	err := yaml.Unmarshal([]byte(configYaml), config)
	assert.NoError(t, err)

	assert.Equal(t, "/var/lib/tunnet", config.DataDir)

	if assert.Len(t, config.Backends, 1) {
		assert.Equal(t, "loopback", config.Backends[0].Driver)
		assert.Equal(t, "lo", config.Backends[0].Name)
		assert.NotNil(t, config.Backends[0].Config)
	}

	if assert.Len(t, config.Instances, 1) {
		ins := config.Instances[0]
		assert.Equal(t, "tun0", ins.Name)
		assert.Equal(t, "lo", ins.Backend)
		assert.EqualValues(t, 1400, ins.MTU)
		assert.True(t, ins.Header.Enabled)
		assert.EqualValues(t, 12, ins.Header.Length)
		assert.True(t, ins.Up)
	}
}

func TestBackendConfigUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no driver", data: `{"name": "lo"}`},
		{name: "no name", data: `{"driver": "loopback"}`},
		{name: "unknown driver", data: `{"driver": "no-such-driver", "name": "x"}`},
		{name: "unknown config field", data: `{"driver": "loopback", "name": "lo", "config": {"foo": 1}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := new(BackendConfig)
			assert.Error(t, yaml.Unmarshal([]byte(test.data), config))
		})
	}
}
