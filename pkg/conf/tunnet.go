/*
Copyright 2020 The arhat.dev Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package conf

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"arhat.dev/pkg/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"arhat.dev/tunnet/pkg/constant"
)

type TunnetConfig struct {
	Tunnet  AppConfig     `json:"tunnet" yaml:"tunnet"`
	Tunnels TunnelsConfig `json:"tunnels" yaml:"tunnels"`
}

type AppConfig struct {
	Log    log.ConfigSet `json:"log" yaml:"log"`
	Listen string        `json:"listen" yaml:"listen"`
}

// ReadConfig loads the config file, applies cli overrides, initializes
// the default logger and returns the signal canceled app context with
// the config attached.
func ReadConfig(
	cmd *cobra.Command,
	configFile *string,
	cliLogConfig *log.Config,
	config *TunnetConfig,
) (context.Context, error) {
	flags := cmd.Flags()

	configBytes, err := ioutil.ReadFile(*configFile)
	if err != nil {
		if !os.IsNotExist(err) || flags.Changed("config") {
			return nil, fmt.Errorf("failed to read config file %s: %w", *configFile, err)
		}
	} else {
		err = yaml.Unmarshal(configBytes, config)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file %s: %w", *configFile, err)
		}
	}

	if len(config.Tunnet.Log) == 0 {
		config.Tunnet.Log = append(config.Tunnet.Log, *cliLogConfig)
	}

	err = log.SetDefaultLogger(config.Tunnet.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appCtx, exit := context.WithCancel(
		context.WithValue(context.Background(), constant.ContextKeyConfig, config),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range sigCh {
			exit()
		}
	}()

	return appCtx, nil
}
