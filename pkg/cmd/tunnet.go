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

package cmd

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"

	"arhat.dev/pkg/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"arhat.dev/tunnet/pkg/conf"
	"arhat.dev/tunnet/pkg/constant"
	"arhat.dev/tunnet/pkg/manager"
	"arhat.dev/tunnet/pkg/tunnetpb"

	// backend drivers register themselves
	_ "arhat.dev/tunnet/pkg/backend/hostlink"
	_ "arhat.dev/tunnet/pkg/backend/loopback"
	_ "arhat.dev/tunnet/pkg/backend/netstack"
	_ "arhat.dev/tunnet/pkg/backend/relay"
)

func NewTunnetCmd() *cobra.Command {
	var (
		appCtx       context.Context
		configFile   string
		config       = new(conf.TunnetConfig)
		cliLogConfig = new(log.Config)
	)

	tunnetCmd := &cobra.Command{
		Use:           "tunnet",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Use == "version" {
				return nil
			}

			var err error
			appCtx, err = conf.ReadConfig(cmd, &configFile, cliLogConfig, config)
			if err != nil {
				return err
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(appCtx, config)
		},
	}

	flags := tunnetCmd.PersistentFlags()
	// config file
	flags.StringVarP(&configFile, "config", "c", constant.DefaultTunnetConfigFile, "path to the tunnet config file")
	// log config options
	flags.AddFlagSet(log.FlagsForLogConfig("log.", cliLogConfig))
	// listen address
	flags.StringVar(&config.Tunnet.Listen, "listen", constant.DefaultTunnetListenAddr, "set tunnet listen address")

	// tunnel manager config options
	flags.StringVar(
		&config.Tunnels.DataDir,
		"dataDir",
		constant.DefaultTunnelDataDir,
		"set data dir for persisted tunnel configs",
	)
	flags.StringVar(
		&config.Tunnels.NodeDir,
		"nodeDir",
		constant.DefaultTunnelNodeDir,
		"set dir for per tunnel node sockets",
	)

	tunnetCmd.AddCommand(newRequestCmd(&appCtx))
	tunnetCmd.AddCommand(newProcessCmd(&appCtx))

	return tunnetCmd
}

func run(ctx context.Context, config *conf.TunnetConfig) error {
	mgr, err := manager.NewManager(ctx, &config.Tunnels)
	if err != nil {
		return err
	}

	errCh := make(chan error)
	if config.Tunnet.Listen != "" {
		u, err2 := url.Parse(config.Tunnet.Listen)
		if err2 != nil {
			return err2
		}

		addr := u.Host
		if u.Scheme == "unix" {
			addr = u.Path
			// clean up previous unix socket file
			if err2 = os.Remove(addr); err2 != nil && !os.IsNotExist(err2) {
				return err2
			}
		}

		l, err2 := net.Listen(u.Scheme, addr)
		if err2 != nil {
			return err2
		}

		srv := grpc.NewServer()
		tunnetpb.RegisterTunnelManagerServer(srv, mgr)

		go func() {
			select {
			case errCh <- srv.Serve(l):
			case <-ctx.Done():
			}
		}()

		defer func() {
			srv.Stop()
			_ = l.Close()
			if u.Scheme == "unix" {
				_ = os.Remove(addr)
			}
		}()
	}

	go func() {
		select {
		case errCh <- mgr.Start():
		case <-ctx.Done():
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to run tunnel manager: %w", err)
		}
	case <-ctx.Done():
		return nil
	}

	return nil
}

// dialManager connects to a running tunnet daemon at the configured
// listen address.
func dialManager(ctx context.Context, listen string) (*grpc.ClientConn, error) {
	u, err := url.Parse(listen)
	if err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %w", listen, err)
	}

	addr := u.Host
	dialOpts := []grpc.DialOption{grpc.WithBlock(), grpc.WithInsecure()}
	if u.Scheme == "unix" {
		addr = u.Path
		dialOpts = append(dialOpts, grpc.WithContextDialer(
			func(ctx context.Context, addr string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", addr)
			},
		))
	}

	return grpc.DialContext(ctx, addr, dialOpts...)
}
