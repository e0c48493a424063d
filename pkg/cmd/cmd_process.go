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
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"arhat.dev/tunnet/pkg/conf"
	"arhat.dev/tunnet/pkg/constant"
	"arhat.dev/tunnet/pkg/tunnetpb"
)

func newProcessCmd(appCtx *context.Context) *cobra.Command {
	reqCmd := &cobra.Command{
		Use:           "process",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runProcess(*appCtx, (*appCtx).Value(constant.ContextKeyConfig).(*conf.TunnetConfig))
			if err != nil {
				_, _ = fmt.Fprintln(os.Stderr, err.Error())
			}

			return nil
		},
	}

	return reqCmd
}

// runProcess reads a serialized request from stdin, with optional env
// overrides for scripting without a protobuf encoder at hand.
func runProcess(ctx context.Context, config *conf.TunnetConfig) error {
	pbBytes, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read request data: %w", err)
	}

	req := new(tunnetpb.Request)
	if len(pbBytes) != 0 {
		err = req.Unmarshal(pbBytes)
		if err != nil {
			return fmt.Errorf("failed to unmarshal pb bytes: %w", err)
		}
	}

	reqAction, hasEnvAction := os.LookupEnv("TUNNET_REQ_ACTION")
	if hasEnvAction {
		switch reqAction {
		case "tunnel:query":
			req.Kind = tunnetpb.REQ_QUERY_TUNNEL
		case "tunnel:delete":
			req.Kind = tunnetpb.REQ_DELETE_TUNNEL
		default:
			return fmt.Errorf("unsupported env action")
		}
	} else if len(pbBytes) == 0 {
		return fmt.Errorf("invalid request with no request body and env action")
	}

	// override tunnel name from env
	if name, ok := os.LookupEnv("TUNNET_REQ_TUNNEL_NAME"); ok {
		switch req.Kind {
		case tunnetpb.REQ_QUERY_TUNNEL:
			reqBody := new(tunnetpb.TunnelQueryRequest)
			if len(req.Body) != 0 {
				err = reqBody.Unmarshal(req.Body)
				if err != nil {
					return fmt.Errorf("failed to unmarshal TunnelQueryRequest: %w", err)
				}
			}

			reqBody.Name = name
			req.Body, err = reqBody.Marshal()
		case tunnetpb.REQ_DELETE_TUNNEL:
			reqBody := new(tunnetpb.TunnelDeleteRequest)
			if len(req.Body) != 0 {
				err = reqBody.Unmarshal(req.Body)
				if err != nil {
					return fmt.Errorf("failed to unmarshal TunnelDeleteRequest: %w", err)
				}
			}

			reqBody.Name = name
			req.Body, err = reqBody.Marshal()
		case tunnetpb.REQ_SET_TUNNEL_HEADER_MODE:
			reqBody := new(tunnetpb.TunnelHeaderModeRequest)
			if len(req.Body) != 0 {
				err = reqBody.Unmarshal(req.Body)
				if err != nil {
					return fmt.Errorf("failed to unmarshal TunnelHeaderModeRequest: %w", err)
				}
			}

			reqBody.Name = name
			req.Body, err = reqBody.Marshal()
		}
		if err != nil {
			return fmt.Errorf("failed to override tunnel request: %w", err)
		}
	}

	conn, err := dialManager(ctx, config.Tunnet.Listen)
	if err != nil {
		return fmt.Errorf("failed to dial tunnet: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	client := tunnetpb.NewTunnelManagerClient(conn)
	resp, err := client.Process(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to process request: %w", err)
	}

	respBytes, err := resp.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, base64.StdEncoding.EncodeToString(respBytes))
	if err != nil {
		return fmt.Errorf("failed to write response to stdout: %w", err)
	}

	return nil
}
