package tunnetpb

import (
	"fmt"
)

type marshaler interface {
	Marshal() ([]byte, error)
}

func kindOf(msg marshaler) (Kind, error) {
	switch msg.(type) {
	case *TunnelEnsureRequest:
		return REQ_ENSURE_TUNNEL, nil
	case *TunnelDeleteRequest:
		return REQ_DELETE_TUNNEL, nil
	case *TunnelQueryRequest:
		return REQ_QUERY_TUNNEL, nil
	case *TunnelHeaderModeRequest:
		return REQ_SET_TUNNEL_HEADER_MODE, nil
	case *TunnelStatusResponse:
		return RESP_TUNNEL_STATUS, nil
	case *TunnelStatusListResponse:
		return RESP_TUNNEL_STATUS_LIST, nil
	default:
		return UNKNOWN, fmt.Errorf("unknown message type %T", msg)
	}
}

// NewRequest wraps msg into a Request envelope, inferring its kind.
func NewRequest(msg marshaler) (*Request, error) {
	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}

	body, err := msg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	return &Request{Kind: kind, Body: body}, nil
}

// NewResponse wraps msg into a Response envelope, a nil msg produces a
// bare RESP_DONE.
func NewResponse(msg marshaler) (*Response, error) {
	if msg == nil {
		return &Response{Kind: RESP_DONE}, nil
	}

	kind, err := kindOf(msg)
	if err != nil {
		return nil, err
	}

	body, err := msg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response body: %w", err)
	}

	return &Response{Kind: kind, Body: body}, nil
}

func NewTunnelEnsureRequest(config *TunnelConfig) *TunnelEnsureRequest {
	return &TunnelEnsureRequest{Config: config}
}

func NewTunnelDeleteRequest(name string) *TunnelDeleteRequest {
	return &TunnelDeleteRequest{Name: name}
}

func NewTunnelQueryRequest(name string) *TunnelQueryRequest {
	return &TunnelQueryRequest{Name: name}
}

func NewTunnelHeaderModeRequest(name string, enabled bool, headerLen uint32) *TunnelHeaderModeRequest {
	return &TunnelHeaderModeRequest{
		Name:      name,
		Enabled:   enabled,
		HeaderLen: headerLen,
	}
}
