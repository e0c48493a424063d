package backend

import (
	"context"
	"fmt"

	"arhat.dev/tunnet/pkg/types"
)

type key struct {
	name string
	os   string
}

type factory struct {
	newBackend FactoryFunc
	newConfig  ConfigFactoryFunc
}

type (
	FactoryFunc       func(ctx context.Context, name string, cfg interface{}) (types.Backend, error)
	ConfigFactoryFunc func() interface{}
)

var supportedBackends = make(map[key]factory)

func Register(name, os string, newBackend FactoryFunc, newBackendConfig ConfigFactoryFunc) {
	supportedBackends[key{
		name: name,
		os:   os,
	}] = factory{
		newBackend: newBackend,
		newConfig:  newBackendConfig,
	}
}

func NewBackend(ctx context.Context, name, os, backendName string, cfg interface{}) (types.Backend, error) {
	f, ok := supportedBackends[key{
		name: name,
		os:   os,
	}]
	if !ok {
		return nil, fmt.Errorf("backend %s on %s not found", name, os)
	}

	return f.newBackend(ctx, backendName, cfg)
}

func NewConfig(name, os string) (interface{}, error) {
	f, ok := supportedBackends[key{
		name: name,
		os:   os,
	}]
	if !ok {
		return nil, fmt.Errorf("backend config for %s on %s not found", name, os)
	}

	return f.newConfig(), nil
}
