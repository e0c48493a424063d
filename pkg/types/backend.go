package types

import (
	"arhat.dev/tunnet/pkg/tunnel"
)

// Backend is one external packet stack tunnel instances attach to.
type Backend interface {
	// DriverName of the backend implementation
	DriverName() string

	// Name of this backend as configured
	Name() string

	// Attach registers the stack facing half of t with this backend
	Attach(t *tunnel.Instance) error

	// Detach removes the named instance from this backend
	Detach(name string) error

	// Close this backend, detaching all instances
	Close() error
}
