// +build !windows

package netlink

import (
	"github.com/vishvananda/netlink"
)

type (
	Addr              = netlink.Addr
	Handle            = netlink.Handle
	Link              = netlink.Link
	LinkNotFoundError = netlink.LinkNotFoundError
)

// functions
var (
	ParseAddr = netlink.ParseAddr
)
