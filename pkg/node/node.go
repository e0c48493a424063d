// +build !windows

package node

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"arhat.dev/pkg/log"
	"golang.org/x/sys/unix"

	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
)

// Server exposes each managed tunnel instance as a unixpacket socket in
// the node dir. One socket message carries exactly one packet, both
// directions, so the one-write-one-packet contract survives the socket
// hop. At most one connection holds an instance at a time, enforced by
// endpoint exclusivity.
type Server struct {
	ctx    context.Context
	logger log.Interface

	dir string

	mu    *sync.Mutex
	nodes map[string]*nodeSock
}

type nodeSock struct {
	listener *net.UnixListener
	cancel   context.CancelFunc
}

func NewServer(ctx context.Context, dir string) (*Server, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure node dir %s: %w", dir, err)
	}

	return &Server{
		ctx:    ctx,
		logger: log.Log.WithName("node"),

		dir: dir,

		mu:    new(sync.Mutex),
		nodes: make(map[string]*nodeSock),
	}, nil
}

func (s *Server) SocketPath(name string) string {
	return filepath.Join(s.dir, name+".sock")
}

// Expose creates the instance socket and starts accepting connections.
func (s *Server) Expose(t *tunnel.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := t.Name()
	if _, ok := s.nodes[name]; ok {
		return fmt.Errorf("tunnel %s already exposed", name)
	}

	path := s.SocketPath(name)
	_ = os.Remove(path)

	l, err := net.ListenUnix("unixpacket", &net.UnixAddr{Name: path, Net: "unixpacket"})
	if err != nil {
		return fmt.Errorf("failed to listen on node socket %s: %w", path, err)
	}

	err = os.Chmod(path, 0600)
	if err != nil {
		_ = l.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to restrict node socket %s: %w", path, err)
	}

	sockCtx, cancel := context.WithCancel(s.ctx)
	s.nodes[name] = &nodeSock{
		listener: l,
		cancel:   cancel,
	}

	go s.accept(sockCtx, t, l)

	return nil
}

// Remove stops accepting and deletes the socket file.
func (s *Server) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[name]
	if !ok {
		return fmt.Errorf("tunnel %s not exposed", name)
	}

	n.cancel()
	_ = n.listener.Close()
	_ = os.Remove(s.SocketPath(name))

	delete(s.nodes, name)

	return nil
}

func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, n := range s.nodes {
		n.cancel()
		_ = n.listener.Close()
		_ = os.Remove(s.SocketPath(name))
		delete(s.nodes, name)
	}

	return nil
}

func (s *Server) accept(ctx context.Context, t *tunnel.Instance, l *net.UnixListener) {
	for {
		conn, err := l.AcceptUnix()
		if err != nil {
			select {
			case <-ctx.Done():
			default:
				s.logger.I("failed to accept node connection",
					log.String("tunnel", t.Name()), log.Error(err))
			}

			return
		}

		go s.serveConn(ctx, t, conn)
	}
}

func (s *Server) serveConn(ctx context.Context, t *tunnel.Instance, conn *net.UnixConn) {
	ep, err := t.Open("node")
	if err != nil {
		// instance already held elsewhere
		s.logger.D("rejected node connection",
			log.String("tunnel", t.Name()), log.Error(err))
		_ = conn.Close()

		return
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		_ = ep.Close()
		_ = conn.Close()
	}()

	go func() {
		defer cancel()

		// socket -> instance, one message per packet
		buf := make([]byte, messageSize(t))
		for {
			n, err2 := conn.Read(buf)
			if err2 != nil {
				return
			}

			if n == 0 {
				continue
			}

			_, err2 = ep.Write(buf[:n])
			if err2 != nil {
				if errors.Is(err2, tunnel.ErrHostDown) || errors.Is(err2, tunnel.ErrNotReady) {
					return
				}

				s.logger.V("dropped node write",
					log.String("tunnel", t.Name()), log.Error(err2))
			}
		}
	}()

	// instance -> socket, one message per packet
	buf := make([]byte, messageSize(t))
	for {
		n, err := ep.Read(connCtx, buf, tunnel.ReadOptions{Blocking: true})
		if err != nil {
			if errors.Is(err, tunnel.ErrInterrupted) || errors.Is(err, tunnel.ErrHostDown) {
				return
			}

			s.logger.V("failed node read",
				log.String("tunnel", t.Name()), log.Error(err))

			continue
		}

		_, err = conn.Write(buf[:n])
		if err != nil {
			if !errors.Is(err, unix.EPIPE) && !errors.Is(err, unix.ECONNRESET) {
				s.logger.V("failed node write",
					log.String("tunnel", t.Name()), log.Error(err))
			}

			return
		}
	}
}

// messageSize bounds a single socket message: optional info header plus
// MTU plus the frame header allowance.
func messageSize(t *tunnel.Instance) int {
	return int(t.MTU()) + tunnel.EthernetHeaderLen + packet.HeaderLenOffload
}
