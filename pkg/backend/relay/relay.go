package relay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"arhat.dev/pkg/log"
	"github.com/goiiot/libmqtt"

	"arhat.dev/tunnet/pkg/backend"
	"arhat.dev/tunnet/pkg/packet"
	"arhat.dev/tunnet/pkg/tunnel"
	"arhat.dev/tunnet/pkg/types"
)

const (
	DriverName = "relay"
)

func init() {
	backend.Register(DriverName, "aix", NewBackend, NewConfig)
	backend.Register(DriverName, "dragonfly", NewBackend, NewConfig)
	backend.Register(DriverName, "darwin", NewBackend, NewConfig)
	backend.Register(DriverName, "freebsd", NewBackend, NewConfig)
	backend.Register(DriverName, "openbsd", NewBackend, NewConfig)
	backend.Register(DriverName, "solaris", NewBackend, NewConfig)
	backend.Register(DriverName, "netbsd", NewBackend, NewConfig)
	backend.Register(DriverName, "windows", NewBackend, NewConfig)
	backend.Register(DriverName, "linux", NewBackend, NewConfig)
}

func NewBackend(ctx context.Context, name string, cfg interface{}) (types.Backend, error) {
	config, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("invalid non relay backend config")
	}

	return &Driver{
		ctx:    ctx,
		name:   name,
		logger: log.Log.WithName(DriverName).WithFields(log.String("backend", name)),

		config: config,

		mu: new(sync.Mutex),
	}, nil
}

// Driver relays packets of exactly one attached tunnel over an MQTT
// broker: dispatched packets are published, inbound topic messages are
// queued for the endpoint. Payloads stay opaque.
type Driver struct {
	ctx    context.Context
	name   string
	logger log.Interface

	config *Config

	mu     *sync.Mutex
	ad     *tunnel.Adapter
	conn   *mqttConn
	cancel context.CancelFunc
}

func (d *Driver) DriverName() string {
	return DriverName
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Attach(t *tunnel.Instance) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ad != nil {
		return fmt.Errorf("relay backend %s already bound to %s", d.name, d.ad.Instance().Name())
	}

	conn, err := d.config.newMQTTConn(d.logger)
	if err != nil {
		return fmt.Errorf("failed to create mqtt connection: %w", err)
	}

	ad, err := tunnel.AttachAdapter(t, &publisher{conn: conn})
	if err != nil {
		return fmt.Errorf("failed to attach adapter: %w", err)
	}

	conn.onInbound = func(data []byte) {
		family := packet.FamilyUnspec
		if len(data) > 0 {
			switch data[0] >> 4 {
			case 4:
				family = packet.FamilyIPv4
			case 6:
				family = packet.FamilyIPv6
			}
		}

		err2 := ad.SubmitOutbound(packet.NewCopy(data, family))
		if err2 != nil {
			d.logger.V("dropped relayed packet", log.Error(err2))
		}
	}

	connCtx, cancel := context.WithCancel(d.ctx)
	go func() {
		err2 := conn.connect(connCtx.Done())
		if err2 != nil {
			d.logger.I("mqtt connection lost", log.Error(err2))
		}
	}()

	d.ad = ad
	d.conn = conn
	d.cancel = cancel

	return nil
}

func (d *Driver) Detach(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ad == nil || d.ad.Instance().Name() != name {
		return fmt.Errorf("tunnel %s not attached", name)
	}

	d.cancel()
	_ = d.conn.close()
	d.ad.Detach()

	d.ad, d.conn, d.cancel = nil, nil, nil

	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ad == nil {
		return nil
	}

	d.cancel()
	err := d.conn.close()
	d.ad.Detach()

	d.ad, d.conn, d.cancel = nil, nil, nil

	return err
}

// publisher is the stack entry point of the attached tunnel.
type publisher struct {
	conn *mqttConn
}

func (p *publisher) DeliverPacket(b *packet.Buffer) error {
	p.conn.sendPacket(b.Payload)
	return nil
}

func (p *publisher) DeliverFrame(b *packet.Buffer) error {
	p.conn.sendPacket(b.Payload)
	return nil
}

func (c Config) newMQTTConn(logger log.Interface) (*mqttConn, error) {
	var options []libmqtt.Option
	switch c.Version {
	case "5":
		options = append(options, libmqtt.WithVersion(libmqtt.V5, false))
	case "3.1.1", "":
		options = append(options, libmqtt.WithVersion(libmqtt.V311, false))
	default:
		return nil, fmt.Errorf("unsupported mqtt version: %s", c.Version)
	}

	switch c.Transport {
	case "websocket":
		options = append(options, libmqtt.WithWebSocketConnector(0, nil))
	case "tcp", "":
		options = append(options, libmqtt.WithTCPConnector(0))
	default:
		return nil, fmt.Errorf("unsupported transport method: %s", c.Transport)
	}

	connInfo, err := c.GetConnectInfo()
	if err != nil {
		return nil, fmt.Errorf("invalid config options for mqtt connect: %w", err)
	}

	if connInfo.TLSConfig != nil {
		options = append(options, libmqtt.WithCustomTLS(connInfo.TLSConfig))
	}

	keepalive := c.Keepalive
	if keepalive == 0 {
		// default to 60 seconds
		keepalive = 60
	}

	options = append(options, libmqtt.WithConnPacket(libmqtt.ConnPacket{
		Username:     connInfo.Username,
		Password:     connInfo.Password,
		ClientID:     connInfo.ClientID,
		Keepalive:    uint16(keepalive),
		CleanSession: true,
	}))

	options = append(options, libmqtt.WithKeepalive(uint16(keepalive), 1.2))

	client, err := libmqtt.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mqtt client: %w", err)
	}

	return &mqttConn{
		logger: logger,
		client: client,

		brokerAddress:      c.Broker,
		inboundTopic:       connInfo.InboundTopic,
		inboundTopicHandle: connInfo.InboundTopicHandle,
		outboundTopic:      connInfo.OutboundTopic,

		netErrCh:  make(chan error),
		connErrCh: make(chan error),
		subErrCh:  make(chan error),

		exited: 0,
	}, nil
}

type mqttConn struct {
	logger log.Interface
	client libmqtt.Client

	onInbound func(data []byte)

	brokerAddress      string
	inboundTopic       string
	inboundTopicHandle string
	outboundTopic      string

	netErrCh  chan error
	connErrCh chan error
	subErrCh  chan error

	exited int32
}

// connect establishes the broker connection and blocks until it fails or
// stopSig fires, no reconnection is attempted here.
func (c *mqttConn) connect(stopSig <-chan struct{}) error {
	dialOpts := []libmqtt.Option{
		libmqtt.WithRouter(libmqtt.NewRegexRouter()),
		libmqtt.WithAutoReconnect(false),
		libmqtt.WithConnHandleFunc(c.handleConn(stopSig)),
		libmqtt.WithSubHandleFunc(c.handleSub(stopSig)),
		libmqtt.WithPubHandleFunc(c.handlePub),
		libmqtt.WithNetHandleFunc(c.handleNet),
	}

	err := c.client.ConnectServer(c.brokerAddress, dialOpts...)
	if err != nil {
		return err
	}

	select {
	case <-stopSig:
		return nil
	case err = <-c.netErrCh:
		if err != nil {
			return err
		}
	case err = <-c.connErrCh:
		if err != nil {
			return err
		}
	}

	c.client.HandleTopic(c.inboundTopicHandle, c.handleInbound)
	c.client.Subscribe(&libmqtt.Topic{Name: c.inboundTopic, Qos: libmqtt.Qos0})

	select {
	case <-stopSig:
		return nil
	case err := <-c.subErrCh:
		if err != nil {
			return err
		}
	}

	select {
	case err := <-c.netErrCh:
		return err
	case <-stopSig:
		c.client.Destroy(true)
		return nil
	}
}

func (c *mqttConn) sendPacket(p []byte) {
	c.client.Publish(&libmqtt.PublishPacket{
		Payload:   p,
		TopicName: c.outboundTopic,
		Qos:       0,
	})
}

func (c *mqttConn) close() error {
	c.client.Destroy(true)

	if atomic.CompareAndSwapInt32(&c.exited, 0, 1) {
		close(c.netErrCh)
	}

	return nil
}

func (c *mqttConn) handleNet(client libmqtt.Client, server string, err error) {
	if err != nil {
		c.logger.I("network error happened", log.String("server", server), log.Error(err))

		// exit client on network error
		if atomic.CompareAndSwapInt32(&c.exited, 0, 1) {
			c.netErrCh <- err
			close(c.netErrCh)
		}
	}
}

func (c *mqttConn) handleConn(dialExitSig <-chan struct{}) libmqtt.ConnHandleFunc {
	return func(client libmqtt.Client, server string, code byte, err error) {
		switch {
		case err != nil:
			select {
			case <-dialExitSig:
				return
			case c.connErrCh <- err:
				return
			}
		case code != libmqtt.CodeSuccess:
			select {
			case <-dialExitSig:
				return
			case c.connErrCh <- fmt.Errorf("rejected by mqtt broker, code: %d", code):
				return
			}
		default:
			// connected to broker
			select {
			case <-dialExitSig:
				return
			case c.connErrCh <- nil:
				return
			}
		}
	}
}

func (c *mqttConn) handleSub(dialExitSig <-chan struct{}) libmqtt.SubHandleFunc {
	return func(client libmqtt.Client, topics []*libmqtt.Topic, err error) {
		select {
		case <-dialExitSig:
			return
		case c.subErrCh <- err:
			return
		}
	}
}

func (c *mqttConn) handlePub(client libmqtt.Client, topic string, err error) {
	if err != nil {
		c.logger.I("failed to publish message", log.String("topic", topic), log.Error(err))
	}
}

func (c *mqttConn) handleInbound(client libmqtt.Client, topic string, qos libmqtt.QosLevel, data []byte) {
	if c.onInbound != nil {
		c.onInbound(data)
	}
}
