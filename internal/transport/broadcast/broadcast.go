package broadcast

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"time"

	"github.com/go-zeromq/zmq4"

	"github.com/oshokin/clockrobustus/internal/apperr"
)

// Sender publishes frames to every connected subscriber.
type Sender interface {
	Publish(frame []byte) error
}

// Receiver blocks until the next frame arrives.
type Receiver interface {
	Receive() ([]byte, error)
}

// dialRetry is the delay between connection attempts of a subscriber.
const dialRetry = 250 * time.Millisecond

// Endpoint formats a TCP endpoint as tcp://host:port.
func Endpoint(host string, port uint16) string {
	return "tcp://" + net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// Publisher is a bound PUB socket.
type Publisher struct {
	sock zmq4.Socket
}

var _ Sender = (*Publisher)(nil)

// Bind opens a PUB socket listening on endpoint.
// The socket is torn down when ctx is canceled or Close is called.
func Bind(ctx context.Context, endpoint string) (*Publisher, error) {
	sock := zmq4.NewPub(ctx)

	if err := sock.Listen(endpoint); err != nil {
		_ = sock.Close()

		return nil, apperr.Wrap(apperr.ErrTransport, "bind "+endpoint, err)
	}

	return &Publisher{sock: sock}, nil
}

// Publish sends one frame. It does not wait for subscribers.
func (p *Publisher) Publish(frame []byte) error {
	if err := p.sock.Send(zmq4.NewMsg(frame)); err != nil {
		return apperr.Wrap(apperr.ErrTransport, "publish", err)
	}

	return nil
}

// Addr returns the bound address, useful when binding on port 0.
func (p *Publisher) Addr() net.Addr {
	return p.sock.Addr()
}

// Close releases the socket.
func (p *Publisher) Close() error {
	return p.sock.Close()
}

// Subscriber is a SUB socket subscribed to every topic.
type Subscriber struct {
	sock zmq4.Socket
}

var _ Receiver = (*Subscriber)(nil)

// Dial connects a SUB socket to endpoint and subscribes to everything.
// Canceling ctx unblocks a pending Receive.
func Dial(ctx context.Context, endpoint string) (*Subscriber, error) {
	sock := zmq4.NewSub(ctx, zmq4.WithDialerRetry(dialRetry))

	if err := sock.Dial(endpoint); err != nil {
		_ = sock.Close()

		return nil, apperr.Wrap(apperr.ErrTransport, "connect "+endpoint, err)
	}

	if err := sock.SetOption(zmq4.OptionSubscribe, ""); err != nil {
		_ = sock.Close()

		return nil, apperr.Wrap(apperr.ErrTransport, "subscribe", err)
	}

	return &Subscriber{sock: sock}, nil
}

// Receive blocks for the next frame. Multi-part messages are joined.
func (s *Subscriber) Receive() ([]byte, error) {
	msg, err := s.sock.Recv()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrTransport, "receive", err)
	}

	return bytes.Join(msg.Frames, nil), nil
}

// Close releases the socket.
func (s *Subscriber) Close() error {
	return s.sock.Close()
}
