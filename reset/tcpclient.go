package reset

import (
	"net"
	"time"

	"github.com/golang/glog"
)

var dialTimeout = net.DialTimeout

// TCPClient provides a TCP/IP connection to the receiver.
type TCPClient struct {
	host, port string
	timeout    time.Duration
	conn       net.Conn
}

// NewTCPClient connects to host:port. The timeout bounds the connect and every write.
func NewTCPClient(host, port string, timeout time.Duration) (*TCPClient, error) {
	c := &TCPClient{host: host, port: port, timeout: timeout}
	if err := c.connect(); err != nil {
		return nil, err
	}
	glog.V(1).Infof("tcp %s connected from %s", c.conn.RemoteAddr(), c.conn.LocalAddr())
	return c, nil
}

func (c *TCPClient) connect() (err error) {
	c.conn, err = dialTimeout("tcp", net.JoinHostPort(c.host, c.port), c.timeout)
	return err
}

func (c *TCPClient) String() string { return net.JoinHostPort(c.host, c.port) }

// Write implements the Conn interface.
func (c *TCPClient) Write(p []byte) (n int, err error) {
	if c.timeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
			return 0, err
		}
	}
	return c.conn.Write(p)
}

// Close implements the Conn interface.
func (c *TCPClient) Close() error {
	return c.conn.Close()
}
