package reset

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

// fakePort is a serial port recording everything written to it.
// Methods not needed by Serial are left to the nil embedded interface.
type fakePort struct {
	serial.Port
	readTimeout    time.Duration
	readTimeoutErr error
	written        bytes.Buffer
	closed         bool
}

func (p *fakePort) SetReadTimeout(t time.Duration) error {
	p.readTimeout = t
	return p.readTimeoutErr
}

func (p *fakePort) Write(b []byte) (int, error) { return p.written.Write(b) }

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

type openCall struct {
	name string
	mode serial.Mode
}

func stubOpenPort(t *testing.T, port *fakePort, err error) *[]openCall {
	t.Helper()
	var calls []openCall
	orig := openPort
	openPort = func(name string, mode *serial.Mode) (serial.Port, error) {
		calls = append(calls, openCall{name: name, mode: *mode})
		if err != nil {
			return nil, err
		}
		return port, nil
	}
	t.Cleanup(func() { openPort = orig })
	return &calls
}

func noSleep(time.Duration) {}

func TestRunSerial(t *testing.T) {
	port := &fakePort{}
	calls := stubOpenPort(t, port, nil)

	var slept []time.Duration
	err := Run("USB", "/dev/ttyUSB0@9600", WithSleep(func(d time.Duration) { slept = append(slept, d) }))
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/dev/ttyUSB0", call.name)
	assert.Equal(t, 9600, call.mode.BaudRate)
	assert.Equal(t, 8, call.mode.DataBits)
	assert.Equal(t, serial.NoParity, call.mode.Parity)
	assert.Equal(t, serial.OneStopBit, call.mode.StopBits)

	assert.Equal(t, 100*time.Millisecond, port.readTimeout)
	assert.Equal(t, "SSSSSSSSSSSSSSSSSSSSSSS\rerst, soft, Config\r", port.written.String())
	assert.Equal(t, []time.Duration{2 * time.Second}, slept)
	assert.True(t, port.closed)
}

func TestRunSerialOpenError(t *testing.T) {
	errNotFound := errors.New("no such file or directory")
	stubOpenPort(t, nil, errNotFound)

	err := Run("USB", "/dev/ttyUSB9@9600", WithSleep(noSleep))

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, KindUSB, connErr.Kind)
	assert.Equal(t, "/dev/ttyUSB9@9600", connErr.Target)
	assert.ErrorIs(t, err, errNotFound)
}

func TestNewSerialReadTimeoutError(t *testing.T) {
	port := &fakePort{readTimeoutErr: errors.New("invalid timeout")}
	stubOpenPort(t, port, nil)

	_, err := NewSerial("/dev/ttyUSB0", 9600, DefaultTimeout)
	require.Error(t, err)
	assert.True(t, port.closed, "port must be closed when it cannot be configured")
}

func TestRunTCPDialTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(received)
			return
		}
		defer conn.Close()
		b, _ := io.ReadAll(conn)
		received <- b
	}()

	var (
		gotAddr    string
		gotTimeout time.Duration
	)
	orig := dialTimeout
	dialTimeout = func(network, address string, timeout time.Duration) (net.Conn, error) {
		gotAddr, gotTimeout = address, timeout
		return net.Dial(network, ln.Addr().String())
	}
	defer func() { dialTimeout = orig }()

	require.NoError(t, Run("IP", "127.0.0.1@5000", WithSleep(noSleep)))

	assert.Equal(t, "127.0.0.1:5000", gotAddr)
	assert.Equal(t, 100*time.Millisecond, gotTimeout)

	select {
	case b := <-received:
		assert.Equal(t, CmdMode+CmdReset, string(b))
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not receive the commands")
	}
}

func TestTCPClientString(t *testing.T) {
	c := &TCPClient{host: "fe80::1", port: "28784"}
	assert.Equal(t, "[fe80::1]:28784", c.String())
}

func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAll(&buf, []byte(CmdReset)))
	assert.Equal(t, CmdReset, buf.String())

	err := writeAll(stalledWriter{}, []byte(CmdMode))
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

type stalledWriter struct{}

func (stalledWriter) Write([]byte) (int, error) { return 0, nil }
