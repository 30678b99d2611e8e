package reset

import (
	"io"
	"strconv"
)

// Conn is a stream oriented connection to the receiver.
type Conn interface {
	io.WriteCloser
}

// Opener opens the connection described by a configuration.
type Opener func(cfg *Config) (Conn, error)

// Open opens a serial port for KindUSB and a TCP connection for KindIP.
func Open(cfg *Config) (Conn, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		conn Conn
		err  error
	)
	switch cfg.Kind {
	case KindUSB:
		conn, err = NewSerial(cfg.Address.Location, int(cfg.Address.Number), cfg.Timeout)
	case KindIP:
		conn, err = NewTCPClient(cfg.Address.Location, strconv.FormatUint(uint64(cfg.Address.Number), 10), cfg.Timeout)
	}
	if err != nil {
		return nil, &ConnectionError{Kind: cfg.Kind, Target: cfg.Address.String(), Err: err}
	}
	return conn, nil
}

// writeAll writes p completely or returns the first error.
func writeAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
