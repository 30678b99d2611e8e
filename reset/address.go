package reset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Transport kinds.
const (
	KindUnknown Kind = iota
	KindUSB
	KindIP
)

var kindTexts = []string{"Unknown", "USB", "IP"}

var kindValues = map[string]Kind{"USB": KindUSB, "IP": KindIP}

// Kind represents the transport used to reach the receiver.
type Kind byte

func (k Kind) String() string {
	if int(k) >= len(kindTexts) {
		return kindTexts[KindUnknown]
	}
	return kindTexts[k]
}

// Kinds returns the supported transport kinds.
func Kinds() []Kind { return []Kind{KindUSB, KindIP} }

// ParseKind parses the command line spelling of a transport kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindValues[s]
	if !ok {
		return KindUnknown, &ParseError{Field: FieldKind, Value: s, Err: ErrUnknownKind}
	}
	return k, nil
}

const addrSep = "@"

// Address is a location and a number separated by '@'.
// For USB the location is the device path and the number the baud rate,
// for IP the location is the host and the number the TCP port.
type Address struct {
	Location string
	Number   uint
}

func (a *Address) String() string {
	return a.Location + addrSep + strconv.FormatUint(uint64(a.Number), 10)
}

func parseUint(s string) (uint, error) {
	u64, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(u64), nil
}

// ParseAddress parses an address of the form location@number.
func ParseAddress(s string) (*Address, error) {
	parts := strings.Split(s, addrSep)
	if len(parts) != 2 {
		return nil, &ParseError{
			Field: FieldAddress,
			Value: s,
			Err:   fmt.Errorf("%w - invalid number of '%s' separators %d - expected 1", ErrInvalidAddress, addrSep, len(parts)-1),
		}
	}
	if parts[0] == "" {
		return nil, &ParseError{Field: FieldAddress, Value: s, Err: fmt.Errorf("%w - empty location", ErrInvalidAddress)}
	}
	n, err := parseUint(parts[1])
	if err != nil {
		return nil, &ParseError{Field: FieldAddress, Value: s, Err: fmt.Errorf("%w - %w", ErrInvalidAddress, err)}
	}
	return &Address{Location: parts[0], Number: n}, nil
}

// Default timing values.
const (
	DefaultDelay   = 2 * time.Second        // pause between the mode and the reset command
	DefaultTimeout = 100 * time.Millisecond // serial read timeout and TCP connect timeout
)

const maxTCPPort = 65535

// Config describes the channel to the receiver and the reset timing.
type Config struct {
	Kind    Kind
	Address *Address
	Delay   time.Duration
	Timeout time.Duration
}

// ParseConfig parses the transport kind and address and returns a validated
// configuration with default timing values.
func ParseConfig(kind, addr string) (*Config, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	a, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Kind: k, Address: a, Delay: DefaultDelay, Timeout: DefaultTimeout}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for every supported kind.
func (c *Config) Validate() error {
	if !slices.Contains(Kinds(), c.Kind) {
		return &ParseError{Field: FieldKind, Value: c.Kind.String(), Err: ErrUnknownKind}
	}
	if c.Address == nil || c.Address.Location == "" {
		return &ParseError{Field: FieldAddress, Value: "", Err: fmt.Errorf("%w - empty location", ErrInvalidAddress)}
	}

	switch c.Kind {
	case KindUSB:
		if c.Address.Number == 0 {
			return &ParseError{Field: FieldAddress, Value: c.Address.String(), Err: fmt.Errorf("%w - baud rate must be greater than 0", ErrInvalidAddress)}
		}
	case KindIP:
		if c.Address.Number == 0 || c.Address.Number > maxTCPPort {
			return &ParseError{Field: FieldAddress, Value: c.Address.String(), Err: fmt.Errorf("%w - port %d out of range 1-%d", ErrInvalidAddress, c.Address.Number, maxTCPPort)}
		}
	}

	if c.Delay < 0 {
		return &ParseError{Field: FieldDelay, Value: c.Delay.String(), Err: fmt.Errorf("%w - negative delay", ErrInvalidTiming)}
	}
	if c.Timeout < 0 {
		return &ParseError{Field: FieldTimeout, Value: c.Timeout.String(), Err: fmt.Errorf("%w - negative timeout", ErrInvalidTiming)}
	}
	return nil
}
