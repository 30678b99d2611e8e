// Package reset provides a soft reset client for receivers driven by an ASCII command interface
// over a serial (USB) or TCP/IP channel.
package reset

import (
	"errors"
	"time"

	"github.com/golang/glog"
)

// Receiver commands.
const (
	CmdMode  = "SSSSSSSSSSSSSSSSSSSSSSS\r" // switches the receiver into command mode
	CmdReset = "erst, soft, Config\r"      // soft reset of the receiver configuration
)

var cmdNames = map[string]string{CmdMode: "mode", CmdReset: "reset"}

func cmdName(cmd string) string {
	if name, ok := cmdNames[cmd]; ok {
		return name
	}
	return "unknown"
}

// Reset states.
const (
	StateStart State = iota
	StateChannelOpened
	StateModeSent
	StateResetSent
	StateDone
)

var stateTexts = []string{"Start", "ChannelOpened", "ModeSent", "ResetSent", "Done"}

// State represents the progress of a reset run.
type State byte

func (s State) String() string {
	if int(s) >= len(stateTexts) {
		return "Unknown"
	}
	return stateTexts[s]
}

type options struct {
	delay time.Duration
	sleep func(time.Duration)
	open  Opener
}

// An Option configures a Resetter or a run.
type Option func(*options)

// WithDelay sets the pause between the mode and the reset command.
func WithDelay(d time.Duration) Option { return func(o *options) { o.delay = d } }

// WithSleep replaces time.Sleep for the pause between the commands.
func WithSleep(sleep func(time.Duration)) Option { return func(o *options) { o.sleep = sleep } }

// WithOpener replaces Open as the channel factory of Run and RunConfig.
func WithOpener(open Opener) Option { return func(o *options) { o.open = open } }

func newOptions(opts []Option) *options {
	o := &options{delay: DefaultDelay, sleep: time.Sleep, open: Open}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Resetter sends the reset sequence over an open connection.
type Resetter struct {
	conn  Conn
	delay time.Duration
	sleep func(time.Duration)
	state State
}

// New returns a resetter writing to conn. The connection is owned by the caller.
func New(conn Conn, opts ...Option) *Resetter {
	o := newOptions(opts)
	return &Resetter{conn: conn, delay: o.delay, sleep: o.sleep, state: StateChannelOpened}
}

// State returns the last state reached.
func (r *Resetter) State() State { return r.state }

func (r *Resetter) write(cmd string) error {
	glog.V(2).Infof("write %s command %q", cmdName(cmd), cmd)
	if err := writeAll(r.conn, []byte(cmd)); err != nil {
		return &WriteError{Cmd: cmd, Err: err}
	}
	return nil
}

// Reset writes the mode command, waits for the configured delay and writes the reset command.
// Any error is terminal; nothing is retried.
func (r *Resetter) Reset() error {
	if err := r.write(CmdMode); err != nil {
		return err
	}
	r.state = StateModeSent

	glog.V(1).Infof("mode command sent - waiting %s", r.delay)
	r.sleep(r.delay)

	if err := r.write(CmdReset); err != nil {
		return err
	}
	r.state = StateResetSent
	glog.V(1).Info("reset command sent")
	return nil
}

// Run parses the transport kind and address, opens the channel and resets the receiver.
func Run(kind, addr string, opts ...Option) error {
	cfg, err := ParseConfig(kind, addr)
	if err != nil {
		return err
	}
	return RunConfig(cfg, opts...)
}

// RunConfig opens the channel described by cfg, resets the receiver and closes the channel.
// The delay of cfg is used unless overridden by WithDelay.
func RunConfig(cfg *Config, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	o := newOptions(append([]Option{WithDelay(cfg.Delay)}, opts...))

	conn, err := o.open(cfg)
	if err != nil {
		var connErr *ConnectionError
		var parseErr *ParseError
		if errors.As(err, &connErr) || errors.As(err, &parseErr) {
			return err
		}
		return &ConnectionError{Kind: cfg.Kind, Target: cfg.Address.String(), Err: err}
	}
	defer func() {
		if err := conn.Close(); err != nil {
			glog.Warningf("close %s channel %s: %s", cfg.Kind, cfg.Address, err)
		}
	}()

	r := &Resetter{conn: conn, delay: o.delay, sleep: o.sleep, state: StateChannelOpened}
	if err := r.Reset(); err != nil {
		glog.V(1).Infof("%s channel %s: stopped after %s", cfg.Kind, cfg.Address, r.state)
		return err
	}
	r.state = StateDone
	glog.V(1).Infof("%s channel %s: %s", cfg.Kind, cfg.Address, r.state)
	return nil
}
