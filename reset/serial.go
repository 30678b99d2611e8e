package reset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

var openPort = serial.Open

// SerialDefaultPortName returns the default serial port name if a detection is possible and an error otherwise.
func SerialDefaultPortName() (string, error) {
	portNames, err := serial.GetPortsList()
	if err != nil {
		return "", err
	}

	for _, name := range portNames {
		if strings.HasPrefix(name, defaultSerialPortPath) {
			return name, nil
		}
	}
	return "", errors.New("default port could not be detected")
}

// Serial provides a serial connection to the receiver.
type Serial struct {
	portName string
	port     serial.Port
}

// NewSerial opens the serial port portName with 8N1 framing at baudRate.
func NewSerial(portName string, baudRate int, readTimeout time.Duration) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := openPort(portName, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}
	glog.V(1).Infof("serial %s opened at %d baud", portName, baudRate)
	return &Serial{portName: portName, port: port}, nil
}

func (s *Serial) String() string { return s.portName }

// Write implements the io.Writer interface.
func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}

// Close closes the serial port.
func (s *Serial) Close() error {
	return s.port.Close()
}
