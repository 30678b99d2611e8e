// Package ports contains serial port discovery types and functions.
package ports

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
	"golang.org/x/exp/slices"
)

var detailedPortsList = enumerator.GetDetailedPortsList

// Port holds the details of a serial port.
type Port struct {
	Name         string
	IsUSB        bool
	VID, PID     string
	SerialNumber string
	Product      string
}

func (p *Port) String() string {
	if !p.IsUSB {
		return p.Name
	}
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%s usb %s:%s", p.Name, p.VID, p.PID))
	if p.SerialNumber != "" {
		b.WriteString(fmt.Sprintf(" serial %s", p.SerialNumber))
	}
	if p.Product != "" {
		b.WriteString(fmt.Sprintf(" %q", p.Product))
	}
	return b.String()
}

// List returns the serial ports of the system sorted by name.
// If usbOnly is set, ports not attached over USB are skipped.
func List(usbOnly bool) ([]*Port, error) {
	details, err := detailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}

	ports := make([]*Port, 0, len(details))
	for _, d := range details {
		if usbOnly && !d.IsUSB {
			continue
		}
		ports = append(ports, &Port{
			Name:         d.Name,
			IsUSB:        d.IsUSB,
			VID:          d.VID,
			PID:          d.PID,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
		})
	}
	slices.SortFunc(ports, func(a, b *Port) bool { return a.Name < b.Name })
	return ports, nil
}

// Index returns the index of the port called name, or -1 if it is not listed.
func Index(ports []*Port, name string) int {
	return slices.IndexFunc(ports, func(p *Port) bool { return p.Name == name })
}
