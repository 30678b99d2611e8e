package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pico-cs/go-reset/reset"
	"github.com/pico-cs/go-reset/reset/ports"
)

var (
	listPorts       = ports.List
	defaultPortName = reset.SerialDefaultPortName
)

func newPortsCmd() *cobra.Command {
	var usbOnly bool

	cmd := &cobra.Command{
		Use:   "ports",
		Short: "List serial ports usable as --main_config location",
		Long: `List the serial ports of this system sorted by name.

The default port, if one can be detected, is marked with '*'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := listPorts(usbOnly)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(w, "no serial ports found")
				return nil
			}

			def := -1
			if name, err := defaultPortName(); err == nil {
				def = ports.Index(list, name)
			}
			for i, p := range list {
				marker := " "
				if i == def {
					marker = okFmt("*")
				}
				fmt.Fprintf(w, "%s %s\n", marker, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&usbOnly, "usb", false, "list USB ports only")
	return cmd
}
