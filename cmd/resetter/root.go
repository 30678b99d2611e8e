package main

import (
	"flag"
	"time"

	"github.com/spf13/cobra"

	"github.com/pico-cs/go-reset/reset"
)

const (
	flagMainComm   = "main_comm"
	flagMainConfig = "main_config"
)

func newRootCmd() *cobra.Command {
	var (
		mainComm, mainConfig string
		delay, timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "resetter",
		Short: "Soft reset a receiver over USB or IP",
		Long: `resetter switches a receiver into command mode and issues a soft reset
of its configuration over a serial (USB) or TCP/IP channel.

The mode command is sent first, followed by the reset command after --delay.`,
		Example: `  resetter --main_comm USB --main_config /dev/ttyACM0@115200
  resetter --main_comm IP --main_config 192.168.1.10@28784`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := reset.ParseConfig(mainComm, mainConfig)
			if err != nil {
				return err
			}
			cfg.Delay, cfg.Timeout = delay, timeout
			return reset.RunConfig(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&mainComm, flagMainComm, "", "main_comm: USB or IP")
	f.StringVar(&mainConfig, flagMainConfig, "", "if main USB: port@baudrate / if main IP: address@port")
	f.DurationVar(&delay, "delay", reset.DefaultDelay, "pause between the mode and the reset command")
	f.DurationVar(&timeout, "timeout", reset.DefaultTimeout, "serial read timeout and TCP connect timeout")
	cmd.MarkFlagRequired(flagMainComm)
	cmd.MarkFlagRequired(flagMainConfig)

	cmd.RegisterFlagCompletionFunc(flagMainComm, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		kinds := reset.Kinds()
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, k.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	// glog flags (-v, -vmodule, -logtostderr, ...)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newPortsCmd(), newVersionCmd())
	return cmd
}
