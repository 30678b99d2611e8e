// Command resetter switches a receiver into command mode and soft resets its configuration.
//
//	resetter --main_comm USB --main_config /dev/ttyACM0@115200
//	resetter --main_comm IP --main_config 192.168.1.10@28784
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func init() {
	// glog logs to files in the temp directory by default.
	flag.Set("logtostderr", "true")
}

func main() {
	cmd := newRootCmd()
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
