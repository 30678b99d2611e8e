//go:build !linux && !darwin && !windows

package reset

const defaultSerialPortPath = "/dev/tty"
