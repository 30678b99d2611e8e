package reset

const defaultSerialPortPath = "/dev/cu.usbmodem"
