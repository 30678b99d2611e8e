package reset

const defaultSerialPortPath = "/dev/ttyACM"
