package reset

const defaultSerialPortPath = "COM"
