package datamodels

const (
	DeviceTypeName      string = "Device"
	MeasurementTypeName string = "Measurement"
)
