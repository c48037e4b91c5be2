package datamodels

import (
	"github.com/diwise/resource-client/pkg/resources/checks"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/resource-client/pkg/resources/types/descriptors"
	"github.com/diwise/resource-client/pkg/resources/types/fields"
)

// NewMeasurement creates a descriptor for a single observed value
func NewMeasurement(decorators ...descriptors.ResourceDecoratorFunc) (types.ResourceDescriptor, error) {
	d := []descriptors.ResourceDecoratorFunc{
		descriptors.F("id", fields.NewKeyField().AsKey()),
		descriptors.F("value", fields.NewNumberField()),
		descriptors.F("unitCode", fields.NewTextField().Optional()),
		descriptors.F("observedAt", fields.NewDateTimeField()),
		descriptors.F("quality", fields.NewNumberField().WithChecks(checks.New(checks.Minimum(0), checks.Maximum(1))).Optional()),
	}
	d = append(d, decorators...)

	return descriptors.New(MeasurementTypeName, d...)
}
