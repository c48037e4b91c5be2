package datamodels

import (
	"github.com/diwise/resource-client/pkg/resources/checks"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/resource-client/pkg/resources/types/descriptors"
	"github.com/diwise/resource-client/pkg/resources/types/fields"
)

// NewDevice creates a descriptor for a connected device resource
func NewDevice(decorators ...descriptors.ResourceDecoratorFunc) (types.ResourceDescriptor, error) {
	d := []descriptors.ResourceDecoratorFunc{
		descriptors.F("id", fields.NewUUIDKeyField().AsKey()),
		descriptors.F("name", fields.NewTextField().WithChecks(checks.New(checks.NotEmpty(), checks.MaxLength(128)))),
		descriptors.F("online", fields.NewBooleanField()),
		descriptors.F("tags", fields.NewTextListField().Optional()),
		descriptors.F("lastObserved", fields.NewDateTimeField().ReadOnly().Optional()),
	}
	d = append(d, decorators...)

	return descriptors.New(DeviceTypeName, d...)
}
