package descriptors

import (
	"fmt"

	"github.com/diwise/resource-client/pkg/resources/types"
)

type ResourceDecoratorFunc func(d *DescriptorImpl)

// New creates a resource descriptor from the supplied field decorators.
// Declaration order is preserved, which matters when key resolution has to
// break ties between equally likely candidates.
func New(resourceType string, decorators ...ResourceDecoratorFunc) (types.ResourceDescriptor, error) {
	if resourceType == "" {
		return nil, fmt.Errorf("a resource descriptor must have a type name")
	}

	d := &DescriptorImpl{
		resourceType: resourceType,
		fields:       map[string]types.Field{},
	}

	for _, decorator := range decorators {
		decorator(d)
	}

	if len(d.order) == 0 {
		return nil, fmt.Errorf("at least one field must be declared for resource type %s", resourceType)
	}

	return d, nil
}

// F declares a named field. Redeclaring a name replaces the field but keeps
// its original position.
func F(name string, field types.Field) ResourceDecoratorFunc {
	return func(d *DescriptorImpl) {
		if _, exists := d.fields[name]; !exists {
			d.order = append(d.order, name)
		}
		d.fields[name] = field
	}
}

type DescriptorImpl struct {
	resourceType string

	order  []string
	fields map[string]types.Field
}

func (d DescriptorImpl) Type() string {
	return d.resourceType
}

func (d DescriptorImpl) Field(attributeName string) (types.Field, bool) {
	f, ok := d.fields[attributeName]
	return f, ok
}

func (d DescriptorImpl) ForEachField(callback func(attributeName string, field types.Field)) error {
	for _, name := range d.order {
		callback(name, d.fields[name])
	}

	return nil
}
