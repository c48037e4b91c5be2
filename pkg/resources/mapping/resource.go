package mapping

import (
	"context"
	"fmt"

	"github.com/diwise/resource-client/pkg/resources"
	"github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ResourceMapper converts whole resource instances to and from the wire by
// delegating each attribute to the mapping its field descriptor requested.
type ResourceMapper struct {
	descriptor types.ResourceDescriptor
	mappings   map[string]types.ValueMapper
}

func NewResourceMapper(descriptor types.ResourceDescriptor, factory types.MappingFactory) *ResourceMapper {
	rm := &ResourceMapper{
		descriptor: descriptor,
		mappings:   map[string]types.ValueMapper{},
	}

	descriptor.ForEachField(func(attributeName string, field types.Field) {
		rm.mappings[attributeName] = field.NewMapping(attributeName, factory)
	})

	return rm
}

func (rm *ResourceMapper) ExpectedResponseType() string {
	return rm.descriptor.Type()
}

// Pack writes all writable attributes of the item into the request sink.
// Absent attributes are skipped, packing never fails.
func (rm *ResourceMapper) Pack(item resources.Item, into types.RequestSink) {
	rm.descriptor.ForEachField(func(attributeName string, field types.Field) {
		value, ok := item[attributeName]
		if !ok {
			return
		}

		rm.mappings[attributeName].Pack(value, into)
	})
}

// Unpack consumes the response body and produces a resource instance.
// Responses that do not conform to the descriptor's shape fail with a bad
// response error that names the expected response type.
func (rm *ResourceMapper) Unpack(ctx context.Context, body types.ResponseBody) (resources.Item, error) {
	var err error

	ctx, span := tracer.Start(ctx, "unpack-resource",
		trace.WithAttributes(attribute.String(TraceAttributeResourceType, rm.descriptor.Type())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	contents := map[string]any{}

	err = body.DecodeJSON(ctx, &contents)
	if err != nil {
		err = errors.NewBadResponseError(
			fmt.Sprintf("failed to decode %s response: %s", rm.descriptor.Type(), err.Error()),
		)
		return nil, err
	}

	item := resources.Item{}

	rm.descriptor.ForEachField(func(attributeName string, field types.Field) {
		if err != nil {
			return
		}

		// write only attributes never come back in a response
		if !field.IsReadable() {
			return
		}

		raw, ok := contents[attributeName]
		if !ok {
			if field.IsOptional() {
				return
			}

			err = errors.NewBadResponseError(
				fmt.Sprintf("attribute %s missing from %s response", attributeName, rm.descriptor.Type()),
			)
			return
		}

		value, convErr := rm.mappings[attributeName].UnpackValue(raw)
		if convErr != nil {
			err = errors.NewBadResponseError(
				fmt.Sprintf("%s (expected %s)", convErr.Error(), rm.descriptor.Type()),
			)
			return
		}

		item[attributeName] = value
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}
