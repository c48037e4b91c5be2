package mapping

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	TraceAttributeAttributeName string = "attribute-name"
	TraceAttributeResourceType  string = "resource-type"
)

var tracer = otel.Tracer("resource-client/mapping")

// Factory produces value mappers for field descriptors. Fields ask for a
// generic mapping by default and override NewMapping to request one of the
// specialized variants.
type Factory struct{}

func NewFactory() Factory {
	return Factory{}
}

func (Factory) GenericMapping(attributeName string, field types.Field) types.ValueMapper {
	return &valueMapping{
		name:                 attributeName,
		field:                field,
		expectedResponseType: "json value",
		packValue:            func(value any) any { return value },
		unpackValue:          func(raw any) (any, error) { return raw, nil },
	}
}

func (Factory) DateTimeMapping(attributeName string, field types.Field) types.ValueMapper {
	return &valueMapping{
		name:                 attributeName,
		field:                field,
		expectedResponseType: "RFC 3339 timestamp",
		packValue: func(value any) any {
			if ts, ok := value.(time.Time); ok {
				return ts.UTC().Format(time.RFC3339)
			}
			return value
		},
		unpackValue: func(raw any) (any, error) {
			str, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("timestamp value of type %T is not supported", raw)
			}

			ts, err := time.Parse(time.RFC3339, str)
			if err != nil {
				return nil, fmt.Errorf("failed to parse timestamp: %s", err.Error())
			}

			return ts, nil
		},
	}
}

func (Factory) KeyMapping(attributeName string, field types.Field) types.ValueMapper {
	m := &valueMapping{
		name:  attributeName,
		field: field,
	}

	if field.KeyKind() == types.KeyKindUUID {
		m.expectedResponseType = "uuid key"
		m.packValue = func(value any) any { return value }
		m.unpackValue = func(raw any) (any, error) {
			str, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("uuid key value of type %T is not supported", raw)
			}
			if _, err := uuid.Parse(str); err != nil {
				return nil, fmt.Errorf("key is not a valid uuid: %s", err.Error())
			}
			return str, nil
		}
		return m
	}

	m.expectedResponseType = "integer key"
	m.packValue = func(value any) any { return value }
	m.unpackValue = func(raw any) (any, error) {
		switch key := raw.(type) {
		case float64:
			// encoding/json decodes all numbers to float64
			return int64(key), nil
		case int64:
			return key, nil
		case int:
			return int64(key), nil
		default:
			return nil, fmt.Errorf("integer key value of type %T is not supported", raw)
		}
	}

	return m
}

type valueMapping struct {
	name                 string
	field                types.Field
	expectedResponseType string

	packValue   func(value any) any
	unpackValue func(raw any) (any, error)
}

func (m *valueMapping) ExpectedResponseType() string {
	return m.expectedResponseType
}

func (m *valueMapping) PackValue(value any) any {
	if value == nil {
		return nil
	}

	return m.packValue(value)
}

func (m *valueMapping) UnpackValue(raw any) (any, error) {
	if raw == nil {
		if m.field.IsNullable() {
			return nil, nil
		}
		return nil, fmt.Errorf("attribute %s must not be null", m.name)
	}

	return m.unpackValue(raw)
}

func (m *valueMapping) Pack(value any, into types.RequestSink) {
	if value == types.Absent || !m.field.IsWritable() {
		return
	}

	into.SetBodyValue(m.name, m.PackValue(value))
}

func (m *valueMapping) Unpack(ctx context.Context, body types.ResponseBody) (any, error) {
	var err error

	ctx, span := tracer.Start(ctx, "unpack-value",
		trace.WithAttributes(attribute.String(TraceAttributeAttributeName, m.name)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	contents := map[string]any{}

	err = body.DecodeJSON(ctx, &contents)
	if err != nil {
		err = errors.NewBadResponseError(
			fmt.Sprintf("failed to decode response (expected %s): %s", m.expectedResponseType, err.Error()),
		)
		return nil, err
	}

	raw, ok := contents[m.name]
	if !ok {
		if m.field.IsOptional() {
			return types.Absent, nil
		}

		err = errors.NewBadResponseError(
			fmt.Sprintf("attribute %s missing from response (expected %s)", m.name, m.expectedResponseType),
		)
		return nil, err
	}

	value, convErr := m.UnpackValue(raw)
	if convErr != nil {
		err = errors.NewBadResponseError(
			fmt.Sprintf("%s (expected %s)", convErr.Error(), m.expectedResponseType),
		)
		return nil, err
	}

	return value, nil
}
