package collections

import (
	"context"
	"fmt"

	"github.com/diwise/resource-client/pkg/resources"
	"github.com/diwise/resource-client/pkg/resources/config"
	"github.com/diwise/resource-client/pkg/resources/interpreters"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TraceAttributeResourceType string = "resource-type"

var tracer = otel.Tracer("resource-client/collections")

// Manager wraps a resource descriptor's interpreter and owns the key
// metadata cache for its lifetime. The key is resolved once, at
// construction, and never again.
type Manager struct {
	descriptor types.ResourceDescriptor
	cfg        config.Config

	keyName string
	keyKind types.KeyKind
}

func WithConfig(cfg config.Config) func(*Manager) {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

func NewManager(descriptor types.ResourceDescriptor, options ...func(*Manager)) (*Manager, error) {
	m := &Manager{
		descriptor: descriptor,
		cfg:        config.Global(),
	}

	for _, option := range options {
		option(m)
	}

	key, err := interpreters.ResolveKey(descriptor, m.cfg.KeyNameConventions()...)
	if err != nil {
		return nil, err
	}

	m.keyName = key.Name
	m.keyKind = key.Kind

	return m, nil
}

func (m *Manager) KeyName() string {
	return m.keyName
}

func (m *Manager) KeyKind() types.KeyKind {
	return m.keyKind
}

func (m *Manager) CreateInstance() (resources.Item, error) {
	return interpreters.NewInstance(m.descriptor)
}

// IsNew reports whether the item has not been saved yet, i.e. its key still
// holds the unset sentinel.
func (m *Manager) IsNew(item resources.Item) bool {
	return item[m.keyName] == nil
}

func (m *Manager) KeyOf(item resources.Item) any {
	return item[m.keyName]
}

func (m *Manager) SetKeyOf(item resources.Item, value any) {
	item[m.keyName] = value
}

// CreateOrUpdateOne validates the item and passes it through. No identity
// deduplication takes place at this layer; callers that need collection
// level consistency have to provide it themselves.
func (m *Manager) CreateOrUpdateOne(ctx context.Context, item resources.Item) (*resources.CreateOrUpdateResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-or-update-one",
		trace.WithAttributes(attribute.String(TraceAttributeResourceType, m.descriptor.Type())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = m.validate(item)
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)
	log.Debug(fmt.Sprintf("passing through %s instance without collection bookkeeping", m.descriptor.Type()))

	return resources.NewCreateOrUpdateResult(item), nil
}

// UpdateAll validates and passes through all items. No deletion tracking
// takes place at this layer.
func (m *Manager) UpdateAll(ctx context.Context, items []resources.Item) (*resources.UpdateAllResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "update-all",
		trace.WithAttributes(attribute.String(TraceAttributeResourceType, m.descriptor.Type())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	for _, item := range items {
		err = m.validate(item)
		if err != nil {
			return nil, err
		}
	}

	log := logging.GetFromContext(ctx)
	log.Debug(fmt.Sprintf("passing through %d %s instances without collection bookkeeping", len(items), m.descriptor.Type()))

	return resources.NewUpdateAllResult(items), nil
}

func (m *Manager) validate(item resources.Item) error {
	var err error

	m.descriptor.ForEachField(func(attributeName string, field types.Field) {
		if err != nil {
			return
		}

		value, ok := item[attributeName]
		if !ok {
			value = types.Absent
		}

		result := field.Validate(value)
		if !result.OK() {
			err = fmt.Errorf("attribute %s: %w", attributeName, result.Err())
		}
	})

	return err
}
