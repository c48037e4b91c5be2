package fields

import (
	"time"

	"github.com/diwise/resource-client/pkg/resources/checks"
	"github.com/diwise/resource-client/pkg/resources/types"
)

// DateTimeField stores date and time values (surprise, surprise ...)
type DateTimeField struct {
	baseField[time.Time]
}

func NewDateTimeField() DateTimeField {
	return DateTimeField{}
}

func (f DateTimeField) WithBlankValue(value time.Time) DateTimeField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f DateTimeField) ReadOnly() DateTimeField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f DateTimeField) WriteOnly() DateTimeField {
	f.opts = f.opts.withAccess(WriteOnly, "WriteOnly")
	return f
}

func (f DateTimeField) Optional() DateTimeField {
	f.opts = f.opts.withOptional()
	return f
}

func (f DateTimeField) Nullable() DateTimeField {
	f.opts = f.opts.withNullable()
	return f
}

func (f DateTimeField) WithChecks(c checks.Checks[time.Time]) DateTimeField {
	f.opts = f.opts.withChecks(c)
	return f
}

func (f DateTimeField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.DateTimeMapping(attributeName, f)
}
