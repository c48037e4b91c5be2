package fields

import (
	"github.com/diwise/resource-client/pkg/resources/checks"
	"github.com/diwise/resource-client/pkg/resources/types"
)

// KeyField holds an integer resource identity. Keys are nullable from the
// start, since a null key is the conventional sentinel for an unsaved
// instance, and their blank value is null rather than zero.
type KeyField struct {
	baseField[int64]
}

func NewKeyField() KeyField {
	f := KeyField{}
	f.kind = types.KeyKindInteger
	f.opts.nullable = true
	return f
}

func (f KeyField) BlankValue() any {
	if f.opts.blank != nil {
		return *f.opts.blank
	}

	return nil
}

func (f KeyField) WithBlankValue(value int64) KeyField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f KeyField) ReadOnly() KeyField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f KeyField) AsKey() KeyField {
	f.opts = f.opts.withKey()
	return f
}

func (f KeyField) Optional() KeyField {
	f.opts = f.opts.withOptional()
	return f
}

func (f KeyField) WithChecks(c checks.Checks[int64]) KeyField {
	f.opts = f.opts.withChecks(c)
	return f
}

func (f KeyField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.KeyMapping(attributeName, f)
}

// UUIDKeyField holds a string resource identity in uuid format.
type UUIDKeyField struct {
	baseField[string]
}

func NewUUIDKeyField() UUIDKeyField {
	f := UUIDKeyField{}
	f.kind = types.KeyKindUUID
	f.opts.nullable = true
	f.opts.check = checks.New(checks.ValidUUID())
	return f
}

func (f UUIDKeyField) BlankValue() any {
	if f.opts.blank != nil {
		return *f.opts.blank
	}

	return nil
}

func (f UUIDKeyField) WithBlankValue(value string) UUIDKeyField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f UUIDKeyField) ReadOnly() UUIDKeyField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f UUIDKeyField) AsKey() UUIDKeyField {
	f.opts = f.opts.withKey()
	return f
}

func (f UUIDKeyField) Optional() UUIDKeyField {
	f.opts = f.opts.withOptional()
	return f
}

func (f UUIDKeyField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.KeyMapping(attributeName, f)
}
