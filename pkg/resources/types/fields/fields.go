package fields

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/resource-client/pkg/resources/checks"
	"github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// AccessMode captures who may touch a field's value. Using a single tagged
// value makes a field that is neither readable nor writable unrepresentable.
type AccessMode int

const (
	ReadWrite AccessMode = iota
	ReadOnly
	WriteOnly
)

// options is the immutable configuration of a field descriptor. Builder
// operations copy the struct by value and change exactly one option, so a
// prior descriptor is never mutated.
type options[T any] struct {
	blank    *T
	access   AccessMode
	nullable bool
	optional bool
	key      bool
	check    checks.Checks[T]
}

func (o options[T]) withBlank(value T) options[T] {
	o.blank = &value
	return o
}

func (o options[T]) withAccess(mode AccessMode, operation string) options[T] {
	if o.access == mode {
		warnRedundant(operation, "field already has the requested access mode")
	}
	o.access = mode
	return o
}

func (o options[T]) withKey() options[T] {
	if o.key {
		warnRedundant("AsKey", "field is already marked as key")
	}
	o.key = true
	return o
}

func (o options[T]) withOptional() options[T] {
	if o.optional {
		warnRedundant("Optional", "field is already optional")
	}
	o.optional = true
	return o
}

func (o options[T]) withNullable() options[T] {
	if o.nullable {
		warnRedundant("Nullable", "field is already nullable")
	}
	o.nullable = true
	return o
}

func (o options[T]) withChecks(c checks.Checks[T]) options[T] {
	o.check = c
	return o
}

// redundant builder calls are a usability problem, not a correctness
// problem, so they warn and proceed
func warnRedundant(operation, detail string) {
	log := logging.GetFromContext(context.Background())
	log.Warn(fmt.Sprintf("redundant call to %s: %s", operation, detail))
}

type baseField[T any] struct {
	kind types.KeyKind
	opts options[T]
}

func (f baseField[T]) BlankValue() any {
	if f.opts.blank != nil {
		return *f.opts.blank
	}

	var zero T
	return zero
}

func (f baseField[T]) IsReadable() bool {
	return f.opts.access != WriteOnly
}

func (f baseField[T]) IsWritable() bool {
	return f.opts.access != ReadOnly
}

func (f baseField[T]) IsNullable() bool {
	return f.opts.nullable
}

func (f baseField[T]) IsOptional() bool {
	return f.opts.optional
}

func (f baseField[T]) KeyKind() types.KeyKind {
	return f.kind
}

func (f baseField[T]) IsKey(hints types.FieldRoleHints) types.Likelihood {
	if f.opts.key {
		return types.ExplicitLikelihood()
	}

	// a value that can never be read back can not serve as an identity
	if f.opts.access == WriteOnly {
		return types.NoLikelihood()
	}

	// fields without a key representation stay in the running with the
	// lowest possible confidence, so that any resource resolves a key
	if f.kind == types.KeyKindNone {
		return types.ImplicitLikelihood(0)
	}

	return types.ImplicitLikelihood(scoreKeyCandidate(hints))
}

func (f baseField[T]) Validate(value any) types.ValidationResult {
	if value == types.Absent {
		if f.opts.optional {
			return types.ValidationOK()
		}
		return types.ValidationFailure(errors.NewRequiredValueMissingError("required value missing"))
	}

	if value == nil {
		if f.opts.nullable {
			return types.ValidationOK()
		}
		return types.ValidationFailure(errors.NewNullNotAllowedError("null value not allowed"))
	}

	v, ok := value.(T)
	if !ok {
		return types.ValidationFailure(errors.NewValidationError(fmt.Sprintf("unexpected value of type %T", value)))
	}

	if err := f.opts.check.Validate(v); err != nil {
		return types.ValidationFailure(errors.NewValidationError(err.Error()))
	}

	return types.ValidationOK()
}

func scoreKeyCandidate(hints types.FieldRoleHints) int {
	name := strings.ToLower(hints.Name)

	score := 1

	switch {
	case name == "id" || name == "uuid" || name == "guid":
		score = 10
	case name == "key" || strings.HasSuffix(name, "id"):
		score = 5
	}

	for _, convention := range hints.KeyNames {
		if name == strings.ToLower(convention) && score < 8 {
			score = 8
		}
	}

	if hints.Position == 0 && score > 1 {
		score++
	}

	return score
}

// TextField holds a string value
type TextField struct {
	baseField[string]
}

func NewTextField() TextField {
	return TextField{}
}

func (f TextField) WithBlankValue(value string) TextField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f TextField) ReadOnly() TextField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f TextField) WriteOnly() TextField {
	f.opts = f.opts.withAccess(WriteOnly, "WriteOnly")
	return f
}

func (f TextField) AsKey() TextField {
	f.opts = f.opts.withKey()
	return f
}

func (f TextField) Optional() TextField {
	f.opts = f.opts.withOptional()
	return f
}

func (f TextField) Nullable() TextField {
	f.opts = f.opts.withNullable()
	return f
}

func (f TextField) WithChecks(c checks.Checks[string]) TextField {
	f.opts = f.opts.withChecks(c)
	return f
}

func (f TextField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.GenericMapping(attributeName, f)
}

// NumberField holds a float64 value
type NumberField struct {
	baseField[float64]
}

func NewNumberField() NumberField {
	return NumberField{}
}

func (f NumberField) WithBlankValue(value float64) NumberField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f NumberField) ReadOnly() NumberField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f NumberField) WriteOnly() NumberField {
	f.opts = f.opts.withAccess(WriteOnly, "WriteOnly")
	return f
}

func (f NumberField) AsKey() NumberField {
	f.opts = f.opts.withKey()
	return f
}

func (f NumberField) Optional() NumberField {
	f.opts = f.opts.withOptional()
	return f
}

func (f NumberField) Nullable() NumberField {
	f.opts = f.opts.withNullable()
	return f
}

func (f NumberField) WithChecks(c checks.Checks[float64]) NumberField {
	f.opts = f.opts.withChecks(c)
	return f
}

func (f NumberField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.GenericMapping(attributeName, f)
}

// BooleanField holds a bool value
type BooleanField struct {
	baseField[bool]
}

func NewBooleanField() BooleanField {
	return BooleanField{}
}

func (f BooleanField) WithBlankValue(value bool) BooleanField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f BooleanField) ReadOnly() BooleanField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f BooleanField) WriteOnly() BooleanField {
	f.opts = f.opts.withAccess(WriteOnly, "WriteOnly")
	return f
}

func (f BooleanField) AsKey() BooleanField {
	f.opts = f.opts.withKey()
	return f
}

func (f BooleanField) Optional() BooleanField {
	f.opts = f.opts.withOptional()
	return f
}

func (f BooleanField) Nullable() BooleanField {
	f.opts = f.opts.withNullable()
	return f
}

func (f BooleanField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.GenericMapping(attributeName, f)
}

// TextListField holds a list of strings
type TextListField struct {
	baseField[[]string]
}

func NewTextListField() TextListField {
	return TextListField{}
}

func (f TextListField) BlankValue() any {
	if f.opts.blank != nil {
		return *f.opts.blank
	}

	// nil slices serialize to null, which callers should not have to
	// guard against in a blank instance
	return []string{}
}

func (f TextListField) WithBlankValue(value []string) TextListField {
	f.opts = f.opts.withBlank(value)
	return f
}

func (f TextListField) ReadOnly() TextListField {
	f.opts = f.opts.withAccess(ReadOnly, "ReadOnly")
	return f
}

func (f TextListField) WriteOnly() TextListField {
	f.opts = f.opts.withAccess(WriteOnly, "WriteOnly")
	return f
}

func (f TextListField) Optional() TextListField {
	f.opts = f.opts.withOptional()
	return f
}

func (f TextListField) Nullable() TextListField {
	f.opts = f.opts.withNullable()
	return f
}

func (f TextListField) WithChecks(c checks.Checks[[]string]) TextListField {
	f.opts = f.opts.withChecks(c)
	return f
}

func (f TextListField) NewMapping(attributeName string, factory types.MappingFactory) types.ValueMapper {
	return factory.GenericMapping(attributeName, f)
}
