package types

import "context"

// KeyKind identifies the wire representation of a resource's identity field.
type KeyKind string

const (
	KeyKindNone    KeyKind = ""
	KeyKindInteger KeyKind = "integer"
	KeyKindString  KeyKind = "string"
	KeyKindUUID    KeyKind = "uuid"
)

// FieldRoleHints summarises the naming and positional signals available to a
// field when it is asked how likely it is to act as the resource key.
type FieldRoleHints struct {
	Name     string
	Position int
	// KeyNames holds additional key naming conventions, typically taken
	// from configuration.
	KeyNames []string
}

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent marks a value that was never supplied, as opposed to an explicit null.
var Absent any = absent{}

type Field interface {
	BlankValue() any
	IsReadable() bool
	IsWritable() bool
	IsNullable() bool
	IsOptional() bool
	KeyKind() KeyKind
	IsKey(hints FieldRoleHints) Likelihood
	Validate(value any) ValidationResult
	NewMapping(attributeName string, factory MappingFactory) ValueMapper
}

type ResourceDescriptor interface {
	Type() string
	Field(attributeName string) (Field, bool)
	ForEachField(callback func(attributeName string, field Field)) error
}

// ResponseBody is the capability a transport collaborator hands over for
// consuming a response payload. Decoding may block until the body has been
// read in full, which is why it takes a context.
type ResponseBody interface {
	DecodeJSON(ctx context.Context, into any) error
}

// RequestSink is the capability that Pack populates with body values and
// query parameters. It is supplied by the request layer.
type RequestSink interface {
	SetBodyValue(attributeName string, value any)
	SetQueryParam(name, value string)
}

type ValueMapper interface {
	// Pack writes the wire representation of value into the request.
	// Packing never fails for values that satisfy the field's invariants.
	Pack(value any, into RequestSink)
	// Unpack consumes the response body and returns the typed value.
	Unpack(ctx context.Context, body ResponseBody) (any, error)
	// PackValue and UnpackValue are the type specific conversion hooks.
	PackValue(value any) any
	UnpackValue(raw any) (any, error)
	ExpectedResponseType() string
}

type MappingFactory interface {
	GenericMapping(attributeName string, field Field) ValueMapper
	DateTimeMapping(attributeName string, field Field) ValueMapper
	KeyMapping(attributeName string, field Field) ValueMapper
}
