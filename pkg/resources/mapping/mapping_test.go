package mapping

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/resource-client/pkg/resources"
	reserrors "github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/resource-client/pkg/resources/types/descriptors"
	"github.com/diwise/resource-client/pkg/resources/types/fields"
	"github.com/matryer/is"
)

func TestUnpackSingleValue(t *testing.T) {
	is := is.New(t)
	m := NewFactory().KeyMapping("id", fields.NewKeyField())

	value, err := m.Unpack(context.Background(), NewJSONBody([]byte(`{"id":42}`)))

	is.NoErr(err)
	is.Equal(value, int64(42))
}

func TestUnpackReportsTheExpectedResponseType(t *testing.T) {
	is := is.New(t)
	m := NewFactory().KeyMapping("id", fields.NewKeyField())

	_, err := m.Unpack(context.Background(), NewJSONBody([]byte(`{"other":42}`)))

	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrBadResponse))
	is.True(strings.Contains(err.Error(), m.ExpectedResponseType()))
}

func TestUnpackOfAbsentOptionalValueSucceeds(t *testing.T) {
	is := is.New(t)
	m := NewFactory().GenericMapping("note", fields.NewTextField().Optional())

	value, err := m.Unpack(context.Background(), NewJSONBody([]byte(`{}`)))

	is.NoErr(err)
	is.Equal(value, types.Absent)
}

func TestPackSkipsAbsentAndReadOnlyValues(t *testing.T) {
	is := is.New(t)
	factory := NewFactory()
	buffer := NewRequestBuffer()

	factory.GenericMapping("note", fields.NewTextField()).Pack(types.Absent, buffer)
	factory.GenericMapping("state", fields.NewTextField().ReadOnly()).Pack("ignored", buffer)
	factory.GenericMapping("name", fields.NewTextField()).Pack("kept", buffer)

	body, err := buffer.Body()
	is.NoErr(err)
	is.Equal(string(body), `{"name":"kept"}`)
}

func TestDateTimeMappingPacksRFC3339(t *testing.T) {
	is := is.New(t)
	buffer := NewRequestBuffer()
	m := NewFactory().DateTimeMapping("observedAt", fields.NewDateTimeField())

	m.Pack(time.Date(2026, 2, 7, 14, 13, 12, 0, time.UTC), buffer)

	body, err := buffer.Body()
	is.NoErr(err)
	is.Equal(string(body), `{"observedAt":"2026-02-07T14:13:12Z"}`)
}

func TestUUIDKeyMappingRejectsMalformedKeys(t *testing.T) {
	is := is.New(t)
	m := NewFactory().KeyMapping("id", fields.NewUUIDKeyField())

	_, err := m.UnpackValue("not-a-uuid")
	is.True(err != nil)

	value, err := m.UnpackValue("c1a1cea0-83e2-49b6-8a67-2ef87373e831")
	is.NoErr(err)
	is.Equal(value, "c1a1cea0-83e2-49b6-8a67-2ef87373e831")
}

func TestResourceMapperPack(t *testing.T) {
	is, rm := setupResourceMapperTest(t)
	buffer := NewRequestBuffer()

	rm.Pack(resources.Item{
		"value":      21.4,
		"observedAt": time.Date(2026, 2, 7, 14, 13, 12, 0, time.UTC),
	}, buffer)

	body, err := buffer.Body()
	is.NoErr(err)
	is.Equal(string(body), `{"observedAt":"2026-02-07T14:13:12Z","value":21.4}`)
}

func TestResourceMapperUnpack(t *testing.T) {
	is, rm := setupResourceMapperTest(t)

	item, err := rm.Unpack(context.Background(), NewJSONBody(
		[]byte(`{"id":7,"value":21.4,"observedAt":"2026-02-07T14:13:12Z"}`),
	))

	is.NoErr(err)
	is.Equal(item["id"], int64(7))
	is.Equal(item["value"], 21.4)
	is.Equal(item["observedAt"], time.Date(2026, 2, 7, 14, 13, 12, 0, time.UTC))
}

func TestResourceMapperUnpackFailsOnMissingRequiredAttribute(t *testing.T) {
	is, rm := setupResourceMapperTest(t)

	_, err := rm.Unpack(context.Background(), NewJSONBody([]byte(`{"id":7,"value":21.4}`)))

	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrBadResponse))
	is.True(strings.Contains(err.Error(), "observedAt"))
}

func TestResourceMapperUnpackFailsOnMalformedValues(t *testing.T) {
	is, rm := setupResourceMapperTest(t)

	_, err := rm.Unpack(context.Background(), NewJSONBody(
		[]byte(`{"id":7,"value":21.4,"observedAt":"yesterday-ish"}`),
	))

	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrBadResponse))
	is.True(strings.Contains(err.Error(), rm.ExpectedResponseType()))
}

func TestResourceMapperUnpackFailsOnNonJSONBodies(t *testing.T) {
	is, rm := setupResourceMapperTest(t)

	_, err := rm.Unpack(context.Background(), NewJSONBody([]byte(`this is not json`)))

	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrBadResponse))
}

func TestQueryParams(t *testing.T) {
	is := is.New(t)

	query := NewQueryParams(
		Types([]string{"Device", "DeviceModel"}),
		Attributes([]string{"name", "online"}),
		Limit(50),
		Offset(100),
	)

	is.Equal(query, "?type=Device,DeviceModel&attrs=name,online&limit=50&offset=100")
}

func TestQueryParamsWithoutDecorators(t *testing.T) {
	is := is.New(t)
	is.Equal(NewQueryParams(), "")
}

func TestRequestBufferEscapesQueryParams(t *testing.T) {
	is := is.New(t)
	buffer := NewRequestBuffer()

	buffer.SetQueryParam("q", "temperature>20")

	is.Equal(buffer.QueryString(), "?q=temperature%3E20")
}

func setupResourceMapperTest(t *testing.T) (*is.I, *ResourceMapper) {
	is := is.New(t)

	d, err := descriptors.New("Measurement",
		descriptors.F("id", fields.NewKeyField().AsKey()),
		descriptors.F("value", fields.NewNumberField()),
		descriptors.F("observedAt", fields.NewDateTimeField()),
		descriptors.F("unitCode", fields.NewTextField().Optional()),
	)
	is.NoErr(err)

	return is, NewResourceMapper(d, NewFactory())
}
