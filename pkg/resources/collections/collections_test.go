package collections

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/resource-client/pkg/resources"
	"github.com/diwise/resource-client/pkg/resources/config"
	reserrors "github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/resource-client/pkg/resources/types/descriptors"
	"github.com/diwise/resource-client/pkg/resources/types/fields"
	"github.com/matryer/is"
)

func TestKeyMetadataIsResolvedAtConstruction(t *testing.T) {
	is, m := setupManagerTest(t)

	is.Equal(m.KeyName(), "id")
	is.Equal(m.KeyKind(), types.KeyKindInteger)
}

func TestCreateInstanceYieldsBlankValues(t *testing.T) {
	is, m := setupManagerTest(t)

	item, err := m.CreateInstance()
	is.NoErr(err)
	is.Equal(item["id"], nil)
	is.Equal(item["name"], "")
}

func TestIsNewIsTrueForNullKeys(t *testing.T) {
	is, m := setupManagerTest(t)

	is.True(m.IsNew(resources.Item{"id": nil, "name": "x"}))
	is.True(!m.IsNew(resources.Item{"id": int64(7), "name": "x"}))
}

func TestKeyAccessors(t *testing.T) {
	is, m := setupManagerTest(t)

	item := resources.Item{"id": nil, "name": "x"}
	is.Equal(m.KeyOf(item), nil)

	m.SetKeyOf(item, int64(7))
	is.Equal(m.KeyOf(item), int64(7))
	is.True(!m.IsNew(item))
}

func TestCreateOrUpdateOnePassesValidItemsThrough(t *testing.T) {
	is, m := setupManagerTest(t)

	item := resources.Item{"id": nil, "name": "x"}
	result, err := m.CreateOrUpdateOne(context.Background(), item)

	is.NoErr(err)
	is.Equal(result.Item()["name"], "x")
}

func TestCreateOrUpdateOneRejectsInvalidItems(t *testing.T) {
	is, m := setupManagerTest(t)

	_, err := m.CreateOrUpdateOne(context.Background(), resources.Item{"id": nil})

	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrRequiredValueMissing))
}

func TestUpdateAllPassesAllItemsThrough(t *testing.T) {
	is, m := setupManagerTest(t)

	items := []resources.Item{
		{"id": int64(1), "name": "a"},
		{"id": int64(2), "name": "b"},
	}

	result, err := m.UpdateAll(context.Background(), items)
	is.NoErr(err)
	is.Equal(len(result.Updated), 2)
	is.Equal(len(result.NotUpdated), 0)
}

func TestManagerConsultsKeyNameConventions(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Sensor",
		descriptors.F("serial", fields.NewKeyField()),
		descriptors.F("otherId", fields.NewKeyField()),
	)
	is.NoErr(err)

	cfg := config.Decorate(config.Default(), config.WithKeyNameConventions("serial"))
	m, err := NewManager(d, WithConfig(cfg))
	is.NoErr(err)

	is.Equal(m.KeyName(), "serial")
}

func TestManagerConstructionFailsWithoutAUsableKey(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Secret",
		descriptors.F("token", fields.NewTextField().WriteOnly()),
	)
	is.NoErr(err)

	_, err = NewManager(d)
	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrNoKeyField))
}

func setupManagerTest(t *testing.T) (*is.I, *Manager) {
	is := is.New(t)

	d, err := descriptors.New("Thing",
		descriptors.F("id", fields.NewKeyField().AsKey()),
		descriptors.F("name", fields.NewTextField()),
	)
	is.NoErr(err)

	m, err := NewManager(d, WithConfig(config.Default()))
	is.NoErr(err)

	return is, m
}
