package interpreters

import (
	"errors"
	"testing"

	reserrors "github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
	"github.com/diwise/resource-client/pkg/resources/types/descriptors"
	"github.com/diwise/resource-client/pkg/resources/types/fields"
	"github.com/matryer/is"
)

func TestExplicitKeyWinsRegardlessOfDeclarationOrder(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Thing",
		descriptors.F("name", fields.NewTextField()),
		descriptors.F("parentId", fields.NewKeyField()),
		descriptors.F("serial", fields.NewTextField().AsKey()),
	)
	is.NoErr(err)

	key, err := ResolveKey(d)
	is.NoErr(err)
	is.Equal(key.Name, "serial")
}

func TestHigherImplicitScoreWins(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Thing",
		descriptors.F("name", fields.NewTextField()),
		descriptors.F("id", fields.NewKeyField()),
	)
	is.NoErr(err)

	key, err := ResolveKey(d)
	is.NoErr(err)
	is.Equal(key.Name, "id")
	is.Equal(key.Kind, types.KeyKindInteger)
}

func TestTiesAreBrokenByDeclarationOrder(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Thing",
		descriptors.F("alpha", fields.NewTextField()),
		descriptors.F("beta", fields.NewTextField()),
	)
	is.NoErr(err)

	// both fields report implicit score 0, so the first declared one wins
	key, err := ResolveKey(d)
	is.NoErr(err)
	is.Equal(key.Name, "alpha")
	is.Equal(key.Kind, types.KeyKindNone)
}

func TestKeyNameConventionsInfluenceResolution(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Thing",
		descriptors.F("serial", fields.NewKeyField()),
		descriptors.F("otherId", fields.NewKeyField()),
	)
	is.NoErr(err)

	key, err := ResolveKey(d)
	is.NoErr(err)
	is.Equal(key.Name, "otherId")

	key, err = ResolveKey(d, "serial")
	is.NoErr(err)
	is.Equal(key.Name, "serial")
}

func TestResolutionFailsWhenNoFieldQualifies(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Thing",
		descriptors.F("secret", fields.NewTextField().WriteOnly()),
	)
	is.NoErr(err)

	_, err = ResolveKey(d)
	is.True(err != nil)
	is.True(errors.Is(err, reserrors.ErrNoKeyField))
}

func TestNewInstanceCombinesBlankValues(t *testing.T) {
	is := is.New(t)
	d, err := descriptors.New("Thing",
		descriptors.F("id", fields.NewKeyField().AsKey()),
		descriptors.F("name", fields.NewTextField()),
		descriptors.F("count", fields.NewNumberField().WithBlankValue(1)),
	)
	is.NoErr(err)

	item, err := NewInstance(d)
	is.NoErr(err)
	is.Equal(item["id"], nil)
	is.Equal(item["name"], "")
	is.Equal(item["count"], 1.0)
}
