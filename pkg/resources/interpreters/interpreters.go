package interpreters

import (
	"fmt"

	"github.com/diwise/resource-client/pkg/resources"
	"github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/resource-client/pkg/resources/types"
)

// KeyInfo is the derived identity metadata of a resource descriptor.
type KeyInfo struct {
	Name string
	Kind types.KeyKind
}

// ResolveKey asks every field of the descriptor how likely it is to be the
// key and selects the most confident one. Explicit candidates beat any
// implicit score, higher implicit scores beat lower ones, and ties go to the
// first declared field. The conventions, if any, supplement the built in
// naming heuristics.
func ResolveKey(descriptor types.ResourceDescriptor, conventions ...string) (KeyInfo, error) {
	best := types.NoLikelihood()
	found := KeyInfo{}

	position := 0

	err := descriptor.ForEachField(func(attributeName string, field types.Field) {
		hints := types.FieldRoleHints{
			Name:     attributeName,
			Position: position,
			KeyNames: conventions,
		}
		position++

		likelihood := field.IsKey(hints)
		if likelihood.IsNone() {
			return
		}

		if likelihood.Outranks(best) {
			best = likelihood
			found = KeyInfo{Name: attributeName, Kind: field.KeyKind()}
		}
	})

	if err != nil {
		return KeyInfo{}, err
	}

	if best.IsNone() {
		return KeyInfo{}, errors.NewNoKeyFieldError(
			fmt.Sprintf("no field of resource type %s can act as a key", descriptor.Type()),
		)
	}

	return found, nil
}

// NewInstance creates a blank instance by combining the blank value of every
// field in the descriptor.
func NewInstance(descriptor types.ResourceDescriptor) (resources.Item, error) {
	item := resources.Item{}

	err := descriptor.ForEachField(func(attributeName string, field types.Field) {
		item[attributeName] = field.BlankValue()
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}
