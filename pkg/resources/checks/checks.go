package checks

import (
	"fmt"

	"github.com/google/uuid"
)

// Check validates a single value of type T.
type Check[T any] func(value T) error

// Checks composes zero or more checks into a single validation strategy.
// The zero value performs no checks at all. A Checks value holds no mutable
// state and can be shared freely between field descriptors.
type Checks[T any] struct {
	rules []Check[T]
}

func New[T any](rules ...Check[T]) Checks[T] {
	return Checks[T]{rules: rules}
}

func NoOp[T any]() Checks[T] {
	return Checks[T]{}
}

// And returns a new strategy with the supplied rules appended. The original
// strategy is left untouched.
func (c Checks[T]) And(rules ...Check[T]) Checks[T] {
	combined := make([]Check[T], 0, len(c.rules)+len(rules))
	combined = append(combined, c.rules...)
	combined = append(combined, rules...)
	return Checks[T]{rules: combined}
}

// Validate runs the checks in order and returns the first failure, if any.
func (c Checks[T]) Validate(value T) error {
	for _, rule := range c.rules {
		if err := rule(value); err != nil {
			return err
		}
	}

	return nil
}

func NotEmpty() Check[string] {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("value must not be empty")
		}
		return nil
	}
}

func MinLength(limit int) Check[string] {
	return func(value string) error {
		if len(value) < limit {
			return fmt.Errorf("value must be at least %d characters long", limit)
		}
		return nil
	}
}

func MaxLength(limit int) Check[string] {
	return func(value string) error {
		if len(value) > limit {
			return fmt.Errorf("value must be at most %d characters long", limit)
		}
		return nil
	}
}

func Minimum(limit float64) Check[float64] {
	return func(value float64) error {
		if value < limit {
			return fmt.Errorf("value must not be less than %g", limit)
		}
		return nil
	}
}

func Maximum(limit float64) Check[float64] {
	return func(value float64) error {
		if value > limit {
			return fmt.Errorf("value must not be greater than %g", limit)
		}
		return nil
	}
}

func OneOf[T comparable](allowed ...T) Check[T] {
	return func(value T) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("value %v is not one of the allowed values", value)
	}
}

func ValidUUID() Check[string] {
	return func(value string) error {
		if _, err := uuid.Parse(value); err != nil {
			return fmt.Errorf("value is not a valid uuid: %s", err.Error())
		}
		return nil
	}
}
