package config

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

type Settings struct {
	// KeyNames lists additional attribute names that should be treated as
	// likely key candidates during implicit key inference.
	KeyNames []string `yaml:"keyNames"`
	// BadResponsePolicy is either "fail" (the default) or "log".
	BadResponsePolicy string `yaml:"badResponsePolicy"`
}

func LoadSettings(data io.Reader) (*Settings, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	err = yaml.Unmarshal(buf, settings)
	if err != nil {
		return nil, err
	}

	if settings.BadResponsePolicy != "" && settings.BadResponsePolicy != "fail" && settings.BadResponsePolicy != "log" {
		return nil, fmt.Errorf("unknown bad response policy %s", settings.BadResponsePolicy)
	}

	return settings, nil
}

// Decorators converts loaded settings into configuration overrides.
func (s *Settings) Decorators() []ConfigDecoratorFunc {
	decorators := make([]ConfigDecoratorFunc, 0, 2)

	if len(s.KeyNames) > 0 {
		decorators = append(decorators, WithKeyNameConventions(s.KeyNames...))
	}

	if s.BadResponsePolicy == "log" {
		decorators = append(decorators, WithBadResponseHandler(LoggingBadResponseHandler))
	}

	return decorators
}
