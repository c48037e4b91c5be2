package config

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/diwise/resource-client/pkg/resources/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// BadResponseHandler is invoked by the request layer when a response fails
// expectations. It decides what error, if any, the failure turns into.
type BadResponseHandler func(ctx context.Context, statusCode int, contentType string, body []byte) error

// Config is the set of cross cutting behaviours consumed by the request
// layer and by collection managers.
type Config interface {
	BadResponseHandler() BadResponseHandler
	KeyNameConventions() []string
}

type defaultConfig struct{}

func (defaultConfig) BadResponseHandler() BadResponseHandler {
	return defaultBadResponseHandler
}

func (defaultConfig) KeyNameConventions() []string {
	return nil
}

func defaultBadResponseHandler(ctx context.Context, statusCode int, contentType string, body []byte) error {
	return errors.NewErrorFromProblemReport(statusCode, contentType, body)
}

// LoggingBadResponseHandler logs the failed response and swallows it.
func LoggingBadResponseHandler(ctx context.Context, statusCode int, contentType string, body []byte) error {
	log := logging.GetFromContext(ctx)
	log.Warn(fmt.Sprintf("ignoring bad response with status code %d (content-type: %s)", statusCode, contentType))
	return nil
}

// Default returns the built in configuration.
func Default() Config {
	return defaultConfig{}
}

type ConfigDecoratorFunc func(c *DecoratorConfig)

func WithBadResponseHandler(handler BadResponseHandler) ConfigDecoratorFunc {
	return func(c *DecoratorConfig) {
		c.badResponseHandler = handler
		c.resetBadResponseHandler = false
	}
}

// WithDefaultBadResponseHandler resets the handler to the built in default,
// regardless of what the wrapped configuration says.
func WithDefaultBadResponseHandler() ConfigDecoratorFunc {
	return func(c *DecoratorConfig) {
		c.badResponseHandler = nil
		c.resetBadResponseHandler = true
	}
}

func WithKeyNameConventions(names ...string) ConfigDecoratorFunc {
	return func(c *DecoratorConfig) {
		c.keyNameConventions = names
		c.resetKeyNameConventions = false
	}
}

func WithDefaultKeyNameConventions() ConfigDecoratorFunc {
	return func(c *DecoratorConfig) {
		c.keyNameConventions = nil
		c.resetKeyNameConventions = true
	}
}

// Decorate layers the supplied overrides on top of a wrapped configuration.
// Each property resolves to its explicit override if one was given, to the
// built in default if a reset was requested, and to the wrapped
// configuration's value otherwise.
func Decorate(wrapped Config, decorators ...ConfigDecoratorFunc) Config {
	c := &DecoratorConfig{wrapped: wrapped}

	for _, decorator := range decorators {
		decorator(c)
	}

	return c
}

type DecoratorConfig struct {
	wrapped Config

	badResponseHandler      BadResponseHandler
	resetBadResponseHandler bool

	keyNameConventions      []string
	resetKeyNameConventions bool
}

func (c DecoratorConfig) BadResponseHandler() BadResponseHandler {
	if c.badResponseHandler != nil {
		return c.badResponseHandler
	}

	if c.resetBadResponseHandler {
		return defaultBadResponseHandler
	}

	return c.wrapped.BadResponseHandler()
}

func (c DecoratorConfig) KeyNameConventions() []string {
	if c.keyNameConventions != nil {
		return c.keyNameConventions
	}

	if c.resetKeyNameConventions {
		return defaultConfig{}.KeyNameConventions()
	}

	return c.wrapped.KeyNameConventions()
}

type holder struct {
	cfg Config
}

var active atomic.Pointer[holder]

func init() {
	active.Store(&holder{cfg: defaultConfig{}})
}

// SetGlobal replaces the active configuration with a new decorator layered
// over the built in default. Each call starts fresh from the default, it
// does not stack on top of the previously active configuration. The
// replacement is a single atomic pointer swap, so concurrent readers never
// observe a partially constructed configuration.
func SetGlobal(decorators ...ConfigDecoratorFunc) Config {
	cfg := Decorate(Default(), decorators...)
	active.Store(&holder{cfg: cfg})
	return cfg
}

// Global returns the active configuration. Prefer passing a Config
// explicitly and reserve this accessor for ergonomic top level use.
func Global() Config {
	return active.Load().cfg
}
