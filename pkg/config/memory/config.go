package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/code-payments/whirlpool-sdk/pkg/config"
	"github.com/code-payments/whirlpool-sdk/pkg/config/wrapper"
)

var errDeveloperInduced = errors.New("in memory config: developer induced error")

// Config is an in memory config used for testing
type Config struct {
	stateMu  sync.RWMutex
	value    interface{}
	err      error
	shutdown bool
}

// NewConfig returns a new in memory config. Use an initial nil value to indicate
// no value is set
func NewConfig(value interface{}) *Config {
	return &Config{
		value: value,
	}
}

// NewStringConfig returns a string config backed by an in memory value, along
// with the underlying config so tests can change it.
func NewStringConfig(value string, defaultValue string) (config.String, *Config) {
	c := NewConfig(value)
	return wrapper.NewStringConfig(c, defaultValue), c
}

// NewUint64Config returns a uint64 config backed by an in memory value, along
// with the underlying config so tests can change it.
func NewUint64Config(value uint64, defaultValue uint64) (config.Uint64, *Config) {
	c := NewConfig(value)
	return wrapper.NewUint64Config(c, defaultValue), c
}

// Get implements Config.Get
func (c *Config) Get(_ context.Context) (interface{}, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	switch {
	case c.shutdown:
		return nil, config.ErrShutdown
	case c.err != nil:
		return nil, c.err
	case c.value == nil:
		return nil, config.ErrNoValue
	}
	return c.value, nil
}

// Shutdown implements Config.Shutdown
func (c *Config) Shutdown() {
	c.stateMu.Lock()
	c.shutdown = true
	c.stateMu.Unlock()
}

// SetValue sets the value that should be returned on subsequent Get calls
func (c *Config) SetValue(value interface{}) {
	c.stateMu.Lock()
	c.value = value
	c.stateMu.Unlock()
}

// ClearValue results in ErrNoValue being returned on subsequent Get calls
func (c *Config) ClearValue() {
	c.SetValue(nil)
}

// InduceErrors instructs the config to simulate an error getting a config value
func (c *Config) InduceErrors() {
	c.stateMu.Lock()
	c.err = errDeveloperInduced
	c.stateMu.Unlock()
}

// StopInducingErrors stops the config from simulating an error getting a config value
func (c *Config) StopInducingErrors() {
	c.stateMu.Lock()
	c.err = nil
	c.stateMu.Unlock()
}
