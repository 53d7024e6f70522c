package whirlpool

import (
	"github.com/code-payments/whirlpool-sdk/pkg/config"
	"github.com/code-payments/whirlpool-sdk/pkg/config/env"
)

const (
	envConfigPrefix = "WHIRLPOOL_"

	ProgramIDConfigEnvName = envConfigPrefix + "PROGRAM_ID"
	defaultProgramID       = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"

	ComputeUnitLimitConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_LIMIT"
	defaultComputeUnitLimit       = 0

	ComputeUnitPriceConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_PRICE"
	defaultComputeUnitPrice       = 0
)

// Config configures a Context.
//
// A zero compute unit limit or price means the corresponding compute budget
// instruction is omitted.
type Config struct {
	ProgramID        config.String
	ComputeUnitLimit config.Uint64
	ComputeUnitPrice config.Uint64
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *Config

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *Config {
		return &Config{
			ProgramID:        env.NewStringConfig(ProgramIDConfigEnvName, defaultProgramID),
			ComputeUnitLimit: env.NewUint64Config(ComputeUnitLimitConfigEnvName, defaultComputeUnitLimit),
			ComputeUnitPrice: env.NewUint64Config(ComputeUnitPriceConfigEnvName, defaultComputeUnitPrice),
		}
	}
}
