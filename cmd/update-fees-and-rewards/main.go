package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/whirlpool-sdk/pkg/whirlpool"
)

var configPath = flag.String("config", "config.yaml", "configuration file path")

func main() {
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logger := logrus.StandardLogger().WithField("type", "cmd/update-fees-and-rewards")

	config, err := loadConfig(*configPath)
	if err != nil {
		logger.WithError(err).Error("failed to load config")
		os.Exit(1)
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logger.WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	whirlpoolCtx, err := whirlpool.NewContextFromConfig(context.Background(), whirlpool.WithEnvConfigs()())
	if err != nil {
		logger.WithError(err).Error("failed to create whirlpool context")
		os.Exit(1)
	}

	if err := run(whirlpoolCtx, config, os.Stdout); err != nil {
		logger.WithError(err).Error("failed to build transaction")
		os.Exit(1)
	}
}
