package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/primobs/compose"
	"github.com/sghaida/primobs/config"
	"github.com/sghaida/primobs/di"
	"github.com/sghaida/primobs/internal/logging"
)

const readyLine = "Engine is ready!"

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, lookupEnv func(string) (string, bool), stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("engine", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to an .hcl, .yaml or .yml config file")
	envPrefix := flags.String("env-prefix", "ENGINE_", "prefix for environment variable keys")
	logLevel := flags.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat := flags.String("log-format", "text", "log format: text or json")
	outPath := flags.String("out", "", "write the description to this file instead of stdout")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		flags.Usage()
		return 2
	}

	logger, err := logging.New(*logLevel, *logFormat, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	ctx := logging.WithLogger(context.Background(), logger)

	values, err := loadValues(ctx, *configPath, *envPrefix, lookupEnv)
	if err != nil {
		logger.Error("Failed to load configuration.", "error", err)
		return 1
	}

	reg := di.NewMapRegistry().Provide(compose.RegLogger, logger)
	logger.Debug("Optional dependencies provided.", "keys", reg.Keys())

	c, err := compose.BuildContext(ctx, values, compose.WithRegistry(reg))
	if err != nil {
		logger.Error("Failed to compose engine.", "error", err)
		return 1
	}
	logger = logger.With("container", c.ID().String())

	description := c.Engine().Describe()
	if *outPath != "" {
		if err := writeFileAtomic(*outPath, []byte(description+"\n"), 0o644); err != nil {
			logger.Error("Failed to write description.", "path", *outPath, "error", err)
			return 1
		}
		logger.Info("Description written.", "path", *outPath)
	} else {
		_, _ = fmt.Fprintln(stdout, description)
	}

	_, _ = fmt.Fprintln(stdout, readyLine)
	return 0
}

// loadValues layers the optional config file under the environment.
func loadValues(ctx context.Context, configPath, envPrefix string, lookupEnv func(string) (string, bool)) (config.Values, error) {
	logger := logging.FromContext(ctx)

	var sources []config.Source
	if configPath != "" {
		src, err := config.FileSource(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("Using config file.", "path", configPath)
		sources = append(sources, src)
	}
	sources = append(sources, config.EnvSource{Prefix: envPrefix, LookupEnv: lookupEnv})

	values, err := config.Load(sources...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration loaded.", "keys", values.Names())
	return values, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}
