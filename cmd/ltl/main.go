// Command ltl runs an integer recipe from configuration and prints the
// resulting values.
//
//	ltl -c recipe.yml
//	LTL_RECIPE_RANGE_END=100 ltl --width 5
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/StarQTius/Little-Type-Library/bootstrap"
	"github.com/StarQTius/Little-Type-Library/config"
	"github.com/StarQTius/Little-Type-Library/logger"
	"github.com/StarQTius/Little-Type-Library/observability"
	"github.com/StarQTius/Little-Type-Library/pipeline"
	"github.com/StarQTius/Little-Type-Library/recipe"
	"github.com/StarQTius/Little-Type-Library/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("ltl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.StringP("config", "c", "", "config file (default: search ./ltl.yml, ./config/ltl.yml, ./cmd/ltl/config.yml)")
	envFile := fs.String("env-file", "", ".env file to load before reading LTL_* variables")
	width := fs.IntP("width", "w", 10, "values printed per line")
	showVersion := fs.BoolP("version", "v", false, "print version and exit")
	listSteps := fs.Bool("list-steps", false, "print the registered filter and map names and exit")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.GetFullVersion())
		return exitOK
	}
	if *listSteps {
		fmt.Fprintln(stdout, "filter: "+strings.Join(recipe.Predicates(), ", "))
		fmt.Fprintln(stdout, "map:    "+strings.Join(recipe.Transforms(), ", "))
		return exitOK
	}

	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	var cfg AppConfig
	if err := config.LoadConfig("ltl", &cfg, opts...); err != nil {
		fmt.Fprintln(stderr, "ltl:", err)
		return exitError
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		fmt.Fprintln(stderr, "ltl:", err)
		return exitError
	}

	var shutdown func(context.Context) error
	app.OnStart(func(ctx context.Context) error {
		app.Logger.Debug("build info", version.GetVersionInfo().LogFields())
		var err error
		shutdown, err = observability.Init(ctx, cfg.Observability)
		return err
	})
	app.OnStop(func(ctx context.Context) error {
		if shutdown == nil {
			return nil
		}
		return shutdown(ctx)
	})

	err = app.RunTask(ctx, func(ctx context.Context) error {
		metrics, err := observability.NewRecipeMetrics(observability.Meter("ltl"))
		if err != nil {
			return err
		}
		res, err := recipe.NewRunner(logger.Get(logger.ComponentRecipe), metrics).Run(ctx, cfg.Recipe)
		if err != nil {
			return err
		}
		return printValues(ctx, stdout, res.Values, *width)
	})
	if err != nil {
		fmt.Fprintln(stderr, "ltl:", err)
		return exitError
	}
	return exitOK
}

// printValues writes values space-separated, width per line.
func printValues(ctx context.Context, w io.Writer, values []int, width int) error {
	lines := pipeline.Map(
		pipeline.Chunk(pipeline.FromSlice(values), width),
		func(_ context.Context, chunk []int) (string, error) {
			parts := make([]string, len(chunk))
			for i, v := range chunk {
				parts[i] = strconv.Itoa(v)
			}
			return strings.Join(parts, " "), nil
		},
	)
	return pipeline.ForEach(ctx, lines, func(_ context.Context, line string) error {
		_, err := fmt.Fprintln(w, line)
		return err
	})
}
