package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"xpense/cmd"
)

var (
	printVersion = flag.Bool("version", false, "print the version and exit")
	verbose      = flag.Bool("v", false, "enable verbose logging")
)

func main() {
	// A .env file may provide XPENSE_FILE; its absence is fine.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])

	completer().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *printVersion {
		fmt.Printf("%s version %s\n", name, cmd.Version)
		return
	}

	if err := cmd.InitDatastore(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize datastore")
	}

	// With no subcommand, initializing the datastore is all there is to do.
	if flag.NArg() == 0 {
		return
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completer describes the CLI surface for shell completion.
func completer() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":       predict.Files("*.json"),
			"v":       predict.Nothing,
			"version": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something, "description": predict.Something,
				"a": predict.Something, "amount": predict.Something,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"i": predict.Something, "id": predict.Something,
			}},
			"list":    {},
			"fmt":     {},
			"topic":   {Args: predict.Set{"readme", "quickstart", "datastore", "*"}},
			"version": {},
		},
	}
}
