package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "print the xt version" }
func (*versionCmd) Usage() string {
	return `xt version

Print the version of the xt tool.
`
}

func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("xt version %s\n", Version)
	return subcommands.ExitSuccess
}
