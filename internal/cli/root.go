package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// RootCommand builds the reflowtrace command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "reflowtrace",
		Short:        "reflowtrace inspects layout rebuilds on a scene description",
		Long:         `reflowtrace loads a YAML scene description, marks the requested nodes dirty, runs the rebuild engine, and prints the resolved layout roots and the ordered pass trace.`,
		Version:      version + " (" + commit + ")",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.SetVerbose(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.traceCommand())
	return root
}
