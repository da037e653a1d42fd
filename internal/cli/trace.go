package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reflowui/reflow"
)

// traceCommand creates the trace command.
func (c *CLI) traceCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "trace [scene.yaml]",
		Short: "Run the rebuild engine on a scene description and print the pass trace",
		Long: `Run the rebuild engine on a scene description and print the pass trace.

The scene file describes a node tree with layout capabilities (element,
controller, self, group) and lists which nodes to mark dirty. The command
builds the tree, resolves layout roots, runs one registry update, and prints
every capability invocation in order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return c.watchTrace(cmd.Context(), args[0])
			}
			return c.runTrace(args[0])
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run when the scene file changes")
	return cmd
}

// markResult pairs a marked node with its resolution outcome.
type markResult struct {
	node    string
	root    string
	dropped bool
}

// runTrace loads the scene, applies the marks, runs one update, and prints
// the results.
func (c *CLI) runTrace(path string) error {
	spec, err := LoadSceneFile(path)
	if err != nil {
		return err
	}

	rec := &recorder{}
	root, index, err := spec.Build(rec)
	if err != nil {
		return err
	}

	scene := reflow.NewScene()
	defer scene.Close()
	scene.SetRoot(root)
	scene.Update() // drain the rebuild SetRoot schedules
	rec.reset()

	var marks []markResult
	for _, name := range spec.Mark {
		n := index[name]
		res := markResult{node: name}
		layoutRoot := reflow.LayoutRootOf(n)
		if layoutRoot == n && len(n.LayoutControllers()) == 0 {
			res.dropped = true
		} else {
			res.root = layoutRoot.Name()
		}
		scene.MarkForRebuild(n)
		marks = append(marks, res)
	}
	c.logger.Debug("marks applied", "marked", len(spec.Mark), "pending", scene.Registry().PendingCount())

	scene.Update()
	c.printReport(spec, marks, rec.calls)

	for _, name := range spec.Force {
		rec.reset()
		scene.ForceRebuild(index[name])
		c.printForced(name, rec.calls)
	}
	return nil
}

func (c *CLI) printForced(name string, calls []traceCall) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("forced rebuild of %s", name)))
	c.printTrace(calls)
}
