package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("6")
	colorYellow = lipgloss.Color("3")
	colorGreen  = lipgloss.Color("2")
	colorDim    = lipgloss.Color("8")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	nodeStyle   = lipgloss.NewStyle().Bold(true)
	capStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	calcStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	applyStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// printReport renders the tree, the mark resolutions, and the pass trace.
func (c *CLI) printReport(spec SceneSpec, marks []markResult, calls []traceCall) {
	fmt.Fprintln(c.out, headerStyle.Render("scene"))
	c.printNode(spec.Root, "")

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headerStyle.Render("marks"))
	for _, m := range marks {
		if m.dropped {
			fmt.Fprintf(c.out, "  %s %s\n", nodeStyle.Render(m.node),
				dimStyle.Render("dropped (no controller, no group parent)"))
			continue
		}
		fmt.Fprintf(c.out, "  %s %s %s\n", nodeStyle.Render(m.node),
			dimStyle.Render("resolves to"), nodeStyle.Render(m.root))
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headerStyle.Render("trace"))
	c.printTrace(calls)
}

func (c *CLI) printNode(ns NodeSpec, indent string) {
	caps := capabilityBadges(ns)
	line := indent + nodeStyle.Render(ns.Name)
	if caps != "" {
		line += " " + capStyle.Render(caps)
	}
	if ns.Inactive {
		line += " " + dimStyle.Render("(inactive)")
	}
	fmt.Fprintln(c.out, line)
	for _, child := range ns.Children {
		c.printNode(child, indent+"  ")
	}
}

func capabilityBadges(ns NodeSpec) string {
	disabled := map[string]bool{}
	for _, d := range ns.Disabled {
		disabled[d] = true
	}
	var badges []string
	add := func(name string) {
		if disabled[name] {
			name += "(off)"
		}
		badges = append(badges, name)
	}
	if ns.Element {
		add("element")
	}
	if ns.Self {
		add("self")
	}
	if ns.Controller {
		add("controller")
	}
	if ns.Group {
		add("group")
	}
	if len(badges) == 0 {
		return ""
	}
	return "[" + strings.Join(badges, " ") + "]"
}

func (c *CLI) printTrace(calls []traceCall) {
	if len(calls) == 0 {
		fmt.Fprintln(c.out, dimStyle.Render("  (no invocations)"))
		return
	}
	for i, call := range calls {
		style := applyStyle
		if strings.HasPrefix(call.Op, "calc") {
			style = calcStyle
		}
		fmt.Fprintf(c.out, "  %s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%3d", i+1)),
			style.Render(call.Op),
			nodeStyle.Render(call.Node))
	}
}
