package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reflowui/reflow"
)

// NodeSpec describes one node in a scene file.
type NodeSpec struct {
	Name     string `yaml:"name"`
	Inactive bool   `yaml:"inactive,omitempty"`

	// Capabilities. "self" implies a self-controller in addition to any
	// ordinary controller requested by "controller".
	Element    bool `yaml:"element,omitempty"`
	Controller bool `yaml:"controller,omitempty"`
	Self       bool `yaml:"self,omitempty"`
	Group      bool `yaml:"group,omitempty"`

	// Disabled lists capabilities attached in a disabled state:
	// "element", "controller", "self", "group".
	Disabled []string `yaml:"disabled,omitempty"`

	Children []NodeSpec `yaml:"children,omitempty"`
}

// SceneSpec is the top-level scene file structure.
type SceneSpec struct {
	Root NodeSpec `yaml:"root"`

	// Mark lists node names to mark dirty before the update runs.
	Mark []string `yaml:"mark,omitempty"`

	// Force lists node names to rebuild synchronously, bypassing the
	// scheduled update.
	Force []string `yaml:"force,omitempty"`
}

// LoadSceneFile reads and decodes a YAML scene description.
func LoadSceneFile(path string) (SceneSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneSpec{}, fmt.Errorf("read %s: %w", path, err)
	}
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SceneSpec{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if spec.Root.Name == "" {
		return SceneSpec{}, fmt.Errorf("%s: root node needs a name", path)
	}
	if err := validateNames(&spec); err != nil {
		return SceneSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// validateNames checks that names are unique and that every marked or forced
// name exists in the tree.
func validateNames(spec *SceneSpec) error {
	seen := map[string]bool{}
	var walk func(ns *NodeSpec) error
	walk = func(ns *NodeSpec) error {
		if ns.Name == "" {
			return fmt.Errorf("every node needs a name")
		}
		if seen[ns.Name] {
			return fmt.Errorf("duplicate node name %q", ns.Name)
		}
		seen[ns.Name] = true
		for i := range ns.Children {
			if err := walk(&ns.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(&spec.Root); err != nil {
		return err
	}
	for _, name := range append(append([]string{}, spec.Mark...), spec.Force...) {
		if !seen[name] {
			return fmt.Errorf("unknown node %q in mark/force list", name)
		}
	}
	return nil
}

// Build constructs the node tree with trace components attached, recording
// into rec. Returns the root and a name->node index.
func (spec SceneSpec) Build(rec *recorder) (*reflow.Node, map[string]*reflow.Node, error) {
	index := map[string]*reflow.Node{}
	root := buildNode(spec.Root, rec, index)
	return root, index, nil
}

func buildNode(ns NodeSpec, rec *recorder, index map[string]*reflow.Node) *reflow.Node {
	disabled := map[string]bool{}
	for _, d := range ns.Disabled {
		disabled[d] = true
	}

	var comps []reflow.Component
	if ns.Element {
		el := &traceElement{rec: rec, node: ns.Name}
		el.SetEnabled(!disabled["element"])
		comps = append(comps, el)
	}
	if ns.Self {
		self := &traceSelfController{traceController{rec: rec, node: ns.Name, kind: "self"}}
		self.SetEnabled(!disabled["self"])
		comps = append(comps, self)
	}
	if ns.Controller {
		ctrl := &traceController{rec: rec, node: ns.Name, kind: "apply"}
		ctrl.SetEnabled(!disabled["controller"])
		comps = append(comps, ctrl)
	}
	if ns.Group {
		grp := &traceGroup{}
		grp.SetEnabled(!disabled["group"])
		comps = append(comps, grp)
	}

	n := reflow.NewNode(
		reflow.WithName(ns.Name),
		reflow.WithActive(!ns.Inactive),
		reflow.WithComponents(comps...),
	)
	index[ns.Name] = n

	for _, child := range ns.Children {
		n.AddChild(buildNode(child, rec, index))
	}
	return n
}
