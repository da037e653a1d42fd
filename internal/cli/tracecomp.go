package cli

import "github.com/reflowui/reflow"

// Trace components implement the layout capability contracts without any
// layout math: each invocation is appended to a shared recorder so the tool
// can print the exact order the engine used.

// traceCall is one recorded capability invocation.
type traceCall struct {
	Node string
	Op   string // calc-h, calc-v, self-h, self-v, apply-h, apply-v
}

type recorder struct {
	calls []traceCall
}

func (r *recorder) record(node, op string) {
	r.calls = append(r.calls, traceCall{Node: node, Op: op})
}

func (r *recorder) reset() {
	r.calls = nil
}

type traceElement struct {
	reflow.Toggle
	rec  *recorder
	node string
}

func (e *traceElement) CalculateLayoutHorizontal() { e.rec.record(e.node, "calc-h") }
func (e *traceElement) CalculateLayoutVertical()   { e.rec.record(e.node, "calc-v") }

type traceController struct {
	reflow.Toggle
	rec  *recorder
	node string
	kind string
}

func (c *traceController) ApplyLayoutHorizontal() { c.rec.record(c.node, c.kind+"-h") }
func (c *traceController) ApplyLayoutVertical()   { c.rec.record(c.node, c.kind+"-v") }

type traceSelfController struct {
	traceController
}

func (*traceSelfController) ControlsOwnRect() {}

type traceGroup struct {
	reflow.Toggle
}

func (*traceGroup) ArrangesChildren() {}
