package reflow

import "testing"

// --- Test spies ---
//
// Spy components record every capability invocation into a shared callLog as
// "node:op" strings, so tests can assert exact invocation order.

type callLog struct {
	calls []string
}

func (l *callLog) record(node, op string) {
	l.calls = append(l.calls, node+":"+op)
}

func (l *callLog) reset() {
	l.calls = nil
}

func (l *callLog) assertCalls(t *testing.T, want ...string) {
	t.Helper()
	if len(l.calls) != len(want) {
		t.Fatalf("got %d calls %v, want %d calls %v", len(l.calls), l.calls, len(want), want)
	}
	for i := range want {
		if l.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (full: %v)", i, l.calls[i], want[i], l.calls)
		}
	}
}

// spyElement records size-calculation entry points.
type spyElement struct {
	Toggle
	log  *callLog
	node string
}

func (e *spyElement) CalculateLayoutHorizontal() { e.log.record(e.node, "calcH") }
func (e *spyElement) CalculateLayoutVertical()   { e.log.record(e.node, "calcV") }

// spyController records placement entry points. kind distinguishes ordinary
// controllers ("ctrl") from self controllers ("self") in the log.
type spyController struct {
	Toggle
	log  *callLog
	node string
	kind string
}

func (c *spyController) ApplyLayoutHorizontal() { c.log.record(c.node, c.kind+"H") }
func (c *spyController) ApplyLayoutVertical()   { c.log.record(c.node, c.kind+"V") }

// spySelfController is a spyController carrying the self-controller marker.
type spySelfController struct {
	spyController
}

func (*spySelfController) ControlsOwnRect() {}

// spyGroup is an enableable group marker.
type spyGroup struct {
	Toggle
}

func (*spyGroup) ArrangesChildren() {}

func newSpyElement(log *callLog, node string) *spyElement {
	return &spyElement{log: log, node: node}
}

func newSpyController(log *callLog, node string) *spyController {
	return &spyController{log: log, node: node, kind: "ctrl"}
}

func newSpySelfController(log *callLog, node string) *spySelfController {
	return &spySelfController{spyController{log: log, node: node, kind: "self"}}
}

// newTestScene attaches root to a fresh scene, drains the rebuild that
// SetRoot itself schedules, and resets the given call logs, so tests start
// from an empty registry and a clean log.
func newTestScene(t *testing.T, root *Node, logs ...*callLog) *Scene {
	t.Helper()
	s := NewScene()
	s.SetRoot(root)
	s.Update()
	for _, l := range logs {
		l.reset()
	}
	t.Cleanup(s.Close)
	return s
}
