// Package reflow implements the layout-rebuild engine for a retained-mode
// scene graph.
//
// Users import this single package for the complete public API: node
// construction, the three layout capability contracts, dirty marking with
// root resolution, and the deduplicating rebuild registry. Concrete layout
// algorithms live outside this package and plug in through the capability
// interfaces.
package reflow
