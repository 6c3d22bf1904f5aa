// Package view renders the panes of the step-through screen.
//
// Every function here is pure: it takes a *styles.Styles and a small state
// value and returns a string. The model in package tui decides layout and
// owns all state.
//
// # Panes
//
//   - [RenderTabs] and [RenderProblem]: problem selector, title, and input
//   - [RenderSource]: annotated source with the current line marked
//   - [RenderVars]: the step's variable snapshot in declaration order
//   - [RenderArray]: input cells with the step's highlights
//   - [RenderConsole]: accumulated output
//   - [RenderControls]: play state, position, speed, and progress bar
//   - [RenderHelp] and [RenderHelpBar]: key bindings
package view
