// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// Player ticks and input file reloads happen on other goroutines. They reach
// the model as the messages in this package, delivered with tea.Program.Send.
package msg
