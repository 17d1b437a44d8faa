// Package ui provides composition primitives for Bubble Tea programs that host toasts.
//
// Core abstractions:
//   - View: a component with its own model, update, and view (Elm-style)
//   - Layer: something drawn above the base content at a cell position
//   - Surface: a sized host that stacks layers and composites them over a base view
//   - KeyMap: key bindings rendered through bubbles/help
package ui
