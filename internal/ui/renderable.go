// Package ui holds the minimal rendering contract shared by every component.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}
