// Package ui holds the lipgloss styles shared by the report printer and the
// interactive browser.
package ui
