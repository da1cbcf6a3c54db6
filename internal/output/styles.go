package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: class names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for additive statuses (create, insert).
	ColorGreen = lipgloss.Color("82")

	// ColorBlue is used for neutral statuses (identical, info).
	ColorBlue = lipgloss.Color("39")

	// ColorYellow is used for statuses that need attention (force, skip, gsub).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for destructive statuses (remove, subtract, conflict).
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (class names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings such as tree roots.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleError styles user-facing error messages.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)
)

// Action statuses printed for each file operation.
const (
	StatusCreate    = "create"
	StatusIdentical = "identical"
	StatusConflict  = "conflict"
	StatusForce     = "force"
	StatusSkip      = "skip"
	StatusRemove    = "remove"
	StatusInsert    = "insert"
	StatusSubtract  = "subtract"
	StatusGsub      = "gsub"
	StatusInfo      = "info"
)

// statusColumnWidth right-aligns statuses so paths line up.
const statusColumnWidth = 12

// StatusStyle returns the lipgloss style for an action status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreate, StatusInsert:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	case StatusIdentical, StatusInfo:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	case StatusForce, StatusSkip, StatusGsub:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	case StatusRemove, StatusSubtract, StatusConflict:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatStatus renders a right-aligned, color-coded status followed by msg.
//
// Format: "      create  app/models/book.rb"
func FormatStatus(status, msg string) string {
	padded := fmt.Sprintf("%*s", statusColumnWidth, status)
	return StatusStyle(status).Render(padded) + "  " + msg
}

// Status prints a status line to stdout.
func Status(status, msg string) {
	Println(FormatStatus(status, msg))
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
