package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	LimitBadge  lipgloss.Style
	Dim         lipgloss.Style
	ErrorBanner lipgloss.Style
	Timing      lipgloss.Style
	Rank        lipgloss.Style
	Score       lipgloss.Style
	PMID        lipgloss.Style
	DocTitle    lipgloss.Style
	Abstract    lipgloss.Style
	Link        lipgloss.Style
	Source      lipgloss.Style
	SelectedBg  lipgloss.Style
	Cursor      lipgloss.Style
	Scroll      lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		LimitBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:        lipgloss.NewStyle().Faint(true),
		ErrorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")),
		Timing:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Rank:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		PMID:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		DocTitle: lipgloss.NewStyle().Bold(true),
		Abstract: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Source:   lipgloss.NewStyle().Faint(true).Italic(true),
		SelectedBg: lipgloss.NewStyle().
			Background(lipgloss.Color("238")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
