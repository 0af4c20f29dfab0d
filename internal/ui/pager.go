package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"medsearch/internal/api"
)

// Pager shows full documents in the embedded ov pager
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowDocument shows a full search result in the pager
func (p *Pager) ShowDocument(res api.SearchResult, rank int) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(renderDocument(res, rank))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// renderDocument builds the pager content for one result
func renderDocument(res api.SearchResult, rank int) string {
	doc := res.Document

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(doc.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s #%d  score %.3f\n", labelStyle.Render("Rank:"), rank, res.Score))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("PMID:"), doc.PMID))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Date:"), doc.DisplayDate()))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Source:"), doc.SourceFile))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Link:"), doc.URL()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Abstract"))
	b.WriteString("\n")
	b.WriteString(doc.Abstract)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press q to close"))
	return b.String()
}
