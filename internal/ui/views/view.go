package views

import (
	"fmt"
	"strings"

	"medsearch/internal/api"
)

// TimingInfo holds the backend-reported latency breakdown for the most
// recent request.
type TimingInfo struct {
	Total     float64
	Embedding float64
	Search    float64
	Count     int
}

// Line formats the timing breakdown for the timing panel.
func (t TimingInfo) Line() string {
	return fmt.Sprintf("%.3fs / %.3fs / %.3fs / %d", t.Total, t.Embedding, t.Search, t.Count)
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	InputView    string
	InputFocused bool
	Limit        int
	Searching    bool
	SpinnerView  string
	Searched     bool
	Results      []api.SearchResult
	Selected     int
	Offset       int
	Timing       *TimingInfo
	ErrMsg       string
	StatusMsg    string
	BackendDown  bool
	HelpView     string
	ShowTiming   bool
	AbstractRows int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with an in-flight indicator on the right
	title := r.styles.Title.Render("medsearch")
	if state.Searching {
		title = title + "  " + r.styles.Dim.Render(state.SpinnerView+" searching")
	}
	content.WriteString(title)
	content.WriteString("\n")

	content.WriteString(r.renderSearchBar(state))
	content.WriteString("\n\n")

	if state.ErrMsg != "" {
		content.WriteString(r.styles.ErrorBanner.Render(state.ErrMsg))
		content.WriteString("\n\n")
	}

	if state.Timing != nil && state.ShowTiming {
		content.WriteString(r.styles.Timing.Render("took " + state.Timing.Line()))
		content.WriteString("\n\n")
	}

	content.WriteString(r.renderResults(state))

	// Footer pinned to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := state.Height - 2 // container padding
	if availableLines <= 0 {
		availableLines = 22
	}
	padding := availableLines - currentLines - footerLines
	if padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(state.Height).Render(content.String())
}

// renderSearchBar renders the query input and the limit control
func (r *Renderer) renderSearchBar(state ViewState) string {
	limit := r.styles.LimitBadge.Render(fmt.Sprintf("limit: %d", state.Limit))
	return fmt.Sprintf("%s %s  %s", r.styles.Prompt.Render("Query:"), state.InputView, limit)
}

// renderResults renders the result list, or the appropriate placeholder
func (r *Renderer) renderResults(state ViewState) string {
	if len(state.Results) == 0 {
		if state.Searching {
			return r.styles.Dim.Render("Searching…")
		}
		if state.Searched && state.ErrMsg == "" {
			return r.styles.Dim.Render("No results found")
		}
		if !state.Searched {
			return r.styles.Dim.Render("Type a query and press Enter to search PubMed.")
		}
		return ""
	}

	cardHeight := state.AbstractRows + 4 // header, title, abstract rows, source line, gap
	visible := r.visibleCards(state, cardHeight)

	var lines []string
	if state.Offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.Offset)))
	}

	end := state.Offset + visible
	if end > len(state.Results) {
		end = len(state.Results)
	}
	for i := state.Offset; i < end; i++ {
		lines = append(lines, r.renderCard(state, i))
	}

	if end < len(state.Results) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Results)-end)))
	}

	return strings.Join(lines, "\n")
}

// VisibleCards reports how many result cards fit in the current frame.
func (r *Renderer) VisibleCards(state ViewState) int {
	return r.visibleCards(state, state.AbstractRows+4)
}

func (r *Renderer) visibleCards(state ViewState, cardHeight int) int {
	// Title, search bar, footer and padding eat into the height; the
	// error banner and timing panel take more when present.
	reserved := 9
	if state.ErrMsg != "" {
		reserved += 2
	}
	if state.Timing != nil && state.ShowTiming {
		reserved += 2
	}
	avail := state.Height - reserved
	if avail < cardHeight {
		return 1
	}
	return avail / cardHeight
}

// renderCard renders a single result card
func (r *Renderer) renderCard(state ViewState, idx int) string {
	res := state.Results[idx]
	doc := res.Document
	selected := idx == state.Selected

	width := state.Width - 8 // container padding + card indent
	if width < 20 {
		width = 20
	}

	cursor := "  "
	if selected {
		cursor = r.styles.Cursor.Render("▸ ")
	}

	header := fmt.Sprintf("%s%s %s  %s  %s",
		cursor,
		r.styles.Rank.Render(fmt.Sprintf("%d.", idx+1)),
		r.styles.Score.Render(fmt.Sprintf("%.3f", res.Score)),
		r.styles.PMID.Render("PMID "+doc.PMID),
		r.styles.Dim.Render(doc.DisplayDate()),
	)

	titleStyle := r.styles.DocTitle
	if selected {
		titleStyle = titleStyle.Foreground(r.styles.Cursor.GetForeground())
	}
	title := "    " + titleStyle.Render(truncate(doc.Title, width))

	abstract := wrapText(collapseSpace(doc.Abstract), width, state.AbstractRows)
	for i, line := range abstract {
		abstract[i] = "    " + r.styles.Abstract.Render(line)
	}

	source := "    " + r.styles.Source.Render(doc.SourceFile) + "  " + r.styles.Link.Render(doc.URL())

	parts := []string{header, title}
	parts = append(parts, abstract...)
	parts = append(parts, source, "")
	return strings.Join(parts, "\n")
}

// renderFooter renders status, backend notice and the help line
func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string

	if state.BackendDown {
		lines = append(lines, r.styles.ErrorBanner.Render("backend unreachable — is the search API running?"))
	}
	if state.StatusMsg != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMsg))
	}
	lines = append(lines, state.HelpView)

	return strings.Join(lines, "\n")
}

// truncate cuts s to at most width runes, appending an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// collapseSpace flattens newlines and repeated whitespace to single spaces
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wrapText greedily wraps s into at most maxLines lines of the given
// width, truncating the last line if text remains
func wrapText(s string, width, maxLines int) []string {
	if maxLines <= 0 || s == "" {
		return nil
	}

	words := strings.Fields(s)
	var lines []string
	current := ""

	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, truncate(current, width))
			current = word
			if len(lines) == maxLines {
				// Out of room; mark the cut on the last kept line
				lines[maxLines-1] = truncate(lines[maxLines-1]+" …", width)
				return lines
			}
		}
	}

	if current != "" {
		lines = append(lines, truncate(current, width))
	}
	return lines
}
