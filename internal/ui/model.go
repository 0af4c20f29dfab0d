package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"medsearch/internal/api"
	"medsearch/internal/config"
	"medsearch/internal/ui/views"
)

// Limit bounds for the result-count control.
const (
	MinLimit = 1
	MaxLimit = 100
)

// Searcher is the backend surface the view depends on.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) (*api.SearchResponse, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// Model represents the search view state
type Model struct {
	cfg    *config.Config
	client Searcher
	log    zerolog.Logger

	input    textinput.Model
	spin     spinner.Model
	help     help.Model
	keys     keyMap
	renderer *views.Renderer
	pager    *Pager

	width  int
	height int

	limit     int
	searching bool
	searched  bool
	results   []api.SearchResult
	timing    *views.TimingInfo
	errMsg    string
	statusMsg string
	selected  int
	offset    int

	backendDown bool
}

// NewModel creates a new search view model
func NewModel(cfg *config.Config, client Searcher, log zerolog.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. diabetes treatment options"
	ti.CharLimit = 512
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &Model{
		cfg:      cfg,
		client:   client,
		log:      log,
		input:    ti,
		spin:     sp,
		help:     help.New(),
		keys:     newKeyMap(),
		renderer: views.NewRenderer(),
		pager:    NewPager(),
		limit:    cfg.DefaultLimit,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.checkHealth())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - 24; w > 10 {
			m.input.Width = w
		}
		m.ensureSelectedVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchDoneMsg:
		return m.handleSearchDone(msg)

	case healthDoneMsg:
		m.backendDown = msg.err != nil
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("health check failed")
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("pager failed")
			return m.setStatus("Could not open pager: " + msg.err.Error())
		}
		return m, nil

	case browserOpenedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("url", msg.url).Msg("browser open failed")
			return m.setStatus("Could not open browser: " + msg.err.Error())
		}
		return m.setStatus("Opened " + msg.url)

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Search):
			return m, m.startSearch()
		case key.Matches(msg, m.keys.Blur):
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Search):
		return m, m.startSearch()
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.LimitUp):
		m.setLimit(m.limit + 1)
		return m, nil
	case key.Matches(msg, m.keys.LimitDown):
		m.setLimit(m.limit - 1)
		return m, nil
	case key.Matches(msg, m.keys.View):
		return m, m.viewDocument()
	case key.Matches(msg, m.keys.Open):
		return m, m.openLink()
	}

	return m, nil
}

// startSearch dispatches one request to the backend. A blank query or
// an in-flight request makes it a no-op.
func (m *Model) startSearch() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || m.searching {
		return nil
	}

	m.errMsg = ""
	m.timing = nil
	m.searching = true
	limit := m.limit

	m.log.Info().Str("query", query).Int("limit", limit).Msg("search started")

	return tea.Batch(m.spin.Tick, func() tea.Msg {
		resp, err := m.client.Search(context.Background(), query, limit)
		return searchDoneMsg{resp: resp, err: err}
	})
}

// handleSearchDone applies the outcome of a search request
func (m *Model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.searching = false
	m.searched = true

	if msg.err != nil {
		m.errMsg = searchErrorMessage(msg.err)
		m.log.Error().Err(msg.err).Msg("search failed")
		// Results are intentionally left as-is; only the timing panel
		// was cleared at dispatch.
		return m, nil
	}

	m.errMsg = ""
	m.backendDown = false
	m.results = msg.resp.Results
	m.timing = &views.TimingInfo{
		Total:     msg.resp.TotalTime,
		Embedding: msg.resp.EmbeddingTime,
		Search:    msg.resp.SearchTime,
		Count:     msg.resp.ResultsCount,
	}
	m.selected = 0
	m.offset = 0

	m.log.Info().
		Int("results", len(msg.resp.Results)).
		Float64("total_time", msg.resp.TotalTime).
		Float64("embedding_time", msg.resp.EmbeddingTime).
		Float64("search_time", msg.resp.SearchTime).
		Msg("search completed")

	return m, nil
}

// searchErrorMessage maps a dispatch failure to its banner text. A
// backend status error gets the generic text; transport and decode
// failures surface the underlying message.
func searchErrorMessage(err error) string {
	if api.IsStatusError(err) {
		return "Search error: Search failed"
	}
	return "Search error: " + err.Error()
}

// setLimit clamps and stores the result limit
func (m *Model) setLimit(n int) {
	if n < MinLimit {
		n = MinLimit
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	m.limit = n
}

// moveSelection moves the result cursor and keeps it in the viewport
func (m *Model) moveSelection(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.results)-1 {
		m.selected = len(m.results) - 1
	}
	m.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport offset so the selected
// card stays on screen
func (m *Model) ensureSelectedVisible() {
	visible := m.renderer.VisibleCards(m.buildViewState())
	if visible < 1 {
		visible = 1
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// viewDocument opens the selected document in the embedded pager
func (m *Model) viewDocument() tea.Cmd {
	if len(m.results) == 0 {
		return nil
	}
	res := m.results[m.selected]
	rank := m.selected + 1
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pager.ShowDocument(res, rank)}
	}
}

// openLink opens the selected document's PubMed page in the browser
func (m *Model) openLink() tea.Cmd {
	if len(m.results) == 0 {
		return nil
	}
	url := m.results[m.selected].Document.URL()
	return func() tea.Msg {
		return browserOpenedMsg{url: url, err: OpenURL(url)}
	}
}

// checkHealth pings the backend once at startup
func (m *Model) checkHealth() tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.Health(context.Background())
		return healthDoneMsg{err: err}
	}
}

// setStatus shows a transient status message for a few seconds
func (m *Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusMsg = s
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// buildViewState projects the model into a renderable state
func (m *Model) buildViewState() views.ViewState {
	var timing *views.TimingInfo
	if m.timing != nil {
		t := *m.timing
		timing = &t
	}

	return views.ViewState{
		Width:        m.width,
		Height:       m.height,
		InputView:    m.input.View(),
		InputFocused: m.input.Focused(),
		Limit:        m.limit,
		Searching:    m.searching,
		SpinnerView:  m.spin.View(),
		Searched:     m.searched,
		Results:      m.results,
		Selected:     m.selected,
		Offset:       m.offset,
		Timing:       timing,
		ErrMsg:       m.errMsg,
		StatusMsg:    m.statusMsg,
		BackendDown:  m.backendDown,
		HelpView:     m.help.View(m.keys),
		ShowTiming:   m.cfg.UISettings.ShowTiming,
		AbstractRows: m.cfg.UISettings.AbstractRows,
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}
