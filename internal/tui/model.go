package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxing/mailadm/internal/logging"
	"github.com/inboxing/mailadm/internal/panel"
	"github.com/inboxing/mailadm/internal/roster"
	"github.com/inboxing/mailadm/internal/tui/keymap"
	"github.com/inboxing/mailadm/internal/tui/styles"
)

// Config carries the dependencies and settings for the TUI.
type Config struct {
	Orchestrator   *panel.Orchestrator
	Logger         *logging.Logger
	PageSize       int
	DetailPageSize int
	RequestTimeout time.Duration
}

// Model holds the TUI application state.
type Model struct {
	orch   *panel.Orchestrator
	keymap *keymap.Keymap
	logger *logging.Logger

	// Roster view state. The composer owns the filter, page, and
	// expansion state over the account store.
	composer *roster.Composer
	cursor   int

	// Detail view state for the open account.
	detail       *roster.MailboxStore
	detailID     int
	detailCursor int
	detailPage   int
	detailSize   int

	// Input mode and overlays
	mode       keymap.Mode
	searchIn   textinput.Model
	form       *form
	pending    *panel.Pending
	returnMode keymap.Mode

	// Async state. gen counts screen generations; responses stamped
	// with an older gen are dropped.
	gen     int
	loading bool
	spin    spinner.Model
	timeout time.Duration

	// Status line
	status      string
	statusIsErr bool
	statusSeq   int

	width    int
	height   int
	showHelp bool
	quitting bool
}

// NewModel creates the TUI model.
func NewModel(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	detailSize := cfg.DetailPageSize
	if detailSize < 1 {
		detailSize = 5
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	search := textinput.New()
	search.Placeholder = "account name"
	search.Prompt = "/"
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	return Model{
		orch:       cfg.Orchestrator,
		keymap:     keymap.DefaultKeymap(),
		logger:     logger.WithScreen("roster"),
		composer:   roster.NewComposer(cfg.Orchestrator.Store(), pageSize, roster.ListWindow),
		detailSize: detailSize,
		mode:       keymap.ModeNormal,
		searchIn:   search,
		spin:       sp,
		timeout:    timeout,
	}
}

// Init starts the first roster load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.spin.Tick)
}

// rows returns the visible roster rows for the current page, parents
// interleaved with their synthetic children.
func (m *Model) rows() []roster.Row {
	return m.composer.Rows()
}

// selectedRow returns the row under the cursor, if any.
func (m *Model) selectedRow() (roster.Row, bool) {
	rows := m.rows()
	if len(rows) == 0 || m.cursor < 0 || m.cursor >= len(rows) {
		return roster.Row{}, false
	}
	return rows[m.cursor], true
}

// clampCursor keeps the cursor inside the visible rows after the row
// set changes under it.
func (m *Model) clampCursor() {
	n := len(m.rows())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// detailPageCount returns the number of pages in the open detail view.
func (m *Model) detailPageCount() int {
	if m.detail == nil || m.detail.Len() == 0 {
		return 0
	}
	return (m.detail.Len() + m.detailSize - 1) / m.detailSize
}

// detailVisible returns the mailbox entries on the current detail page.
func (m *Model) detailVisible() []roster.Mailbox {
	if m.detail == nil {
		return nil
	}
	all := m.detail.All()
	page := roster.ClampPage(m.detailPage, m.detailPageCount())
	start := (page - 1) * m.detailSize
	if start < 0 || start >= len(all) {
		return nil
	}
	end := start + m.detailSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

// selectedMailbox returns the mailbox entry under the detail cursor.
func (m *Model) selectedMailbox() (roster.Mailbox, bool) {
	visible := m.detailVisible()
	if len(visible) == 0 || m.detailCursor < 0 || m.detailCursor >= len(visible) {
		return roster.Mailbox{}, false
	}
	return visible[m.detailCursor], true
}

// clampDetailCursor keeps the detail cursor inside the visible entries.
func (m *Model) clampDetailCursor() {
	n := len(m.detailVisible())
	if n == 0 {
		m.detailCursor = 0
		return
	}
	if m.detailCursor >= n {
		m.detailCursor = n - 1
	}
	if m.detailCursor < 0 {
		m.detailCursor = 0
	}
}

// setNotice shows a transient message in the status line.
func (m *Model) setNotice(text string) tea.Cmd {
	m.status = text
	m.statusIsErr = false
	m.statusSeq++
	return clearStatusAfter(m.statusSeq)
}

// setError shows an error in the status line. Errors stay until
// replaced; they do not time out.
func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
	m.statusSeq++
}

// nextGen advances the screen generation, invalidating responses from
// requests that are still in flight.
func (m *Model) nextGen() int {
	m.gen++
	return m.gen
}
