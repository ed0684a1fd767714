// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usher-tui/usher/lib/ticket"
	"github.com/usher-tui/usher/lib/ticketstore"
	"github.com/usher-tui/usher/lib/tui"
)

// storeEventMsg delivers a store change event into the bubbletea loop.
type storeEventMsg struct {
	event ticketstore.Event
}

// Options configures a viewer model. Zero values fall back to the
// dark theme, the default key map, and the short locale time layout.
type Options struct {
	Theme      tui.Theme
	Keys       *KeyMap
	TimeLayout string
}

// Model is the bubbletea model for the ticket viewer. All derived data
// (filtered collection, stats) lives in the store; the model holds only
// presentation state: the latest snapshot, the text-filter narrowing of
// it, cursor and scroll position, and terminal geometry.
type Model struct {
	store      *ticketstore.Store
	theme      tui.Theme
	keys       KeyMap
	timeLayout string

	width  int
	height int
	ready  bool

	snapshot ticketstore.Snapshot
	matches  []Match
	filter   FilterModel

	// cursor indexes into matches. scrollOffset counts visual rows:
	// table rows in table view, card rows in card view.
	cursor       int
	scrollOffset int

	events <-chan ticketstore.Event
}

// NewModel creates a viewer over the given store. The store's current
// preferences (filter mode, view mode) drive the initial presentation.
func NewModel(store *ticketstore.Store, options Options) Model {
	theme := options.Theme
	if theme == (tui.Theme{}) {
		theme = tui.DarkTheme
	}
	keys := DefaultKeyMap
	if options.Keys != nil {
		keys = *options.Keys
	}
	timeLayout := options.TimeLayout
	if timeLayout == "" {
		timeLayout = "1/2/2006 3:04 PM"
	}

	model := Model{
		store:      store,
		theme:      theme,
		keys:       keys,
		timeLayout: timeLayout,
		filter:     NewFilterModel(theme),
		events:     store.Subscribe(),
	}
	model.refresh()
	return model
}

// Init subscribes the update loop to store change events.
func (model Model) Init() tea.Cmd {
	return model.listenForStoreEvent()
}

// listenForStoreEvent blocks on the store's event channel and converts
// the next event into a message. Re-issued after every delivery.
func (model Model) listenForStoreEvent() tea.Cmd {
	events := model.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{event: event}
	}
}

// Update implements tea.Model.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		model.ready = true
		model.ensureCursorVisible()
		return model, nil

	case storeEventMsg:
		model.refresh()
		return model, model.listenForStoreEvent()

	case tea.KeyMsg:
		if model.filter.Active() {
			return model.handleFilterKey(msg)
		}
		return model.handleListKey(msg)
	}
	return model, nil
}

// handleFilterKey processes keystrokes while the filter prompt has
// focus. Printable characters refine the pattern; Enter returns focus
// to the list with the pattern applied; Esc clears it entirely.
func (model Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit
	case tea.KeyEsc:
		model.filter.Clear()
		model.refresh()
		return model, nil
	case tea.KeyEnter:
		model.filter.Deactivate()
		return model, nil
	case tea.KeyBackspace:
		model.filter.HandleBackspace()
		model.refresh()
		return model, nil
	case tea.KeySpace:
		model.filter.HandleRune(' ')
		model.refresh()
		return model, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			model.filter.HandleRune(r)
		}
		model.refresh()
		return model, nil
	}
	return model, nil
}

// handleListKey processes keystrokes while the list has focus.
func (model Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, model.keys.Up):
		model.moveCursor(-model.cursorStride())
	case key.Matches(msg, model.keys.Down):
		model.moveCursor(model.cursorStride())
	case key.Matches(msg, model.keys.Left):
		if model.snapshot.View == ticket.ViewCard {
			model.moveCursor(-1)
		}
	case key.Matches(msg, model.keys.Right):
		if model.snapshot.View == ticket.ViewCard {
			model.moveCursor(1)
		}
	case key.Matches(msg, model.keys.PageUp):
		model.moveCursor(-model.cursorStride() * model.visibleRows())
	case key.Matches(msg, model.keys.PageDown):
		model.moveCursor(model.cursorStride() * model.visibleRows())
	case key.Matches(msg, model.keys.Home):
		model.cursor = 0
		model.ensureCursorVisible()
	case key.Matches(msg, model.keys.End):
		model.cursor = len(model.matches) - 1
		model.clampCursor()
		model.ensureCursorVisible()

	case key.Matches(msg, model.keys.TabAll):
		model.store.SetFilter(ticket.FilterAll)
		model.refresh()
	case key.Matches(msg, model.keys.TabUsed):
		model.store.SetFilter(ticket.FilterUsed)
		model.refresh()
	case key.Matches(msg, model.keys.TabValid):
		model.store.SetFilter(ticket.FilterValid)
		model.refresh()

	case key.Matches(msg, model.keys.Toggle):
		if selected, ok := model.selectedTicket(); ok {
			model.store.Toggle(selected.ID)
			model.refresh()
		}

	case key.Matches(msg, model.keys.ViewToggle):
		next := ticket.ViewTable
		if model.snapshot.View == ticket.ViewTable {
			next = ticket.ViewCard
		}
		model.store.SetView(next)
		model.refresh()

	case key.Matches(msg, model.keys.Reset):
		model.store.ResetPreferences()
		model.refresh()

	case key.Matches(msg, model.keys.FilterActivate):
		model.filter.Activate()

	case key.Matches(msg, model.keys.FilterClear):
		if !model.filter.Empty() {
			model.filter.Clear()
			model.refresh()
		}
	}
	return model, nil
}

// selectedTicket returns the ticket under the cursor.
func (model *Model) selectedTicket() (ticket.Ticket, bool) {
	if model.cursor < 0 || model.cursor >= len(model.matches) {
		return ticket.Ticket{}, false
	}
	return model.matches[model.cursor].Ticket, true
}

// refresh re-reads the store snapshot and re-applies the text filter.
// The cursor follows the previously selected ticket when it survives
// the new view; otherwise it clamps to the nearest valid index.
func (model *Model) refresh() {
	previousID := 0
	if selected, ok := model.selectedTicket(); ok {
		previousID = selected.ID
	}

	model.snapshot = model.store.Snapshot()
	model.matches = model.filter.Apply(model.snapshot.Tickets)

	if previousID != 0 {
		for index, match := range model.matches {
			if match.Ticket.ID == previousID {
				model.cursor = index
				break
			}
		}
	}
	model.clampCursor()
	model.ensureCursorVisible()
}

func (model *Model) clampCursor() {
	if model.cursor >= len(model.matches) {
		model.cursor = len(model.matches) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

// cursorStride is how far Up/Down moves: one item in table view, one
// grid row worth of items in card view.
func (model *Model) cursorStride() int {
	if model.snapshot.View == ticket.ViewCard {
		return cardColumns(model.bodyWidth())
	}
	return 1
}

func (model *Model) moveCursor(delta int) {
	next := model.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(model.matches) {
		next = len(model.matches) - 1
	}
	if next < 0 {
		next = 0
	}
	model.cursor = next
	model.ensureCursorVisible()
}

// bodyWidth is the width available for list content, leaving room for
// the scrollbar column in table view.
func (model *Model) bodyWidth() int {
	if model.width <= 0 {
		return 80
	}
	return model.width
}

// bodyHeight is the number of terminal rows available for the list:
// total height minus the header, the filter line when present, and the
// help bar.
func (model *Model) bodyHeight() int {
	height := model.height - 2 // header + help bar
	if model.filter.View(model.bodyWidth()) != "" {
		height--
	}
	if height < 1 {
		height = 1
	}
	return height
}

// visibleRows is how many visual rows fit in the body: table rows
// (minus the column header) or card rows.
func (model *Model) visibleRows() int {
	if model.snapshot.View == ticket.ViewCard {
		rows := model.bodyHeight() / cardHeight
		if rows < 1 {
			rows = 1
		}
		return rows
	}
	rows := model.bodyHeight() - 1 // column header
	if rows < 1 {
		rows = 1
	}
	return rows
}

// totalRows is the full visual row count of the current matches.
func (model *Model) totalRows() int {
	if model.snapshot.View == ticket.ViewCard {
		columns := cardColumns(model.bodyWidth())
		return (len(model.matches) + columns - 1) / columns
	}
	return len(model.matches)
}

// cursorRow is the visual row the cursor occupies.
func (model *Model) cursorRow() int {
	if model.snapshot.View == ticket.ViewCard {
		return model.cursor / cardColumns(model.bodyWidth())
	}
	return model.cursor
}

// ensureCursorVisible adjusts the scroll offset so the cursor's row is
// inside the visible window.
func (model *Model) ensureCursorVisible() {
	row := model.cursorRow()
	visible := model.visibleRows()

	if row < model.scrollOffset {
		model.scrollOffset = row
	}
	if row >= model.scrollOffset+visible {
		model.scrollOffset = row - visible + 1
	}
	maxOffset := model.totalRows() - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Initializing..."
	}

	sections := []string{model.renderHeader()}
	if filterLine := model.filter.View(model.bodyWidth()); filterLine != "" {
		sections = append(sections, filterLine)
	}
	sections = append(sections, model.renderBody(), model.renderHelp())
	return strings.Join(sections, "\n")
}

// renderHeader renders the filter tab bar with the aggregate stats
// right-aligned. Stats always describe the full collection, never the
// filtered subset.
func (model Model) renderHeader() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	tabs := make([]string, 0, 3)
	for _, tab := range []struct {
		mode  ticket.FilterMode
		label string
	}{
		{ticket.FilterAll, "1:All"},
		{ticket.FilterUsed, "2:Used"},
		{ticket.FilterValid, "3:Valid"},
	} {
		style := inactiveStyle
		if tab.mode == model.snapshot.Filter {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(" "+tab.label+" "))
	}
	left := strings.Join(tabs, " ")

	stats := model.snapshot.Stats
	right := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(
		fmt.Sprintf("%d shown · %d used · %d valid", len(model.matches), stats.Used, stats.Valid))

	padding := model.bodyWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

// renderBody renders the ticket list in the active view mode, or the
// empty-state message when the filter leaves nothing to show.
func (model Model) renderBody() string {
	if len(model.matches) == 0 {
		return model.renderEmpty()
	}
	if model.snapshot.View == ticket.ViewCard {
		return model.renderCards()
	}
	return model.renderTable()
}

// renderEmpty centers an explanation of why the list is empty. An
// empty filtered view is normal, not an error.
func (model Model) renderEmpty() string {
	message := "No tickets."
	switch {
	case !model.filter.Empty():
		message = fmt.Sprintf("No tickets match %q.", model.filter.Input())
	case model.snapshot.Filter == ticket.FilterUsed:
		message = "No used tickets."
	case model.snapshot.Filter == ticket.FilterValid:
		message = "No valid tickets."
	}
	return lipgloss.Place(
		model.bodyWidth(), model.bodyHeight(),
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(message),
	)
}

// renderTable renders the table view: column header, the visible rows,
// and a scrollbar on the right.
func (model Model) renderTable() string {
	scrollbarWidth := 2 // bar plus one space of breathing room
	tableWidth := model.bodyWidth() - scrollbarWidth
	widths := computeColumnWidths(tableWidth, model.matches, model.timeLayout)

	lines := []string{renderTableHeader(model.theme, widths)}
	end := model.scrollOffset + model.visibleRows()
	if end > len(model.matches) {
		end = len(model.matches)
	}
	for index := model.scrollOffset; index < end; index++ {
		lines = append(lines, renderTableRow(
			model.theme, model.matches[index], index == model.cursor,
			model.timeLayout, widths))
	}
	table := strings.Join(lines, "\n")

	scrollbar := tui.RenderScrollbar(
		model.theme, model.bodyHeight(),
		len(model.matches), model.visibleRows(), model.scrollOffset,
		!model.filter.Active())
	return lipgloss.JoinHorizontal(lipgloss.Top, table, " ", scrollbar)
}

// renderCards renders the card grid view.
func (model Model) renderCards() string {
	return renderCardGrid(
		model.theme, model.matches, model.cursor,
		cardColumns(model.bodyWidth()), model.scrollOffset, model.visibleRows(),
		model.timeLayout)
}

// renderHelp renders the bottom key-hint bar, switching contents with
// the focus.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	if model.filter.Active() {
		return style.Render("type to filter · enter apply · esc clear")
	}
	return style.Render("space toggle · v view · 1/2/3 filter · / search · r reset · q quit")
}
