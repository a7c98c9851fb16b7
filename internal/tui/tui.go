package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/engine"
	"github.com/idilsaglam/packlist/internal/model"
)

// listItem adapts model.Entry to bubbles/list.Item
type listItem struct {
	entry model.Entry
}

func (i listItem) TitleText() string {
	box := boxUnchecked
	if i.entry.Packed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %d %s", box, i.entry.Quantity, i.entry.Description)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.TitleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.entry.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	text := fmt.Sprintf("%d %s", it.entry.Quantity, it.entry.Description)

	boxStyled := mutedStyle.Render(boxUnchecked)
	textStyled := text
	if it.entry.Packed {
		boxStyled = successStyle.Render(boxChecked)
		textStyled = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmClear
)

const clearPrompt = "Are you sure you want to delete all the items?"

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	packBind   = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack"))
	deleteBind = key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete"))
	sortBind   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort"))
	clearBind  = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear list"))
)

// Model is the interactive packing list. Every command goes through the
// engine and the rows are rebuilt from engine.View afterwards.
type Model struct {
	engine *engine.Engine
	list   list.Model
	mode   mode

	// add form
	ti      textinput.Model
	qty     int
	formErr string

	width, height int
}

// New builds the widget around e.
func New(e *engine.Engine) Model {
	l := list.New(nil, itemDelegate{}, 76, 14)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addBind, packBind, deleteBind, sortBind, clearBind}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200

	m := Model{
		engine: e,
		list:   l,
		ti:     ti,
		qty:    model.MinQuantity,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run starts the program on the terminal's alternate screen.
func Run(e *engine.Engine, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(e), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeConfirmClear:
		return m.updateConfirm(msg)
	}

	if x, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch x.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.mode = modeAdd
			m.formErr = ""
			m.resize()
			cmd := m.ti.Focus()
			return m, cmd
		case " ":
			if id, ok := m.selectedID(); ok {
				m.engine.ToggleItemPacked(id)
				cmd := m.refresh()
				return m, cmd
			}
			return m, nil
		case "d", "x":
			if id, ok := m.selectedID(); ok {
				m.engine.DeleteItem(id)
				cmd := m.refresh()
				return m, cmd
			}
			return m, nil
		case "s":
			// Next always yields a valid mode.
			_ = m.engine.SetSortMode(m.engine.SortMode().Next())
			cmd := m.refresh()
			return m, cmd
		case "c":
			if m.engine.Len() > 0 {
				m.mode = modeConfirmClear
				m.resize()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			it, err := m.engine.AddItem(m.ti.Value(), m.qty)
			if err != nil {
				m.formErr = formError(err)
				return m, nil
			}
			m.resetForm()
			m.mode = modeBrowse
			m.resize()
			cmd := m.refresh()
			m.selectID(it.ID)
			return m, cmd
		case "esc":
			m.resetForm()
			m.mode = modeBrowse
			m.resize()
			return m, nil
		case "up":
			if m.qty < model.MaxQuantity {
				m.qty++
			}
			return m, nil
		case "down":
			if m.qty > model.MinQuantity {
				m.qty--
			}
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	x, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if x.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.mode = modeBrowse
	m.resize()
	if strings.EqualFold(x.String(), "y") {
		m.engine.ClearList()
		cmd := m.refresh()
		return m, cmd
	}
	return m, nil
}

func formError(err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyDescription):
		return "Description cannot be empty"
	case errors.Is(err, model.ErrInvalidQuantity):
		return fmt.Sprintf("Quantity must be %d-%d", model.MinQuantity, model.MaxQuantity)
	default:
		return err.Error()
	}
}

func (m *Model) resetForm() {
	m.ti.SetValue("")
	m.ti.Blur()
	m.qty = model.MinQuantity
	m.formErr = ""
}

// refresh rebuilds rows from the engine, keeping the cursor on the same entry
// when it still exists.
func (m *Model) refresh() tea.Cmd {
	prev, hadPrev := m.selectedID()
	prevIndex := m.list.Index()

	view := m.engine.View()
	items := make([]list.Item, 0, len(view))
	for _, it := range view {
		items = append(items, listItem{entry: it})
	}
	cmd := m.list.SetItems(items)

	if hadPrev && m.selectID(prev) {
		return cmd
	}
	if prevIndex >= len(items) {
		prevIndex = len(items) - 1
	}
	if prevIndex < 0 {
		prevIndex = 0
	}
	m.list.Select(prevIndex)
	return cmd
}

func (m *Model) selectID(id model.ID) bool {
	for i, it := range m.list.VisibleItems() {
		if li, ok := it.(listItem); ok && li.entry.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

func (m Model) selectedID() (model.ID, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.entry.ID, true
}

// resize fits the list between the header and whatever sits below it.
func (m *Model) resize() {
	// border, padding, logo, sort line, footer
	reserved := 9
	if m.mode != modeBrowse {
		reserved += 4
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
}
