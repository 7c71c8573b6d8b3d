// ABOUTME: Generic table screen for backend collections with cyclable filters
// ABOUTME: Backs the products, orders and customers screens

package listview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/styles"
)

// Filter narrows the rows by one attribute. Pressing Key cycles through
// "All" and then each of Values.
type Filter[T any] struct {
	Key    string
	Name   string
	Values []string
	Match  func(item T, value string) bool
}

// Config describes one table screen.
type Config[T any] struct {
	Title   string
	Icon    icons.Icon
	Columns []table.Column
	Fetch   func(ctx context.Context) ([]T, error)
	Row     func(T) table.Row
	Filters []Filter[T]
	// Summary renders a line under the title; optional.
	Summary func(all, visible []T) string
}

type loadedMsg[T any] struct {
	items []T
	err   error
}

// List is a filterable table of T
type List[T any] struct {
	cfg     Config[T]
	table   table.Model
	items   []T
	visible []T
	active  []int // per filter: -1 for all, else index into Values
	loaded  bool
	err     error
	width   int
	height  int
}

// New creates a list; call Init to load it
func New[T any](cfg Config[T], width, height int) *List[T] {
	t := table.New(
		table.WithColumns(cfg.Columns),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Roast).
		Bold(false)
	t.SetStyles(s)

	l := &List[T]{
		cfg:    cfg,
		table:  t,
		active: make([]int, len(cfg.Filters)),
	}
	for i := range l.active {
		l.active[i] = -1
	}
	l.SetSize(width, height)
	return l
}

// SetSize updates the table dimensions
func (l *List[T]) SetSize(width, height int) {
	l.width = width
	l.height = height
	// title, summary, filters, blank line and table header
	l.table.SetHeight(max(3, height-7))
	l.table.SetWidth(max(40, width))
}

// Init implements tea.Model
func (l *List[T]) Init() tea.Cmd {
	return l.Reload()
}

// Reload fetches the collection again
func (l *List[T]) Reload() tea.Cmd {
	fetch := l.cfg.Fetch
	return func() tea.Msg {
		items, err := fetch(context.Background())
		return loadedMsg[T]{items: items, err: err}
	}
}

// Loaded reports whether the first fetch has finished
func (l *List[T]) Loaded() bool {
	return l.loaded
}

// Err returns the last fetch error
func (l *List[T]) Err() error {
	return l.err
}

// Items returns every fetched item
func (l *List[T]) Items() []T {
	return l.items
}

// Visible returns the items passing all filters, in table order
func (l *List[T]) Visible() []T {
	return l.visible
}

// Selected returns the item under the cursor
func (l *List[T]) Selected() (T, bool) {
	var zero T
	i := l.table.Cursor()
	if i < 0 || i >= len(l.visible) {
		return zero, false
	}
	return l.visible[i], true
}

// FilterValue returns the active value of the filter bound to key, or "All".
func (l *List[T]) FilterValue(key string) string {
	for i, f := range l.cfg.Filters {
		if f.Key == key && l.active[i] >= 0 {
			return f.Values[l.active[i]]
		}
	}
	return "All"
}

// Update implements tea.Model
func (l *List[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[T]:
		l.loaded = true
		l.err = msg.err
		if msg.err != nil {
			return l, nav.CheckAuth(msg.err)
		}
		l.items = msg.items
		l.applyFilters()
		return l, nav.Refreshed()

	case tea.KeyMsg:
		key := msg.String()
		if key == "r" {
			return l, l.Reload()
		}
		for i, f := range l.cfg.Filters {
			if f.Key == key {
				l.active[i]++
				if l.active[i] >= len(f.Values) {
					l.active[i] = -1
				}
				l.applyFilters()
				return l, nil
			}
		}
	}

	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

func (l *List[T]) applyFilters() {
	l.visible = l.visible[:0]
	for _, item := range l.items {
		if l.matches(item) {
			l.visible = append(l.visible, item)
		}
	}

	rows := make([]table.Row, len(l.visible))
	for i, item := range l.visible {
		rows[i] = l.cfg.Row(item)
	}
	l.table.SetRows(rows)
	if l.table.Cursor() >= len(rows) {
		l.table.SetCursor(max(0, len(rows)-1))
	}
}

func (l *List[T]) matches(item T) bool {
	for i, f := range l.cfg.Filters {
		if l.active[i] >= 0 && !f.Match(item, f.Values[l.active[i]]) {
			return false
		}
	}
	return true
}

// View renders the list
func (l *List[T]) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(l.cfg.Icon.String() + " " + l.cfg.Title))
	sb.WriteString("\n")

	switch {
	case !l.loaded:
		sb.WriteString(styles.Subtitle.Render("Loading..."))
		return sb.String()
	case l.err != nil:
		sb.WriteString(styles.StatusCritical.Render("Error: " + l.err.Error()))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("press r to retry"))
		return sb.String()
	}

	if l.cfg.Summary != nil {
		sb.WriteString(styles.Subtitle.Render(l.cfg.Summary(l.items, l.visible)))
		sb.WriteString("\n")
	}

	if len(l.cfg.Filters) > 0 {
		var parts []string
		for i, f := range l.cfg.Filters {
			value := "All"
			if l.active[i] >= 0 {
				value = f.Values[l.active[i]]
			}
			parts = append(parts, fmt.Sprintf("%s %s: %s",
				styles.KeyStyle.Render(f.Key), f.Name, styles.ValueStyle.Render(value)))
		}
		sb.WriteString(strings.Join(parts, "   "))
		sb.WriteString("\n\n")
	}

	if len(l.visible) == 0 {
		sb.WriteString(styles.Subtitle.Render("Nothing matches the current filters"))
		return sb.String()
	}
	sb.WriteString(l.table.View())
	return sb.String()
}
