package categorylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rdelgatto/habitkit/internal/models"
)

type DeleteCategoryMsg struct {
	ID string
}

type Item struct {
	Category   models.Category
	HabitCount int
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Category.Icon, i.Category.Name)
}

func (i Item) Description() string {
	if i.HabitCount == 1 {
		return "1 habit"
	}
	return fmt.Sprintf("%d habits", i.HabitCount)
}

func (i Item) FilterValue() string { return i.Category.Name }

type KeyMap struct {
	Delete key.Binding
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteCategoryMsg{ID: i.Category.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No categories."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
