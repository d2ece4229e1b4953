package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"Habits", "Categories"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	if m.state == StateConfirmDelete {
		prompt := dangerStyle.Render("Delete this habit? (y/n)")
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
		}
		return prompt
	}

	var content string
	switch m.state {
	case StateCategories:
		content = m.categoryList.View()
	default:
		content = m.habitList.View()
	}

	sections := []string{m.viewTabs(), docStyle.Render(content)}
	if line := m.filterLine(); line != "" {
		sections = append(sections, filterStyle.Render(line))
	}
	if m.statusMsg != "" {
		sections = append(sections, dangerStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	active := 0
	if m.state == StateCategories {
		active = 1
	}

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) filterLine() string {
	f := m.engine.Filter()
	if f.IsZero() {
		return ""
	}

	var parts []string
	if f.Frequency != nil {
		parts = append(parts, fmt.Sprintf("frequency=%s", *f.Frequency))
	}
	if f.Priority != nil {
		parts = append(parts, fmt.Sprintf("priority=%s", *f.Priority))
	}
	if f.TimeOfDay != nil {
		parts = append(parts, fmt.Sprintf("time=%s", *f.TimeOfDay))
	}
	if f.Category != nil {
		name := *f.Category
		if c, ok := m.engine.Category(*f.Category); ok {
			name = c.Name
		}
		parts = append(parts, fmt.Sprintf("category=%s", name))
	}
	if f.Completed != nil {
		if *f.Completed {
			parts = append(parts, "done=today")
		} else {
			parts = append(parts, "done=not today")
		}
	}
	return "Filters: " + strings.Join(parts, "  ") + "  (x to clear)"
}
