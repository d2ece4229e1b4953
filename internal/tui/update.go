package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rdelgatto/habitkit/internal/models"
	"github.com/rdelgatto/habitkit/internal/tui/components/categorylist"
	"github.com/rdelgatto/habitkit/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		listHeight := msg.Height - v - 4
		m.habitList.SetSize(msg.Width-h, listHeight)
		m.categoryList.SetSize(msg.Width-h, listHeight)
		m.help.Width = msg.Width
		return m, nil

	case habitlist.AddHabitMsg:
		m.startAddHabit()
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if _, err := m.engine.ToggleCompletion(msg.ID, time.Time{}); err != nil {
			m.statusMsg = fmt.Sprintf("⚠ %v", err)
		} else {
			m.statusMsg = ""
		}
		m.refresh()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case categorylist.DeleteCategoryMsg:
		if err := m.engine.DeleteCategory(msg.ID); err != nil {
			m.statusMsg = fmt.Sprintf("⚠ %v", err)
		} else {
			m.statusMsg = ""
		}
		m.refresh()
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
			if m.state == StateHabits {
				m.state = StateCategories
			} else {
				m.state = StateHabits
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateHabits {
			switch {
			case key.Matches(keyMsg, m.keys.CycleFreq):
				m.cycleFrequencyFilter()
				return m, nil
			case key.Matches(keyMsg, m.keys.CyclePriority):
				m.cyclePriorityFilter()
				return m, nil
			case key.Matches(keyMsg, m.keys.CycleDone):
				m.cycleDoneFilter()
				return m, nil
			case key.Matches(keyMsg, m.keys.ClearFilter):
				m.engine.SetFilter(models.Filter{})
				m.refresh()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateCategories:
		m.categoryList, cmd = m.categoryList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.habitForm = nil
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.habitForm
		hf := models.HabitForm{
			Name:      fm.Name,
			Frequency: fm.Frequency,
			Priority:  fm.Priority,
			Color:     "#6366f1",
			Icon:      fm.Icon,
		}
		if fm.TimeOfDay != "" {
			tod := models.TimeOfDay(fm.TimeOfDay)
			hf.TimeOfDay = &tod
		}
		if fm.Category != "" {
			category := fm.Category
			hf.CategoryID = &category
		}
		if _, err := m.engine.AddHabit(hf); err != nil {
			m.statusMsg = fmt.Sprintf("⚠ %v", err)
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.statusMsg = ""
		m.form = nil
		m.habitForm = nil
		m.state = StateHabits
		m.refresh()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.habitForm = nil
		m.state = StateHabits
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if err := m.engine.DeleteHabit(m.habitToDeleteID); err != nil {
				m.statusMsg = fmt.Sprintf("⚠ %v", err)
			} else {
				m.statusMsg = ""
			}
			m.habitToDeleteID = ""
			m.state = StateHabits
			m.refresh()
			return m, nil
		case "n", "N", "esc":
			m.habitToDeleteID = ""
			m.state = StateHabits
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) cycleFrequencyFilter() {
	f := m.engine.Filter()
	switch {
	case f.Frequency == nil:
		freq := models.FrequencyDaily
		f.Frequency = &freq
	case *f.Frequency == models.FrequencyDaily:
		freq := models.FrequencyWeekly
		f.Frequency = &freq
	default:
		f.Frequency = nil
	}
	m.engine.SetFilter(f)
	m.refresh()
}

func (m *Model) cyclePriorityFilter() {
	f := m.engine.Filter()
	switch {
	case f.Priority == nil:
		p := models.PriorityLow
		f.Priority = &p
	case *f.Priority == models.PriorityLow:
		p := models.PriorityMedium
		f.Priority = &p
	case *f.Priority == models.PriorityMedium:
		p := models.PriorityHigh
		f.Priority = &p
	default:
		f.Priority = nil
	}
	m.engine.SetFilter(f)
	m.refresh()
}

func (m *Model) cycleDoneFilter() {
	f := m.engine.Filter()
	switch {
	case f.Completed == nil:
		done := true
		f.Completed = &done
	case *f.Completed:
		done := false
		f.Completed = &done
	default:
		f.Completed = nil
	}
	m.engine.SetFilter(f)
	m.refresh()
}
