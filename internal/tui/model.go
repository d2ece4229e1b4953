package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rdelgatto/habitkit/internal/constants"
	"github.com/rdelgatto/habitkit/internal/engine"
	"github.com/rdelgatto/habitkit/internal/models"
	"github.com/rdelgatto/habitkit/internal/tui/components/categorylist"
	"github.com/rdelgatto/habitkit/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateCategories
	StateAddHabit
	StateConfirmDelete
)

type HabitFormModel struct {
	Name      string
	Frequency models.Frequency
	Priority  models.Priority
	TimeOfDay string // empty means unset
	Category  string // category id, empty means none
	Icon      string
}

type Model struct {
	engine          *engine.Engine
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitList       habitlist.Model
	categoryList    categorylist.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	quitting        bool
	width           int
	height          int
	habitToDeleteID string
	statusMsg       string
}

func NewModel(eng *engine.Engine) Model {
	m := Model{
		engine: eng,
		state:  StateHabits,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}

	m.habitList = habitlist.New(m.habitItems(), 0, 0)
	m.categoryList = categorylist.New(m.categoryItems(), 0, 0)

	if err := eng.LoadErr(); err != nil {
		m.statusMsg = fmt.Sprintf("⚠ storage degraded: %v", err)
	}

	return m
}

func (m Model) habitItems() []habitlist.Item {
	today := time.Now().Format(constants.DateFormat)
	habits := m.engine.FilteredHabits()

	items := make([]habitlist.Item, len(habits))
	for i, h := range habits {
		var categoryName string
		if h.CategoryID != nil {
			if c, ok := m.engine.Category(*h.CategoryID); ok {
				categoryName = c.Name
			}
		}
		items[i] = habitlist.Item{Habit: h, CategoryName: categoryName, Today: today}
	}
	return items
}

func (m Model) categoryItems() []categorylist.Item {
	counts := make(map[string]int)
	for _, h := range m.engine.Habits() {
		if h.CategoryID != nil {
			counts[*h.CategoryID]++
		}
	}

	categories := m.engine.Categories()
	items := make([]categorylist.Item, len(categories))
	for i, c := range categories {
		items[i] = categorylist.Item{Category: c, HabitCount: counts[c.ID]}
	}
	return items
}

func (m *Model) refresh() {
	m.habitList.SetItems(m.habitItems())
	m.categoryList.SetItems(m.categoryItems())
}

func (m *Model) startAddHabit() {
	m.habitForm = &HabitFormModel{
		Frequency: models.FrequencyDaily,
		Priority:  models.PriorityMedium,
		Icon:      "✨",
	}
	m.form = newHabitForm(m.habitForm, m.engine.Categories())
	m.state = StateAddHabit
}

func newHabitForm(fm *HabitFormModel, categories []models.Category) *huh.Form {
	categoryOptions := []huh.Option[string]{huh.NewOption("None", "")}
	for _, c := range categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
				).
				Value(&fm.Frequency),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", models.PriorityLow),
					huh.NewOption("Medium", models.PriorityMedium),
					huh.NewOption("High", models.PriorityHigh),
				).
				Value(&fm.Priority),
			huh.NewSelect[string]().
				Title("Time of Day").
				Options(
					huh.NewOption("Any time", ""),
					huh.NewOption("Morning", string(models.TimeMorning)),
					huh.NewOption("Afternoon", string(models.TimeAfternoon)),
					huh.NewOption("Evening", string(models.TimeEvening)),
				).
				Value(&fm.TimeOfDay),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		keys = append(keys, m.keys.CycleFreq, m.keys.CyclePriority, m.keys.CycleDone)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}
