// Package engine owns the canonical habit and category collections. All
// mutation goes through its operations; every mutation writes through to
// the persistence adapter before the in-memory mirror is committed, so the
// mirror never diverges from what is durably stored.
package engine

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rdelgatto/habitkit/internal/constants"
	"github.com/rdelgatto/habitkit/internal/models"
	"github.com/rdelgatto/habitkit/internal/storage"
)

// Categories seeded the first time the app runs, before any category
// record has been persisted.
func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Health", Color: "#6366f1", Icon: "💪"},
		{ID: "2", Name: "Learning", Color: "#ec4899", Icon: "📚"},
		{ID: "3", Name: "Productivity", Color: "#14b8a6", Icon: "⚡"},
		{ID: "4", Name: "Mindfulness", Color: "#f59e0b", Icon: "🧘"},
	}
}

// Engine is the habit state engine. It is constructed once per session
// and safe for concurrent callers: all operations serialize behind one
// mutex so overlapping mutations cannot interleave their write-throughs.
type Engine struct {
	store storage.Provider

	mu         sync.Mutex
	habits     []models.Habit
	categories []models.Category
	filter     models.Filter
	loading    bool
	loadErr    error

	now   func() time.Time
	newID func() string
}

type Option func(*Engine)

// WithClock overrides the engine's notion of the current time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource overrides id generation.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

func New(store storage.Provider, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		loading: true,
		now:     time.Now,
		newID: func() string {
			return uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load fetches both collection records from the persistence adapter. An
// absent habit record means an empty collection; an absent category record
// seeds the default set and writes the seed back immediately. Read
// failures leave the engine usable with empty/default state and are
// reported through LoadErr rather than blocking startup.
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() { e.loading = false }()

	e.loadErr = nil

	blob, ok, err := e.store.Get(storage.KeyHabits)
	switch {
	case err != nil:
		e.loadErr = fmt.Errorf("load habits: %w", err)
	case ok:
		var habits []models.Habit
		if err := json.Unmarshal([]byte(blob), &habits); err != nil {
			e.loadErr = fmt.Errorf("parse habits record: %w", err)
		} else {
			e.habits = habits
		}
	}

	blob, ok, err = e.store.Get(storage.KeyCategories)
	switch {
	case err != nil:
		e.loadErr = fmt.Errorf("load categories: %w", err)
		e.categories = defaultCategories()
	case ok:
		var categories []models.Category
		if err := json.Unmarshal([]byte(blob), &categories); err != nil {
			e.loadErr = fmt.Errorf("parse categories record: %w", err)
			e.categories = defaultCategories()
		} else {
			e.categories = categories
		}
	default:
		// First run: persist the seed so later loads read it back
		// instead of re-deriving it.
		seed := defaultCategories()
		e.categories = seed
		if err := e.writeCategories(seed); err != nil {
			e.loadErr = fmt.Errorf("seed categories: %w", err)
		}
	}

	return e.loadErr
}

// Loading is true until the initial Load has resolved (or failed). Query
// results are not final while it is true.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// LoadErr reports whether the last Load ran degraded (storage unreadable
// or a record unparseable), distinguishing that state from a legitimately
// empty collection.
func (e *Engine) LoadErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadErr
}

// Habits returns the full habit collection in insertion order.
func (e *Engine) Habits() []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.habits)
}

// Habit returns the habit with the given id.
func (e *Engine) Habit(id string) (models.Habit, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, h := range e.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Categories returns the full category collection in insertion order.
func (e *Engine) Categories() []models.Category {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.categories)
}

// Category returns the category with the given id.
func (e *Engine) Category(id string) (models.Category, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range e.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// Filter returns the active filter specification.
func (e *Engine) Filter() models.Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// SetFilter replaces the active filter specification.
func (e *Engine) SetFilter(f models.Filter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = f
}

// FilteredHabits projects the habit collection through the active filter.
func (e *Engine) FilteredHabits() []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return FilterHabits(e.habits, e.filter, e.today())
}

// FilterHabits returns the subset of habits matching every set dimension
// of f. It is pure: no side effects, and identical inputs yield identical
// results.
func FilterHabits(habits []models.Habit, f models.Filter, today string) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if f.Matches(h, today) {
			out = append(out, h)
		}
	}
	return out
}

func (e *Engine) today() string {
	return e.now().Format(constants.DateFormat)
}

// writeHabits persists the habit record and, only on success, commits the
// in-memory mirror. Callers hold e.mu.
func (e *Engine) writeHabits(habits []models.Habit) error {
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("serialize habits: %w", err)
	}
	if err := e.store.Set(storage.KeyHabits, string(data)); err != nil {
		return fmt.Errorf("save habits: %w", err)
	}
	e.habits = habits
	return nil
}

// writeCategories persists the category record and, only on success,
// commits the in-memory mirror. Callers hold e.mu.
func (e *Engine) writeCategories(categories []models.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("serialize categories: %w", err)
	}
	if err := e.store.Set(storage.KeyCategories, string(data)); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	e.categories = categories
	return nil
}
