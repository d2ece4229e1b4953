package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rdelgatto/habitkit/internal/models"
)

// AddCategory creates a category with a freshly generated id. The icon
// falls back to a generic symbol when unset.
func (e *Engine) AddCategory(form models.CategoryForm) (models.Category, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return models.Category{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	icon := form.Icon
	if icon == "" {
		icon = models.DefaultCategoryIcon
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	category := models.Category{
		ID:    e.newID(),
		Name:  name,
		Color: form.Color,
		Icon:  icon,
	}

	updated := append(slices.Clone(e.categories), category)
	if err := e.writeCategories(updated); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// UpdateCategory merges the patch onto the category with the given id.
func (e *Engine) UpdateCategory(id string, patch models.CategoryPatch) (models.Category, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Category{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := slices.IndexFunc(e.categories, func(c models.Category) bool { return c.ID == id })
	if idx < 0 {
		return models.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	c := e.categories[idx]
	if patch.Name != nil {
		c.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}

	updated := slices.Clone(e.categories)
	updated[idx] = c
	if err := e.writeCategories(updated); err != nil {
		return models.Category{}, err
	}

	return c, nil
}

// DeleteCategory removes the category and clears the reference on every
// habit that pointed at it. The habits are not deleted. The cleared habit
// record is persisted before the category record, so a crash between the
// two writes can never leave a durable dangling reference.
func (e *Engine) DeleteCategory(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := slices.IndexFunc(e.categories, func(c models.Category) bool { return c.ID == id })
	if idx < 0 {
		return nil
	}

	var habitsChanged bool
	habits := slices.Clone(e.habits)
	for i, h := range habits {
		if h.CategoryID != nil && *h.CategoryID == id {
			habits[i].CategoryID = nil
			habitsChanged = true
		}
	}
	if habitsChanged {
		if err := e.writeHabits(habits); err != nil {
			return err
		}
	}

	updated := slices.Delete(slices.Clone(e.categories), idx, idx+1)
	return e.writeCategories(updated)
}
