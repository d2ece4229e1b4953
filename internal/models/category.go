package models

// DefaultCategoryIcon is used when a category is created without one.
const DefaultCategoryIcon = "📁"

// Category is a user-defined grouping that habits may optionally belong to.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryForm is the payload for creating a category.
type CategoryForm struct {
	Name  string
	Color string
	Icon  string
}

// CategoryPatch is a partial update; nil pointers leave fields untouched.
type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *string
}
