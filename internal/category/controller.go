package category

import (
	"strings"

	"github.com/zobe03/se-todo-app/internal/model"
	"github.com/zobe03/se-todo-app/internal/storage"
)

// MaxCategories is the system-wide cap on how many categories may exist.
const MaxCategories = 5

// DefaultColor is returned by ColorFor when the category is unknown.
const DefaultColor = "#0078D4"

// palette supplies colors for categories created without one. Assignment is
// index-based (current count modulo palette length), not collision-aware.
var palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B195", "#C06C84",
}

// Controller owns the in-memory category collection and writes it through to
// the store after every mutation.
type Controller struct {
	store      *storage.Store
	categories []model.Category
}

func NewController(store *storage.Store) *Controller {
	return &Controller{
		store:      store,
		categories: store.LoadCategories(),
	}
}

func (c *Controller) save() {
	c.store.SaveCategories(c.categories)
}

// Create adds a category. An empty color picks the next palette entry. It
// fails when the cap is reached or the normalized name is already taken.
func (c *Controller) Create(name, color string) (model.Category, error) {
	if len(c.categories) >= MaxCategories {
		return model.Category{}, model.NewValidationError(
			"at most %d categories allowed, delete one to create another", MaxCategories)
	}

	name = model.CapitalizeFirst(strings.TrimSpace(name))
	if c.Exists(name) {
		return model.Category{}, model.NewValidationError("category %q already exists", name)
	}

	if color == "" {
		color = palette[len(c.categories)%len(palette)]
	}

	cat, err := model.NewCategory(name, color)
	if err != nil {
		return model.Category{}, err
	}

	c.categories = append(c.categories, cat)
	c.save()
	return cat, nil
}

// Categories returns a copy of the collection.
func (c *Controller) Categories() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Controller) Get(id string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}

func (c *Controller) GetByName(name string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return model.Category{}, false
}

// Exists reports whether a category with the given name exists, compared
// after trimming and capitalization.
func (c *Controller) Exists(name string) bool {
	name = model.CapitalizeFirst(strings.TrimSpace(name))
	_, ok := c.GetByName(name)
	return ok
}

// Update renames and/or recolors a category. A nil argument leaves the field
// unchanged. Renaming onto another category's name fails.
func (c *Controller) Update(id string, name, color *string) (model.Category, bool, error) {
	idx := -1
	for i, cat := range c.categories {
		if cat.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Category{}, false, nil
	}

	cat := c.categories[idx]

	if name != nil {
		if err := model.ValidateCategoryName(*name); err != nil {
			return model.Category{}, true, err
		}
		capitalized := model.CapitalizeFirst(strings.TrimSpace(*name))
		if capitalized != cat.Name && c.Exists(capitalized) {
			return model.Category{}, true, model.NewValidationError("category %q already exists", capitalized)
		}
		cat.Name = capitalized
	}

	if color != nil {
		if !model.IsValidHexColor(*color) {
			return model.Category{}, true, model.NewValidationError("invalid hex color (e.g. #FF5733)")
		}
		cat.Color = *color
	}

	c.categories[idx] = cat
	c.save()
	return cat, true, nil
}

// Delete removes a category unconditionally. Tasks referencing its name keep
// the orphaned reference.
func (c *Controller) Delete(id string) bool {
	for i, cat := range c.categories {
		if cat.ID == id {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			c.save()
			return true
		}
	}
	return false
}

// AtCap reports whether the category cap is reached.
func (c *Controller) AtCap() bool {
	return len(c.categories) >= MaxCategories
}

// IsUsed reports whether any of the given tasks references the category by
// name. The task list is supplied by the caller since this controller holds
// no reference to tasks.
func (c *Controller) IsUsed(id string, tasks []model.Task) bool {
	cat, ok := c.Get(id)
	if !ok {
		return false
	}
	for _, t := range tasks {
		if t.HasCategory(cat.Name) {
			return true
		}
	}
	return false
}

// ColorFor returns the category's color, or DefaultColor for unknown ids.
func (c *Controller) ColorFor(id string) string {
	if cat, ok := c.Get(id); ok {
		return cat.Color
	}
	return DefaultColor
}

// Refresh discards in-memory state and reloads from the store.
func (c *Controller) Refresh() {
	c.categories = c.store.LoadCategories()
}
