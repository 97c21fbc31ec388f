package todo

import (
	"strings"

	"github.com/zobe03/se-todo-app/internal/model"
	"github.com/zobe03/se-todo-app/internal/storage"
)

// Controller owns the in-memory task collection. It loads once at
// construction and writes the whole collection through to the store after
// every mutation.
type Controller struct {
	store *storage.Store
	todos []model.Task
}

func NewController(store *storage.Store) *Controller {
	return &Controller{
		store: store,
		todos: store.LoadTasks(),
	}
}

func (c *Controller) save() {
	c.store.SaveTasks(c.todos)
}

// CreateParams carries the fields a new task can be created with.
type CreateParams struct {
	Title              string
	Description        string
	DueDate            *model.Date
	Categories         []string
	Recurrence         model.RecurrenceType
	RecurrenceInterval int
	RecurrenceEndDate  *model.Date
}

// Create validates, capitalizes and appends a new task, then persists.
func (c *Controller) Create(p CreateParams) (model.Task, error) {
	if err := model.ValidateTitle(p.Title); err != nil {
		return model.Task{}, err
	}
	if err := model.ValidateCategories(p.Categories); err != nil {
		return model.Task{}, err
	}

	title := model.CapitalizeFirst(strings.TrimSpace(p.Title))
	description := model.CapitalizeSentences(strings.TrimSpace(p.Description))

	t, err := model.NewTask(title, description)
	if err != nil {
		return model.Task{}, err
	}
	t.DueDate = p.DueDate
	if p.Categories != nil {
		if err := t.SetCategories(p.Categories); err != nil {
			return model.Task{}, err
		}
	}
	if p.Recurrence != "" {
		t.Recurrence = p.Recurrence
	}
	if p.RecurrenceInterval > 0 {
		t.RecurrenceInterval = p.RecurrenceInterval
	}
	t.RecurrenceEndDate = p.RecurrenceEndDate

	c.todos = append(c.todos, t)
	c.save()
	return t, nil
}

// Todos returns a copy of the collection; callers must not reach into the
// controller's internal slice.
func (c *Controller) Todos() []model.Task {
	out := make([]model.Task, len(c.todos))
	copy(out, c.todos)
	return out
}

func (c *Controller) Get(id string) (model.Task, bool) {
	for _, t := range c.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (c *Controller) index(id string) int {
	for i, t := range c.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Update applies a partial update. An unknown id is a soft failure (ok is
// false, no error); invalid field values fail with a validation error.
func (c *Controller) Update(id string, p Patch) (model.Task, bool, error) {
	idx := c.index(id)
	if idx == -1 {
		return model.Task{}, false, nil
	}

	t := c.todos[idx]
	if err := applyPatch(&t, p); err != nil {
		return model.Task{}, true, err
	}
	t.Touch()

	c.todos[idx] = t
	c.save()
	return t, true, nil
}

// Delete removes the task and reports whether it was found.
func (c *Controller) Delete(id string) bool {
	idx := c.index(id)
	if idx == -1 {
		return false
	}
	c.todos = append(c.todos[:idx], c.todos[idx+1:]...)
	c.save()
	return true
}

func (c *Controller) ToggleCompletion(id string) (model.Task, bool) {
	return c.mutate(id, (*model.Task).ToggleCompletion)
}

func (c *Controller) MarkCompleted(id string) (model.Task, bool) {
	return c.mutate(id, (*model.Task).MarkCompleted)
}

func (c *Controller) MarkOpen(id string) (model.Task, bool) {
	return c.mutate(id, (*model.Task).MarkOpen)
}

func (c *Controller) mutate(id string, fn func(*model.Task)) (model.Task, bool) {
	idx := c.index(id)
	if idx == -1 {
		return model.Task{}, false
	}
	fn(&c.todos[idx])
	c.save()
	return c.todos[idx], true
}

// ByStatus returns tasks with the given status.
func (c *Controller) ByStatus(status model.Status) []model.Task {
	out := []model.Task{}
	for _, t := range c.todos {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func (c *Controller) OpenTodos() []model.Task {
	return c.ByStatus(model.StatusOpen)
}

func (c *Controller) CompletedTodos() []model.Task {
	return c.ByStatus(model.StatusCompleted)
}

// ByCategory returns tasks whose category list contains the exact name.
func (c *Controller) ByCategory(name string) []model.Task {
	out := []model.Task{}
	for _, t := range c.todos {
		if t.HasCategory(name) {
			out = append(out, t)
		}
	}
	return out
}

// Filter combines status, category and search criteria. All provided
// predicates must match. The query matches case-insensitively against title
// or description.
type Filter struct {
	Status   *model.Status
	Category string
	Query    string
}

func (c *Controller) Filter(f Filter) []model.Task {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := []model.Task{}
	for _, t := range c.todos {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Category != "" && !t.HasCategory(f.Category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Search matches the query against title and description.
func (c *Controller) Search(query string) []model.Task {
	return c.Filter(Filter{Query: query})
}

func (c *Controller) Overdue() []model.Task {
	out := []model.Task{}
	for _, t := range c.todos {
		if t.IsOverdue() {
			out = append(out, t)
		}
	}
	return out
}

func (c *Controller) DueToday() []model.Task {
	out := []model.Task{}
	for _, t := range c.todos {
		if t.IsDueToday() {
			out = append(out, t)
		}
	}
	return out
}

func (c *Controller) DueThisWeek() []model.Task {
	out := []model.Task{}
	for _, t := range c.todos {
		if t.IsDueThisWeek() {
			out = append(out, t)
		}
	}
	return out
}

// Stats are recomputed by scanning the collection; with collections this
// small, cached counters are not worth the bookkeeping.
type Stats struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

func (c *Controller) Stats() Stats {
	s := Stats{Total: len(c.todos)}
	for _, t := range c.todos {
		switch t.Status {
		case model.StatusOpen:
			s.Open++
		case model.StatusCompleted:
			s.Completed++
		}
		if t.IsOverdue() {
			s.Overdue++
		}
	}
	return s
}

// HandleRecurring materializes the next instance of every completed
// recurring task that is still within its recurrence window. It does not
// stamp the source task, so running it twice in the same state creates
// duplicate next-instances.
func (c *Controller) HandleRecurring() []model.Task {
	created := []model.Task{}

	for _, t := range c.todos {
		if !t.ShouldCreateNextRecurrence() {
			continue
		}
		nextDue := t.NextDueDate()
		if nextDue == nil {
			continue
		}

		next, err := model.NewTask(t.Title, t.Description)
		if err != nil {
			continue
		}
		next.DueDate = nextDue
		next.Categories = append([]string{}, t.Categories...)
		next.Recurrence = t.Recurrence
		next.RecurrenceInterval = t.RecurrenceInterval
		next.RecurrenceEndDate = t.RecurrenceEndDate

		created = append(created, next)
	}

	if len(created) > 0 {
		c.todos = append(c.todos, created...)
		c.save()
	}
	return created
}

// Refresh discards in-memory state and reloads from the store, picking up
// externally modified storage.
func (c *Controller) Refresh() {
	c.todos = c.store.LoadTasks()
}
