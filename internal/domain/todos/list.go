// Package todos holds the in-memory todo collection and everything it is
// built from: validated input types, the query/filter/sort engine, and the
// shared error vocabulary. The package has no synchronization of its own;
// callers exposing a List concurrently must serialize access to it.
package todos

import (
	"time"

	"github.com/google/uuid"
)

// List is a keyed in-memory todo collection. It exclusively owns its
// records: every operation returns copies, and mutation happens only
// through Add, Update, and the delete operations. Construct with NewList.
type List struct {
	items map[uuid.UUID]Todo
	now   func() int64
}

// NewList creates an empty todo collection.
func NewList() *List {
	return &List{
		items: make(map[uuid.UUID]Todo),
		now:   func() int64 { return time.Now().Unix() },
	}
}

// Add validates the creation input (deadline before title, so a deadline
// error wins when both are invalid), then inserts a fresh record with a new
// ID, Backlog status, and equal creation/update timestamps. The store is
// untouched on any validation failure.
func (l *List) Add(item NewTodo) (Todo, error) {
	deadline, err := item.Deadline.Resolve()
	if err != nil {
		return Todo{}, err
	}

	title, err := item.Title.Validate()
	if err != nil {
		return Todo{}, err
	}

	now := l.now()

	todo := Todo{
		ID:        uuid.New(),
		Title:     title,
		Priority:  item.Priority,
		Status:    StatusBacklog,
		CreatedAt: now,
		UpdatedAt: now,
		Deadline:  deadline,
	}

	l.items[todo.ID] = todo

	return todo, nil
}

// Update applies a partial update. With no field present it fails with
// ErrNoChanges. The deadline input is resolved before the record lookup, so
// a malformed deadline is reported even for an unknown ID. Present fields
// are validated and applied only when their value actually differs; the
// update timestamp advances only if something changed. The deadline is
// re-evaluated on every call, so an absent deadline input clears a stored
// one. Returns the (possibly unmodified) stored record.
func (l *List) Update(id uuid.UUID, change UpdateTodo) (Todo, error) {
	if !change.hasChange() {
		return Todo{}, ErrNoChanges
	}

	deadline, err := change.Deadline.Resolve()
	if err != nil {
		return Todo{}, err
	}

	todo, ok := l.items[id]
	if !ok {
		return Todo{}, &NotFoundError{ID: id}
	}

	modified := false

	if change.Title != nil {
		title, err := change.Title.Validate()
		if err != nil {
			return Todo{}, err
		}

		if todo.Title != title {
			todo.Title = title
			modified = true
		}
	}

	if change.Priority != nil && todo.Priority != *change.Priority {
		todo.Priority = *change.Priority
		modified = true
	}

	if change.Status != nil && todo.Status != *change.Status {
		todo.Status = *change.Status
		modified = true
	}

	if !sameDeadline(todo.Deadline, deadline) {
		todo.Deadline = deadline
		modified = true
	}

	if modified {
		todo.UpdatedAt = l.now()
	}

	l.items[id] = todo

	return todo, nil
}

// Get returns a copy of the record, or NotFoundError.
func (l *List) Get(id uuid.UUID) (Todo, error) {
	todo, ok := l.items[id]
	if !ok {
		return Todo{}, &NotFoundError{ID: id}
	}
	return todo, nil
}

// Search resolves the query's deadline bound and result cap, filters all
// records through the query predicates, and keeps at most the cap's worth
// of best-ranked matches in a bounded heap: while there is room every match
// is kept, after that a match only replaces the current worst survivor if
// it ranks strictly earlier. The survivors are sorted once at the end, so
// the whole pass is O(n log k) with a fully ordered result.
func (l *List) Search(query Query) ([]Todo, error) {
	bound, err := query.Deadline.Resolve()
	if err != nil {
		return nil, err
	}

	limit, err := query.Limit.Resolve()
	if err != nil {
		return nil, err
	}

	best := newTopN(limit, lessFor(query.SortBy))

	for _, todo := range l.items {
		if query.matches(bound, &todo) {
			best.offer(todo)
		}
	}

	return best.sorted(), nil
}

// CountBy counts the records matching the query's filters, ignoring its
// sort and limit.
func (l *List) CountBy(query Query) (int, error) {
	bound, err := query.Deadline.Resolve()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, todo := range l.items {
		if query.matches(bound, &todo) {
			count++
		}
	}

	return count, nil
}

// CountAll returns the total record count.
func (l *List) CountAll() int {
	return len(l.items)
}

// Delete removes the record, or fails with NotFoundError.
func (l *List) Delete(id uuid.UUID) error {
	if _, ok := l.items[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(l.items, id)
	return nil
}

// DeleteByIDs removes every record whose ID is in targets and returns how
// many were removed. An empty target set fails with ErrEmptyCollection.
func (l *List) DeleteByIDs(targets []uuid.UUID) (int, error) {
	if len(targets) == 0 {
		return 0, ErrEmptyCollection
	}

	set := make(map[uuid.UUID]struct{}, len(targets))
	for _, id := range targets {
		set[id] = struct{}{}
	}

	return l.deleteBy(func(t *Todo) bool {
		_, ok := set[t.ID]
		return ok
	}), nil
}

// DeleteByPriorities removes every record whose priority is in targets.
func (l *List) DeleteByPriorities(targets []Priority) (int, error) {
	if len(targets) == 0 {
		return 0, ErrEmptyCollection
	}

	set := make(map[Priority]struct{}, len(targets))
	for _, p := range targets {
		set[p] = struct{}{}
	}

	return l.deleteBy(func(t *Todo) bool {
		_, ok := set[t.Priority]
		return ok
	}), nil
}

// DeleteByStatuses removes every record whose status is in targets.
func (l *List) DeleteByStatuses(targets []Status) (int, error) {
	if len(targets) == 0 {
		return 0, ErrEmptyCollection
	}

	set := make(map[Status]struct{}, len(targets))
	for _, s := range targets {
		set[s] = struct{}{}
	}

	return l.deleteBy(func(t *Todo) bool {
		_, ok := set[t.Status]
		return ok
	}), nil
}

// DeleteByStatus is the single-status specialization of DeleteByStatuses.
func (l *List) DeleteByStatus(target Status) int {
	return l.deleteBy(func(t *Todo) bool {
		return t.Status == target
	})
}

// DeleteAll clears the store and returns the prior size.
func (l *List) DeleteAll() int {
	count := len(l.items)
	clear(l.items)
	return count
}

func (l *List) deleteBy(shouldDelete func(*Todo) bool) int {
	count := 0
	for id, todo := range l.items {
		if shouldDelete(&todo) {
			delete(l.items, id)
			count++
		}
	}
	return count
}

func sameDeadline(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
