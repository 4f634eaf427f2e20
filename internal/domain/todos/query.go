package todos

import "strings"

// SortDimension selects the sort key used by Search. The zero value sorts
// by title.
type SortDimension int

const (
	SortByTitle SortDimension = iota
	SortByPriority
	SortByStatus
	SortByDeadline
)

// Query aggregates the filter, sort, and limit criteria for Search and
// CountBy. Every unset filter matches all records; set filters are combined
// with logical AND.
type Query struct {
	Keyword  *string
	Priority *Priority
	Status   *Status
	Deadline DeadlineInput
	SortBy   SortDimension
	Limit    ResultLimit
}

func (q *Query) matchKeyword(t *Todo) bool {
	if q.Keyword == nil {
		return true
	}
	return strings.Contains(t.Title, *q.Keyword)
}

func (q *Query) matchPriority(t *Todo) bool {
	if q.Priority == nil {
		return true
	}
	return *q.Priority == t.Priority
}

func (q *Query) matchStatus(t *Todo) bool {
	if q.Status == nil {
		return true
	}
	return *q.Status == t.Status
}

// matchDeadline applies the resolved upper bound. Records without a deadline
// always satisfy a bound; they are not excluded.
func matchDeadline(bound *int64, t *Todo) bool {
	if bound == nil {
		return true
	}
	if t.Deadline == nil {
		return true
	}
	return *t.Deadline <= *bound
}

func (q *Query) matches(bound *int64, t *Todo) bool {
	return q.matchKeyword(t) &&
		q.matchPriority(t) &&
		q.matchStatus(t) &&
		matchDeadline(bound, t)
}
