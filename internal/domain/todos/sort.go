package todos

// lessFor returns the comparison for a sort dimension: it reports whether a
// sorts strictly earlier than b in the presented output.
//
//   - Priority: High before Medium before Low.
//   - Status: declaration order (InProgress, Backlog, Done).
//   - Deadline: ascending; records without a deadline after all that have one.
//   - Title (default): ascending lexicographic.
//
// Ties fall back to the ID string so output order is deterministic; callers
// must not rely on any secondary order beyond the dimension itself.
func lessFor(dim SortDimension) func(a, b *Todo) bool {
	var cmp func(a, b *Todo) int

	switch dim {
	case SortByPriority:
		cmp = func(a, b *Todo) int {
			return int(b.Priority) - int(a.Priority)
		}
	case SortByStatus:
		cmp = func(a, b *Todo) int {
			return int(a.Status) - int(b.Status)
		}
	case SortByDeadline:
		cmp = compareDeadlines
	default:
		cmp = func(a, b *Todo) int {
			switch {
			case a.Title < b.Title:
				return -1
			case a.Title > b.Title:
				return 1
			default:
				return 0
			}
		}
	}

	return func(a, b *Todo) bool {
		if c := cmp(a, b); c != 0 {
			return c < 0
		}
		return a.ID.String() < b.ID.String()
	}
}

func compareDeadlines(a, b *Todo) int {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return 0
	case a.Deadline == nil:
		return 1
	case b.Deadline == nil:
		return -1
	case *a.Deadline < *b.Deadline:
		return -1
	case *a.Deadline > *b.Deadline:
		return 1
	default:
		return 0
	}
}
