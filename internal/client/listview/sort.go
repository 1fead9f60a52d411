package listview

// Direction is the sort order sent to the service on the wire.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Sort is the single sorted column of a list view.
type Sort struct {
	Field     string
	Direction Direction
}

// ToggleSort returns the sort state after the user picks a column. Picking the
// currently sorted column flips its direction; picking any other column starts
// ascending. Pure function of (prev, field) only.
func ToggleSort(prev Sort, field string) Sort {
	if prev.Field == field && prev.Direction == Ascending {
		return Sort{Field: field, Direction: Descending}
	}
	return Sort{Field: field, Direction: Ascending}
}

// Query is the combined filter and sort criteria a list view sends to the
// data service. It lives only as long as the view that owns it.
type Query struct {
	Filters map[string]string
	Sort    Sort
}

// NewQuery builds the initial query of a view: no filters, given column
// ascending.
func NewQuery(sortField string) Query {
	return Query{
		Filters: map[string]string{},
		Sort:    Sort{Field: sortField, Direction: Ascending},
	}
}

func (q Query) clone() Query {
	filters := make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		filters[k] = v
	}
	return Query{Filters: filters, Sort: q.Sort}
}
