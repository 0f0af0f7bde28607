package gedi

// ShotTable is a row-oriented table of laser shots.
//
// Every table has a shot_number column of 64-bit identifiers plus zero or
// more float64 columns. Tables produced by a polygon filter with a split
// field carry one additional string column holding the containing polygon's
// attribute value.
//
// The same container backs extraction results and both spatial filters.
// Tables are immutable snapshots: filters return new tables and never modify
// their input. Row order is always preserved across filtering.
type ShotTable struct {
	fields []string             // float column order
	shots  []uint64             // shot_number column
	cols   map[string][]float64 // float columns, parallel to shots

	labelField string   // split column name, "" when absent
	labels     []string // split column values, parallel to shots
}

// Len returns the number of rows.
func (t *ShotTable) Len() int {
	return len(t.shots)
}

// IsEmpty reports whether the table has zero rows.
//
// An empty table is a normal outcome of spatial filtering (no overlap with
// the query geometry), not an error. Check this before downstream use.
func (t *ShotTable) IsEmpty() bool {
	return len(t.shots) == 0
}

// Fields returns the column names in order: shot_number first, float columns,
// then the split column if present.
func (t *ShotTable) Fields() []string {
	out := make([]string, 0, len(t.fields)+2)
	out = append(out, "shot_number")
	out = append(out, t.fields...)
	if t.labelField != "" {
		out = append(out, t.labelField)
	}
	return out
}

// Shot returns the shot number of row i.
func (t *ShotTable) Shot(i int) uint64 {
	return t.shots[i]
}

// Shots returns the shot_number column.
func (t *ShotTable) Shots() []uint64 {
	return t.shots
}

// Float returns the value of a float column at row i. The second return is
// false when the column does not exist in this table.
func (t *ShotTable) Float(field string, i int) (float64, bool) {
	col, ok := t.cols[field]
	if !ok {
		return 0, false
	}
	return col[i], true
}

// Floats returns an entire float column. The second return is false when the
// column does not exist.
func (t *ShotTable) Floats(field string) ([]float64, bool) {
	col, ok := t.cols[field]
	return col, ok
}

// LabelField returns the name of the split column, or "" when the table has
// none.
func (t *ShotTable) LabelField() string {
	return t.labelField
}

// Label returns the split column value of row i. The second return is false
// when the table has no split column.
func (t *ShotTable) Label(i int) (string, bool) {
	if t.labelField == "" {
		return "", false
	}
	return t.labels[i], true
}

// subset builds a new table from the given row indices, preserving their
// order and the column schema.
func (t *ShotTable) subset(rows []int) *ShotTable {
	out := &ShotTable{
		fields:     t.fields,
		shots:      make([]uint64, len(rows)),
		cols:       make(map[string][]float64, len(t.cols)),
		labelField: t.labelField,
	}
	for _, field := range t.fields {
		out.cols[field] = make([]float64, len(rows))
	}
	if t.labelField != "" {
		out.labels = make([]string, len(rows))
	}

	for i, row := range rows {
		out.shots[i] = t.shots[row]
		for _, field := range t.fields {
			out.cols[field][i] = t.cols[field][row]
		}
		if t.labelField != "" {
			out.labels[i] = t.labels[row]
		}
	}
	return out
}
