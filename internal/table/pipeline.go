package table

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter keeps the records whose id, name, category, status, value or
// createdAt contains term, ignoring case. A blank term keeps everything.
// The input is never modified.
func Filter(records []models.Record, term string) []models.Record {
	if strings.TrimSpace(term) == "" {
		return slices.Clone(records)
	}

	needle := strings.ToLower(term)
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.Record, needle string) bool {
	return strings.Contains(strings.ToLower(r.ID), needle) ||
		strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(string(r.Category)), needle) ||
		strings.Contains(strings.ToLower(string(r.Status)), needle) ||
		strings.Contains(r.ValueString(), needle) ||
		strings.Contains(r.CreatedAt, needle)
}

// Sort returns the records ordered by field. Text columns use English
// collation and value compares numerically. Equal keys keep their input
// order. Without a field or direction, or with an unknown field, the order
// is unchanged.
func Sort(records []models.Record, field Field, dir Direction) []models.Record {
	out := slices.Clone(records)
	if field == FieldNone || dir == DirectionNone {
		return out
	}

	compare := comparator(field)
	if compare == nil {
		return out
	}
	if dir == Desc {
		asc := compare
		compare = func(a, b models.Record) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(field Field) func(a, b models.Record) int {
	if field == FieldValue {
		return func(a, b models.Record) int { return cmp.Compare(a.Value, b.Value) }
	}

	key := textKey(field)
	if key == nil {
		return nil
	}
	// Collator keeps internal buffers and is not safe for concurrent use.
	col := collate.New(language.English)
	return func(a, b models.Record) int { return col.CompareString(key(a), key(b)) }
}

func textKey(field Field) func(models.Record) string {
	switch field {
	case FieldID:
		return func(r models.Record) string { return r.ID }
	case FieldName:
		return func(r models.Record) string { return r.Name }
	case FieldCategory:
		return func(r models.Record) string { return string(r.Category) }
	case FieldStatus:
		return func(r models.Record) string { return string(r.Status) }
	case FieldCreatedAt:
		return func(r models.Record) string { return r.CreatedAt }
	}
	return nil
}

// Paginate returns the size records of the 1-based page. Pages past the end
// and non-positive arguments give an empty slice.
func Paginate(records []models.Record, page, size int) []models.Record {
	if page < 1 || size < 1 {
		return []models.Record{}
	}
	if page > TotalPages(len(records), size) {
		return []models.Record{}
	}
	start := (page - 1) * size
	end := min(start+size, len(records))
	return slices.Clone(records[start:end])
}

// TotalPages is ceil(n/size); 0 when there is nothing to show.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
