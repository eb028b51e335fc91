package table

import (
	"slices"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophdash/internal/mockdata"
	"github.com/dmitrijs2005/gophdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, value float64) models.Record {
	return models.Record{
		ID:        id,
		Name:      "Item " + id,
		Category:  models.CategoryFinance,
		Value:     value,
		Status:    models.StatusActive,
		CreatedAt: "2024-03-15",
	}
}

func ids(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func values(records []models.Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Value
	}
	return out
}

func fixture() []models.Record {
	return []models.Record{
		{ID: "ITEM-0001", Name: "Item 0001", Category: models.CategoryTechnology, Value: 12.5, Status: models.StatusActive, CreatedAt: "2024-01-10"},
		{ID: "ITEM-0002", Name: "Item 0002", Category: models.CategoryFinance, Value: 7, Status: models.StatusPending, CreatedAt: "2024-02-11"},
		{ID: "ITEM-0003", Name: "Item 0003", Category: models.CategoryHealthcare, Value: 99.99, Status: models.StatusInactive, CreatedAt: "2023-12-31"},
		{ID: "ITEM-0004", Name: "Item 0004", Category: models.CategoryFinance, Value: 0.5, Status: models.StatusActive, CreatedAt: "2024-02-01"},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term keeps all", "", []string{"ITEM-0001", "ITEM-0002", "ITEM-0003", "ITEM-0004"}},
		{"whitespace keeps all", "   \t", []string{"ITEM-0001", "ITEM-0002", "ITEM-0003", "ITEM-0004"}},
		{"category ignores case", "FINANCE", []string{"ITEM-0002", "ITEM-0004"}},
		{"status", "pend", []string{"ITEM-0002"}},
		{"id", "item-0003", []string{"ITEM-0003"}},
		{"name", "item 0001", []string{"ITEM-0001"}},
		{"value shortest form", "12.5", []string{"ITEM-0001"}},
		{"integer value has no decimals", "7.00", nil},
		{"value prefix", "99.9", []string{"ITEM-0003"}},
		{"created date", "2024-02", []string{"ITEM-0002", "ITEM-0004"}},
		{"no match", "zzz", nil},
		{"inactive also contains active", "active", []string{"ITEM-0001", "ITEM-0003", "ITEM-0004"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixture(), tt.term)
			require.NotNil(t, got)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := mockdata.Generate(200, mockdata.WithSeed(7))
	for _, term := range []string{"", "tech", "0.5", "2", "ITEM-01", "pending", "nothing"} {
		once := Filter(records, term)
		assert.Equal(t, once, Filter(once, term), "term %q", term)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	records := fixture()
	before := slices.Clone(records)
	_ = Filter(records, "finance")
	assert.Equal(t, before, records)
}

func TestSort_ValueScenario(t *testing.T) {
	records := []models.Record{rec("a", 10), rec("b", 5), rec("c", 20)}

	assert.Equal(t, []float64{5, 10, 20}, values(Sort(records, FieldValue, Asc)))
	assert.Equal(t, []float64{20, 10, 5}, values(Sort(records, FieldValue, Desc)))
	assert.Equal(t, []float64{10, 5, 20}, values(Sort(records, FieldNone, DirectionNone)))
	assert.Equal(t, []float64{10, 5, 20}, values(records), "input untouched")
}

func TestSort_IsStable(t *testing.T) {
	records := mockdata.Generate(300, mockdata.WithSeed(42))

	for _, f := range Fields {
		for _, d := range []Direction{Asc, Desc} {
			sorted := Sort(records, f, d)
			require.Len(t, sorted, len(records))

			pos := make(map[string]int, len(records))
			for i, r := range records {
				pos[r.ID] = i
			}
			for i := 1; i < len(sorted); i++ {
				a, b := sorted[i-1], sorted[i]
				if comparator(f)(a, b) == 0 {
					assert.Less(t, pos[a.ID], pos[b.ID], "field %s dir %s: equal keys reordered", f, d)
				}
			}
		}
	}
}

func TestSort_TextColumns(t *testing.T) {
	records := fixture()

	got := Sort(records, FieldCategory, Asc)
	assert.Equal(t, []models.Category{
		models.CategoryFinance, models.CategoryFinance, models.CategoryHealthcare, models.CategoryTechnology,
	}, []models.Category{got[0].Category, got[1].Category, got[2].Category, got[3].Category})
	assert.Equal(t, []string{"ITEM-0002", "ITEM-0004"}, ids(got[:2]), "ties keep input order")

	got = Sort(records, FieldCreatedAt, Desc)
	assert.Equal(t, []string{"ITEM-0002", "ITEM-0004", "ITEM-0001", "ITEM-0003"}, ids(got))
}

func TestSort_CollationIgnoresCaseFirst(t *testing.T) {
	records := []models.Record{
		{ID: "1", Name: "beta"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "alpha"},
		{ID: "4", Name: "Beta"},
	}
	got := Sort(records, FieldName, Asc)
	initials := make([]string, len(got))
	for i, r := range got {
		initials[i] = strings.ToLower(r.Name[:1])
	}
	assert.Equal(t, []string{"a", "a", "b", "b"}, initials)
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	records := fixture()
	assert.Equal(t, ids(records), ids(Sort(records, Field("colour"), Asc)))
	assert.Equal(t, ids(records), ids(Sort(records, FieldValue, DirectionNone)))
}

func TestPaginate(t *testing.T) {
	records := mockdata.Generate(23, mockdata.WithSeed(1))

	assert.Len(t, Paginate(records, 1, 10), 10)
	assert.Len(t, Paginate(records, 3, 10), 3)
	assert.Equal(t, "ITEM-0021", Paginate(records, 3, 10)[0].ID)
	assert.Empty(t, Paginate(records, 4, 10))
	assert.Empty(t, Paginate(records, 0, 10))
	assert.Empty(t, Paginate(records, -1, 10))
	assert.Empty(t, Paginate(records, 1, 0))
	assert.Empty(t, Paginate(nil, 1, 10))
	assert.NotNil(t, Paginate(records, 99, 10))
}

func TestPaginate_PagesReproduceSequence(t *testing.T) {
	records := Sort(mockdata.Generate(97, mockdata.WithSeed(3)), FieldValue, Desc)

	for _, size := range PageSizes {
		var joined []models.Record
		for p := 1; p <= TotalPages(len(records), size); p++ {
			joined = append(joined, Paginate(records, p, size)...)
		}
		assert.Equal(t, records, joined, "size %d", size)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 20, TotalPages(100, 5))
	assert.Equal(t, 0, TotalPages(10, 0))
}
