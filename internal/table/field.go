// Package table turns the generated records into what the dashboard shows:
// the rows matching a search term, in the requested order, one page at a
// time.
//
// Filter, Sort and Paginate are pure and can be used on their own. Engine
// keeps the view state between commands and recomputes the pipeline on every
// query.
package table

import (
	"fmt"
	"strings"
)

// Field names a sortable record column.
type Field string

const (
	FieldNone      Field = ""
	FieldID        Field = "id"
	FieldName      Field = "name"
	FieldCategory  Field = "category"
	FieldValue     Field = "value"
	FieldStatus    Field = "status"
	FieldCreatedAt Field = "createdAt"
)

// Fields lists the columns in display order.
var Fields = []Field{FieldID, FieldName, FieldCategory, FieldValue, FieldStatus, FieldCreatedAt}

// ParseField accepts a column name case-insensitively. "created" is
// accepted for createdAt.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id":
		return FieldID, nil
	case "name":
		return FieldName, nil
	case "category":
		return FieldCategory, nil
	case "value":
		return FieldValue, nil
	case "status":
		return FieldStatus, nil
	case "createdat", "created", "created_at":
		return FieldCreatedAt, nil
	}
	return FieldNone, fmt.Errorf("unknown column %q", s)
}

// Direction is the sort order of a column.
type Direction string

const (
	DirectionNone Direction = ""
	Asc           Direction = "asc"
	Desc          Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	case "", "none":
		return DirectionNone, nil
	}
	return DirectionNone, fmt.Errorf("unknown sort direction %q", s)
}
