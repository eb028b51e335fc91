// Package models defines the dashboard's data types: table records and the
// credential/session entities kept in the key-value store.
package models

import (
	"fmt"
	"strconv"
)

// Category classifies a record.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryFinance       Category = "Finance"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryEntertainment Category = "Entertainment"
)

// Categories lists every Category in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryFinance,
	CategoryHealthcare,
	CategoryEducation,
	CategoryEntertainment,
}

// Status is the lifecycle state of a record.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

// Statuses lists every Status in display order.
var Statuses = []Status{StatusActive, StatusInactive, StatusPending}

// DateLayout is the createdAt format.
const DateLayout = "2006-01-02"

// Record is one row of the table. Records are never modified after
// generation.
type Record struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Category  Category `json:"category" yaml:"category"`
	Value     float64  `json:"value" yaml:"value"`
	Status    Status   `json:"status" yaml:"status"`
	CreatedAt string   `json:"createdAt" yaml:"createdAt"`
}

// ValueString is the shortest decimal form of Value ("12.5", "7").
// Search matches against it.
func (r Record) ValueString() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// FormattedValue is Value as a currency amount with two decimals.
func (r Record) FormattedValue() string {
	return fmt.Sprintf("$%.2f", r.Value)
}
