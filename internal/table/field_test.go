package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"id":        FieldID,
		"Name":      FieldName,
		" CATEGORY": FieldCategory,
		"value":     FieldValue,
		"status":    FieldStatus,
		"createdAt": FieldCreatedAt,
		"created":   FieldCreatedAt,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseField("price")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, DirectionNone, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
