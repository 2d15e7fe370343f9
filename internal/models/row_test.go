package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupRows(t *testing.T) {
	rows := []Row{
		{ProductName: "Tee", ProductID: 100, VariantID: 1},
		{ProductName: "Hoodie", ProductID: 200, VariantID: 5},
		{ProductName: "Tee", ProductID: 100, VariantID: 2},
		{ProductName: "Tee", ProductID: 300, VariantID: 3},
	}

	groups := GroupRows(rows)

	assert.Len(t, groups, 3)

	// Groups come back in first-seen order.
	assert.Equal(t, GroupKey{ProductName: "Tee", ProductID: 100}, groups[0].Key)
	assert.Equal(t, GroupKey{ProductName: "Hoodie", ProductID: 200}, groups[1].Key)
	assert.Equal(t, GroupKey{ProductName: "Tee", ProductID: 300}, groups[2].Key)

	// Rows sharing (name, id) land in one group regardless of position,
	// in input order.
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, int64(1), groups[0].Rows[0].VariantID)
	assert.Equal(t, int64(2), groups[0].Rows[1].VariantID)

	// Same name, different id is a separate group.
	assert.Len(t, groups[2].Rows, 1)
	assert.Equal(t, int64(3), groups[2].Rows[0].VariantID)
}

func TestGroupRowsEmpty(t *testing.T) {
	assert.Empty(t, GroupRows(nil))
}

func TestRowHasLabel(t *testing.T) {
	assert.False(t, Row{}.HasLabel())
	assert.True(t, Row{InsideLabel: "https://example.com/label.png"}.HasLabel())
}
