package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories_CatalogShape(t *testing.T) {
	cats := DefaultCategories()

	require.Len(t, cats, 7)
	for _, c := range cats {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Label)
		assert.Greater(t, c.AvgTime, 0, "category %s", c.ID)
		assert.Greater(t, c.Cap, 0, "category %s", c.ID)
		assert.NotEmpty(t, c.Services, "category %s", c.ID)
	}

	loans := FindCategory(cats, "loans")
	require.NotNil(t, loans)
	assert.NotNil(t, loans.FindService("salary_loan"))
	assert.Nil(t, loans.FindService("nonexistent"))
	assert.Nil(t, FindCategory(cats, "nonexistent"))
}

func TestNewDocument_OpenAndEmpty(t *testing.T) {
	doc := NewDocument("2026-02-14")

	assert.Equal(t, QueueOnline, doc.Status)
	assert.Equal(t, "2026-02-14", doc.Date)
	assert.Empty(t, doc.Reservations)
	assert.NotNil(t, doc.Board)
	assert.Nil(t, doc.Find("anything"))
}
