package models_test

import (
	"testing"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []string{"Food", "Transport", "Bills", "Entertainment", "Others"}, models.Categories())
}

func TestCategoriesReturnsCopy(t *testing.T) {
	c := models.Categories()
	c[0] = "Changed"

	assert.Equal(t, "Food", models.Categories()[0])
	assert.False(t, models.IsCategory("Changed"))
}

func TestIsCategory(t *testing.T) {
	for _, c := range models.Categories() {
		assert.True(t, models.IsCategory(c), c)
	}

	assert.False(t, models.IsCategory(""))
	assert.False(t, models.IsCategory("Travel"))
	assert.False(t, models.IsCategory("FOOD"))
}
