package models_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = types.NewDate(2024, 1, 15)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func validExpense() models.Expense {
	return models.Expense{
		Amount:      amount("12.50"),
		Description: "Coffee",
		Category:    models.CategoryFood,
		ExpenseDate: types.NewDate(2024, 1, 10),
	}
}

func TestValidateValid(t *testing.T) {
	assert.Nil(t, models.Validate(validExpense(), today))
}

func TestValidateBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.Expense)
	}{
		{"smallest amount", func(e *models.Expense) { e.Amount = amount("0.01") }},
		{"largest amount", func(e *models.Expense) { e.Amount = amount("1000000") }},
		{"largest amount with decimals", func(e *models.Expense) { e.Amount = amount("1000000.00") }},
		{"integer amount", func(e *models.Expense) { e.Amount = decimal.NewNullDecimal(decimal.NewFromInt(5)) }},
		{"description at max length", func(e *models.Expense) { e.Description = strings.Repeat("a", 120) }},
		{"description padded beyond max length", func(e *models.Expense) { e.Description = "  " + strings.Repeat("a", 120) + "  " }},
		{"multibyte description at max length", func(e *models.Expense) { e.Description = strings.Repeat("€", 120) }},
		{"decomposed characters are counted once", func(e *models.Expense) { e.Description = strings.Repeat("e\u0301", 120) }},
		{"expense today", func(e *models.Expense) { e.ExpenseDate = today }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.modify(&e)
			assert.Nil(t, models.Validate(e, today))
		})
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*models.Expense)
		field   string
		message string
	}{
		{"amount missing", func(e *models.Expense) { e.Amount = decimal.NullDecimal{} }, "amount", "Amount is required"},
		{"amount zero", func(e *models.Expense) { e.Amount = amount("0") }, "amount", "Amount must be > 0"},
		{"amount negative", func(e *models.Expense) { e.Amount = amount("-5") }, "amount", "Amount must be > 0"},
		{"amount with three decimals", func(e *models.Expense) { e.Amount = amount("1.005") }, "amount", "Amount can have at most 2 decimals"},
		{"amount with trailing zero decimals", func(e *models.Expense) { e.Amount = amount("1.500") }, "amount", "Amount can have at most 2 decimals"},
		{"amount too large", func(e *models.Expense) { e.Amount = amount("1000000.01") }, "amount", "Amount must be <= 1,000,000"},
		{"description empty", func(e *models.Expense) { e.Description = "" }, "description", "Description is required"},
		{"description blank", func(e *models.Expense) { e.Description = " \t\n " }, "description", "Description is required"},
		{"description too long", func(e *models.Expense) { e.Description = strings.Repeat("a", 121) }, "description", "Description max length is 120"},
		{"category empty", func(e *models.Expense) { e.Category = "" }, "category", "Category is required"},
		{"category blank", func(e *models.Expense) { e.Category = "   " }, "category", "Category is required"},
		{"category unknown", func(e *models.Expense) { e.Category = "Travel" }, "category", "Category must be one of: [Food, Transport, Bills, Entertainment, Others]"},
		{"category wrong case", func(e *models.Expense) { e.Category = "food" }, "category", "Category must be one of: [Food, Transport, Bills, Entertainment, Others]"},
		{"date missing", func(e *models.Expense) { e.ExpenseDate = types.Date{} }, "expenseDate", "Date is required"},
		{"date in the future", func(e *models.Expense) { e.ExpenseDate = today.AddDays(1) }, "expenseDate", "Date cannot be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.modify(&e)

			err := models.Validate(e, today)
			require.NotNil(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)

			var validationErr *models.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Error())
		})
	}
}

// A record breaking several rules reports the first one only.
func TestValidateFailsFast(t *testing.T) {
	e := models.Expense{
		Amount:      amount("-1"),
		Description: "",
		Category:    "Nope",
		ExpenseDate: today.AddDays(10),
	}

	err := models.Validate(e, today)
	assert.EqualError(t, err, "Amount must be > 0")
}

func TestValidateIgnoresStoreOwnedFields(t *testing.T) {
	e := validExpense()
	e.ID = 42

	assert.Nil(t, models.Validate(e, today))
}
