package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxDescriptionLength is the maximum number of characters in a description.
	MaxDescriptionLength = 120

	// MaxAmountDecimals is the maximum number of fractional digits of an amount.
	MaxAmountDecimals = 2
)

// MaxAmount is the largest amount a single expense can have.
var MaxAmount = decimal.NewFromInt(1_000_000)

// Validate checks an expense against the domain rules.
//
// Rules are checked in a fixed order and the first violation is returned
// as a *ValidationError. today is the current date of the caller's clock
// and is used to reject expenses in the future.
func Validate(e Expense, today types.Date) error {
	if !e.Amount.Valid {
		return invalid("amount", "Amount is required")
	}

	amount := e.Amount.Decimal
	if !amount.IsPositive() {
		return invalid("amount", "Amount must be > 0")
	}

	if -amount.Exponent() > MaxAmountDecimals {
		return invalid("amount", fmt.Sprintf("Amount can have at most %d decimals", MaxAmountDecimals))
	}

	if amount.GreaterThan(MaxAmount) {
		return invalid("amount", "Amount must be <= 1,000,000")
	}

	description := strings.TrimSpace(e.Description)
	if description == "" {
		return invalid("description", "Description is required")
	}

	if utf8.RuneCountInString(norm.NFC.String(description)) > MaxDescriptionLength {
		return invalid("description", fmt.Sprintf("Description max length is %d", MaxDescriptionLength))
	}

	if strings.TrimSpace(e.Category) == "" {
		return invalid("category", "Category is required")
	}

	if !IsCategory(e.Category) {
		return invalid("category", fmt.Sprintf("Category must be one of: [%s]", strings.Join(categories, ", ")))
	}

	if e.ExpenseDate.IsZero() {
		return invalid("expenseDate", "Date is required")
	}

	if e.ExpenseDate.After(today) {
		return invalid("expenseDate", "Date cannot be in the future")
	}

	return nil
}
