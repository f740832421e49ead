package models

import (
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Expense is a single recorded expense.
//
// ID and CreatedAt are owned by the store. They are zero until the
// expense has been inserted and must never be set by callers.
type Expense struct {
	ID          uint                `json:"id" gorm:"primaryKey;autoIncrement" example:"17"`                                                                 // ID of the expense, assigned on insert
	Amount      decimal.NullDecimal `json:"amount" gorm:"type:DECIMAL(10,2);not null;check:amount_positive,amount > 0" swaggertype:"string" example:"12.50"` // The amount, positive with at most two decimals
	Description string              `json:"description" gorm:"size:120;not null;check:description_length,length(description) <= 120" example:"Coffee"`       // What the money was spent on
	Category    string              `json:"category" gorm:"size:40;not null;check:category_length,length(category) <= 40" example:"Food"`                    // One of the fixed categories
	ExpenseDate types.Date          `json:"expenseDate" gorm:"not null" swaggertype:"string" example:"2024-01-10"`                                           // The day the expense happened
	CreatedAt   time.Time           `json:"createdAt" gorm:"type:timestamp;default:CURRENT_TIMESTAMP" example:"2024-01-10T19:28:44.491514Z"`                 // Time the expense was recorded
}

// TableName sets the table name.
func (Expense) TableName() string {
	return "expenses"
}

// IsPersisted reports whether the store has assigned an ID.
func (e Expense) IsPersisted() bool {
	return e.ID != 0
}

// BeforeSave trims whitespace from string fields. The description is
// stored in NFC so that its length in the database matches the length
// checked by Validate.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = norm.NFC.String(strings.TrimSpace(e.Description))
	e.Category = strings.TrimSpace(e.Category)
	return nil
}

// AfterFind updates the timestamps to use UTC as timezone.
//
// Drivers return them in the session time zone, which differs
// between PostgreSQL and SQLite.
func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.CreatedAt = e.CreatedAt.In(time.UTC)
	return nil
}
