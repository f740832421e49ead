package v1

import (
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Amount      decimal.NullDecimal `json:"amount" swaggertype:"string" example:"12.50"`           // The amount, positive with at most two decimals
	Description string              `json:"description" example:"Coffee"`                          // What the money was spent on, at most 120 characters
	Category    string              `json:"category" example:"Food"`                               // One of the categories from /v1/categories
	ExpenseDate types.Date          `json:"expenseDate" swaggertype:"string" example:"2024-01-10"` // The day the expense happened, not in the future
}

func (editable ExpenseEditable) model(id uint) models.Expense {
	return models.Expense{
		ID:          id,
		Amount:      editable.Amount,
		Description: editable.Description,
		Category:    editable.Category,
		ExpenseDate: editable.ExpenseDate,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/17"` // The expense itself
}

type Expense struct {
	ID          uint         `json:"id" example:"17"`                                       // ID of the expense
	CreatedAt   time.Time    `json:"createdAt" example:"2024-01-10T19:28:44.491514Z"`       // Time the expense was recorded
	Amount      string       `json:"amount" example:"12.50"`                                // The amount with two decimals
	Description string       `json:"description" example:"Coffee"`                          // What the money was spent on
	Category    string       `json:"category" example:"Food"`                               // The category of the expense
	ExpenseDate types.Date   `json:"expenseDate" swaggertype:"string" example:"2024-01-10"` // The day the expense happened
	Links       ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		ID:          model.ID,
		CreatedAt:   model.CreatedAt,
		Amount:      model.Amount.Decimal.StringFixed(models.MaxAmountDecimals),
		Description: model.Description,
		Category:    model.Category,
		ExpenseDate: model.ExpenseDate,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%d", httputil.BaseURL(c), model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                  // List of expenses, the most recent first
	Total string    `json:"total" example:"42.10"` // Sum of the amounts of all listed expenses
}

type ExpenseResponse struct {
	Data Expense `json:"data"` // Data for the expense
}

type ExpenseQueryFilter struct {
	Category string `form:"category" example:"Food"` // Only list expenses of this category
}
