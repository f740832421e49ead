package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.PUT("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// OptionsExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httputil.HTTPError
//	@Param			id	path		integer	true	"ID of the expense"
//	@Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	_, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	httputil.OptionsPutDelete(c)
}

// GetExpenses returns all expenses
//
//	@Summary		Get expenses
//	@Description	Returns all expenses, the most recent first, together with the sum of their amounts
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	ExpenseListResponse
//	@Failure		400			{object}	httputil.HTTPError
//	@Failure		500			{object}	httputil.HTTPError
//	@Failure		503			{object}	httputil.HTTPError
//	@Param			category	query		string	false	"Filter by category"
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.ErrorHandler(c, httputil.ErrInvalidQueryString)
		return
	}

	if filter.Category != "" && !models.IsCategory(filter.Category) {
		httputil.ErrorHandler(c, httputil.ErrUnknownCategory)
		return
	}

	expenses, err := co.Service.ListExpenses(c.Request.Context())
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// When there are no expenses, we want an empty list, not null
	data := make([]Expense, 0)
	total := decimal.Zero
	for _, expense := range expenses {
		if filter.Category != "" && expense.Category != filter.Category {
			continue
		}

		data = append(data, newExpense(c, expense))
		total = total.Add(expense.Amount.Decimal)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data:  data,
		Total: total.StringFixed(models.MaxAmountDecimals),
	})
}

// CreateExpense creates a new expense
//
//	@Summary		Create expense
//	@Description	Validates and records a new expense
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Failure		503		{object}	httputil.HTTPError
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	expense := editable.model(0)
	err := co.Service.AddExpense(c.Request.Context(), &expense)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: newExpense(c, expense)})
}

// UpdateExpense overwrites an expense
//
//	@Summary		Update expense
//	@Description	Overwrites amount, description, category and date of an existing expense. All fields must be specified.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	ExpenseResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		404		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Failure		503		{object}	httputil.HTTPError
//	@Param			id		path		integer			true	"ID of the expense"
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	expense := editable.model(id)
	err = co.Service.UpdateExpense(c.Request.Context(), &expense)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// The store does not report missing expenses, so look it up to
	// return the stored state including the creation time
	expenses, err := co.Service.ListExpenses(c.Request.Context())
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	for _, e := range expenses {
		if e.ID == id {
			c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(c, e)})
			return
		}
	}

	httputil.ErrorHandler(c, httputil.ErrNotFound)
}

// DeleteExpense deletes an expense
//
//	@Summary		Delete expense
//	@Description	Deletes an expense. Deleting an expense that does not exist is not an error.
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Failure		503	{object}	httputil.HTTPError
//	@Param			id	path		integer	true	"ID of the expense"
//	@Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	err = co.Service.DeleteExpense(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
