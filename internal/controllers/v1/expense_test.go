package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.Expense {
	if !e.Amount.Valid {
		e.Amount = decimal.NewNullDecimal(decimal.RequireFromString("12.50"))
	}

	if e.Description == "" {
		e.Description = "Coffee"
	}

	if e.Category == "" {
		e.Category = "Food"
	}

	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = types.NewDate(2024, time.January, 10)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/expenses", e)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseResponse
	test.DecodeResponse(t, &r, &expense)

	return expense.Data
}

func (suite *TestSuiteStandard) listExpenses(query string) v1.ExpenseListResponse {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses"+query, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("4.5")),
		Description: "  Train ticket  ",
		Category:    "Transport",
		ExpenseDate: types.NewDate(2024, time.March, 2),
	})

	suite.Assert().NotZero(expense.ID)
	suite.Assert().False(expense.CreatedAt.IsZero())
	suite.Assert().Equal("4.50", expense.Amount)
	suite.Assert().Equal("Train ticket", expense.Description)
	suite.Assert().Equal("Transport", expense.Category)
	suite.Assert().Equal(types.NewDate(2024, time.March, 2), expense.ExpenseDate)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/expenses/%d", expense.ID), expense.Links.Self)
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	tests := []struct {
		name    string
		body    any
		status  int
		message string
		field   string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty", ""},
		{"Broken JSON", `{ "amount": 12`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again", ""},
		{"Missing amount", `{ "description": "Coffee", "category": "Food", "expenseDate": "2024-01-10" }`, http.StatusBadRequest, "Amount is required", "amount"},
		{"Zero amount", `{ "amount": "0", "description": "Coffee", "category": "Food", "expenseDate": "2024-01-10" }`, http.StatusBadRequest, "Amount must be > 0", "amount"},
		{"Too many decimals", `{ "amount": "1.005", "description": "Coffee", "category": "Food", "expenseDate": "2024-01-10" }`, http.StatusBadRequest, "Amount can have at most 2 decimals", "amount"},
		{"Blank description", `{ "amount": "1", "description": "   ", "category": "Food", "expenseDate": "2024-01-10" }`, http.StatusBadRequest, "Description is required", "description"},
		{"Unknown category", `{ "amount": "1", "description": "Coffee", "category": "Pets", "expenseDate": "2024-01-10" }`, http.StatusBadRequest, "Category must be one of: [Food, Transport, Bills, Entertainment, Others]", "category"},
		{"Missing date", `{ "amount": "1", "description": "Coffee", "category": "Food" }`, http.StatusBadRequest, "Date is required", "expenseDate"},
		{"Future date", `{ "amount": "1", "description": "Coffee", "category": "Food", "expenseDate": "2999-01-01" }`, http.StatusBadRequest, "Date cannot be in the future", "expenseDate"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response struct {
				Error string `json:"error"`
				Field string `json:"field"`
			}
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Equal(tt.message, response.Error)
			suite.Assert().Equal(tt.field, response.Field)
		})
	}

	suite.Assert().Empty(suite.listExpenses("").Data, "Invalid expenses must not be stored")
}

func (suite *TestSuiteStandard) TestExpensesList() {
	response := suite.listExpenses("")
	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)
	suite.Assert().Equal("0.00", response.Total)

	older := suite.createTestExpense(suite.T(), v1.ExpenseEditable{ExpenseDate: types.NewDate(2024, time.January, 1)})
	newest := suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("100")),
		Category:    "Bills",
		ExpenseDate: types.NewDate(2024, time.February, 1),
	})
	sameDay := suite.createTestExpense(suite.T(), v1.ExpenseEditable{ExpenseDate: types.NewDate(2024, time.January, 1)})

	response = suite.listExpenses("")
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(newest.ID, response.Data[0].ID)
	suite.Assert().Equal(sameDay.ID, response.Data[1].ID, "Expenses on the same day are listed newest first")
	suite.Assert().Equal(older.ID, response.Data[2].ID)
	suite.Assert().Equal("125.00", response.Total)
}

func (suite *TestSuiteStandard) TestExpensesListFilter() {
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "Food"})
	bills := suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewNullDecimal(decimal.RequireFromString("80.99")),
		Category: "Bills",
	})

	response := suite.listExpenses("?category=Bills")
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(bills.ID, response.Data[0].ID)
	suite.Assert().Equal("80.99", response.Total)

	response = suite.listExpenses("?category=Entertainment")
	suite.Assert().Len(response.Data, 0)
	suite.Assert().Equal("0.00", response.Total)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses?category=bills", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("the category filter must be one of the categories listed at /v1/categories", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})

	recorder := test.Request(suite.T(), suite.router, http.MethodPut, expense.Links.Self, v1.ExpenseEditable{
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("30")),
		Description: "Concert",
		Category:    "Entertainment",
		ExpenseDate: types.NewDate(2024, time.January, 12),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal(expense.ID, updated.Data.ID)
	suite.Assert().Equal("30.00", updated.Data.Amount)
	suite.Assert().Equal("Concert", updated.Data.Description)
	suite.Assert().Equal("Entertainment", updated.Data.Category)
	suite.Assert().Equal(types.NewDate(2024, time.January, 12), updated.Data.ExpenseDate)
	suite.Assert().True(expense.CreatedAt.Equal(updated.Data.CreatedAt), "Creation time must not change on update")

	response := suite.listExpenses("")
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Concert", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestExpensesUpdateInvalid() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})

	recorder := test.Request(suite.T(), suite.router, http.MethodPut, expense.Links.Self, `{ "amount": "-5", "description": "Coffee", "category": "Food", "expenseDate": "2024-01-10" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal("Amount must be > 0", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	response := suite.listExpenses("")
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("12.50", response.Data[0].Amount, "Invalid updates must not be stored")
}

func (suite *TestSuiteStandard) TestExpensesUpdateNonExistent() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "http://example.com/v1/expenses/4711", `{ "amount": "5", "description": "Coffee", "category": "Food", "expenseDate": "2024-01-10" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("there is no expense for the ID you specified", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	suite.Assert().Empty(suite.listExpenses("").Data, "Updating a missing expense must not create one")
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})
	kept := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	response := suite.listExpenses("")
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(kept.ID, response.Data[0].ID)

	// Deleting again is not an error
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestExpensesInvalidID() {
	tests := []struct {
		method string
		id     string
	}{
		{http.MethodPut, "NotAnID"},
		{http.MethodPut, "0"},
		{http.MethodDelete, "-1"},
		{http.MethodDelete, "1.5"},
	}

	for _, tt := range tests {
		suite.Run(fmt.Sprintf("%s %s", tt.method, tt.id), func() {
			recorder := test.Request(suite.T(), suite.router, tt.method, "http://example.com/v1/expenses/"+tt.id, `{}`)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
			suite.Assert().Equal("the specified expense ID is not a positive integer", test.DecodeError(suite.T(), recorder.Body.Bytes()))
		})
	}
}
