package v1_test

import (
	"net/http"

	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal([]string{"Food", "Transport", "Bills", "Entertainment", "Others"}, response.Data)
}
