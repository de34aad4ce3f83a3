package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetHandlerSuite defines the test suite for BudgetHandler
type BudgetHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockBudgetRepositoryInterface
	handler  *BudgetHandler
	echo     *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.mockRepo)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetHandlerSuite runs the test suite
func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

func (s *BudgetHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BudgetHandlerSuite) TestCreateBudget() {
	reqBody := dto.CreateBudgetRequest{
		Category:    "Food",
		LimitAmount: "500.00",
		Month:       6,
		Year:        2025,
	}

	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(budget *models.Budget) error {
		s.Equal("Food", budget.Category)
		s.True(budget.LimitAmount.Equal(decimal.NewFromFloat(500.00)))
		budget.ID = uuid.New()
		return nil
	})

	c, rec := s.createContext("POST", "/budgets", reqBody)
	s.NoError(s.handler.CreateBudget(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *BudgetHandlerSuite) TestCreateBudget_InvalidMonth() {
	reqBody := dto.CreateBudgetRequest{
		Category:    "Food",
		LimitAmount: "500.00",
		Month:       13,
		Year:        2025,
	}

	c, rec := s.createContext("POST", "/budgets", reqBody)
	s.NoError(s.handler.CreateBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerSuite) TestGetBudget_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrBudgetNotFound)

	c, rec := s.createContext("GET", "/budgets/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.GetBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BudgetHandlerSuite) TestListBudgets() {
	budgets := []models.Budget{
		{ID: uuid.New(), Category: "Food", Month: 6, Year: 2025},
	}
	s.mockRepo.EXPECT().GetAll().Return(budgets, nil)

	c, rec := s.createContext("GET", "/budgets", nil)
	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
}

func (s *BudgetHandlerSuite) TestListBudgets_ByPeriod() {
	s.mockRepo.EXPECT().GetByMonthYear(6, 2025).Return([]models.Budget{}, nil)

	c, rec := s.createContext("GET", "/budgets?month=6&year=2025", nil)
	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerSuite) TestListBudgets_BadMonth() {
	c, rec := s.createContext("GET", "/budgets?month=13&year=2025", nil)
	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerSuite) TestUpdateBudget() {
	id := uuid.New()
	existing := &models.Budget{
		ID:          id,
		Category:    "Food",
		LimitAmount: decimal.NewFromFloat(500.00),
		Month:       6,
		Year:        2025,
	}

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().Update(existing).Return(nil)

	reqBody := dto.UpdateBudgetRequest{
		Category:    "Groceries",
		LimitAmount: "750.00",
		Month:       7,
		Year:        2025,
	}
	c, rec := s.createContext("PUT", "/budgets/"+id.String(), reqBody)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.UpdateBudget(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Groceries", existing.Category)
	s.Equal(7, existing.Month)
}

func (s *BudgetHandlerSuite) TestDeleteBudget() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(id).Return(nil)

	c, rec := s.createContext("DELETE", "/budgets/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *BudgetHandlerSuite) TestDeleteBudget_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(id).Return(repositories.ErrBudgetNotFound)

	c, rec := s.createContext("DELETE", "/budgets/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
