package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		Name:    "Household",
		Balance: decimal.NewFromFloat(100.00),
	}

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal("USD", account.Currency)
	s.NotZero(account.CreatedAt)
	s.NotZero(account.UpdatedAt)
}

func (s *AccountRepositorySuite) TestCreate_InvalidCurrency() {
	account := &models.Account{
		Name:     "Household",
		Currency: "DOLLARS",
	}

	err := s.repo.Create(account)
	s.ErrorIs(err, models.ErrInvalidCurrency)
}

func (s *AccountRepositorySuite) TestGetByID() {
	account := database.CreateTestAccount(s.T(), s.db, "Household", decimal.NewFromFloat(250.00))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(account.ID, found.ID)
	s.Equal("Household", found.Name)
	s.True(found.Balance.Equal(decimal.NewFromFloat(250.00)))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetAll() {
	database.CreateTestAccount(s.T(), s.db, "Household", decimal.Zero)
	database.CreateTestAccount(s.T(), s.db, "Travel", decimal.Zero)

	accounts, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountRepositorySuite) TestUpdate() {
	account := database.CreateTestAccount(s.T(), s.db, "Household", decimal.Zero)

	account.Name = "Family"
	account.Balance = decimal.NewFromFloat(42.00)
	err := s.repo.Update(account)
	s.NoError(err)

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal("Family", found.Name)
	s.True(found.Balance.Equal(decimal.NewFromFloat(42.00)))
}

func (s *AccountRepositorySuite) TestDelete_CascadesTransactionsAndBudgets() {
	account := database.CreateTestAccount(s.T(), s.db, "Household", decimal.Zero)
	other := database.CreateTestAccount(s.T(), s.db, "Travel", decimal.Zero)

	tx := &models.Transaction{
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(-50.00),
		AccountID:   &account.ID,
	}
	s.NoError(s.db.Create(tx).Error)

	otherTx := &models.Transaction{
		Description: "Flight",
		Amount:      decimal.NewFromFloat(-300.00),
		AccountID:   &other.ID,
	}
	s.NoError(s.db.Create(otherTx).Error)

	budget := &models.Budget{
		Category:    "Food",
		LimitAmount: decimal.NewFromFloat(500.00),
		Month:       6,
		Year:        2025,
		AccountID:   &account.ID,
	}
	s.NoError(s.db.Create(budget).Error)

	err := s.repo.Delete(account.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(account.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	var txCount, budgetCount int64
	s.NoError(s.db.Model(&models.Transaction{}).Count(&txCount).Error)
	s.NoError(s.db.Model(&models.Budget{}).Count(&budgetCount).Error)
	s.Equal(int64(1), txCount) // the other account's transaction survives
	s.Equal(int64(0), budgetCount)
}

func (s *AccountRepositorySuite) TestDelete_AbsentAccountIsNoOp() {
	database.CreateTestAccount(s.T(), s.db, "Household", decimal.Zero)

	err := s.repo.Delete(uuid.New())
	s.NoError(err)

	accounts, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(accounts, 1)
}

func (s *AccountRepositorySuite) TestAdjustBalance() {
	account := database.CreateTestAccount(s.T(), s.db, "Household", decimal.NewFromFloat(100.00))

	updated, err := s.repo.AdjustBalance(account.ID, decimal.NewFromFloat(-5.00))
	s.NoError(err)
	s.True(updated.Balance.Equal(decimal.NewFromFloat(95.00)))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(found.Balance.Equal(decimal.NewFromFloat(95.00)))
}

func (s *AccountRepositorySuite) TestAdjustBalance_NotFound() {
	_, err := s.repo.AdjustBalance(uuid.New(), decimal.NewFromFloat(10.00))
	s.ErrorIs(err, ErrAccountNotFound)
}

// Balance writes must be relative increments executed by the database. An
// absolute write of a value read into Go loses concurrent updates under READ
// COMMITTED, so this pins the statement shape.
func (s *AccountRepositorySuite) TestAdjustBalance_IncrementsInDatabase() {
	account := database.CreateTestAccount(s.T(), s.db, "Household", decimal.NewFromFloat(100.00))

	var updateSQL []string
	err := s.db.Callback().Update().After("gorm:update").Register("capture_update_sql", func(db *gorm.DB) {
		updateSQL = append(updateSQL, db.Statement.SQL.String())
	})
	s.Require().NoError(err)
	defer func() {
		_ = s.db.Callback().Update().Remove("capture_update_sql")
	}()

	updated, err := s.repo.AdjustBalance(account.ID, decimal.NewFromFloat(25.00))
	s.NoError(err)
	s.True(updated.Balance.Equal(decimal.NewFromFloat(125.00)))

	s.Require().NotEmpty(updateSQL)
	s.Contains(updateSQL[0], "balance + ?")
}
