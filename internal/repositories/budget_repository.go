package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{ID: id}
	if err := r.db.First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetAll retrieves all budgets
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("year ASC, month ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByMonthYear retrieves all budgets for a calendar month
func (r *budgetRepository) GetByMonthYear(month, year int) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("month = ? AND year = ?", month, year).
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets by month/year: %w", err)
	}
	return budgets, nil
}

// Update updates a budget
func (r *budgetRepository) Update(budget *models.Budget) error {
	if err := r.db.Save(budget).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
