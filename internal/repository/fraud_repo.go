package repository

import (
	"context"
	"errors"

	"fraud-detection-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

type FraudRepository struct {
	db *gorm.DB
}

func NewFraudRepository(db *gorm.DB) *FraudRepository {
	return &FraudRepository{db: db}
}

// Count returns the number of stored frauds.
func (r *FraudRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Fraud{}).Count(&n).Error
	return n, err
}

// FraudPage is one page of frauds, newest first.
type FraudPage struct {
	Data        []models.Fraud `json:"data"`
	CurrentPage int            `json:"current_page"`
	PerPage     int            `json:"per_page"`
	Total       int64          `json:"total"`
	LastPage    int            `json:"last_page"`
}

type CategoryCount struct {
	Category float64 `json:"category"`
	Count    int64   `json:"count"`
}

type FraudStats struct {
	Total         int64           `json:"total"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	ByCategory    []CategoryCount `json:"by_category"`
}

// Create inserts a single fraud row.
func (r *FraudRepository) Create(ctx context.Context, fraud *models.Fraud) error {
	return r.db.WithContext(ctx).Create(fraud).Error
}

// GetByID fetch a single fraud by ID
func (r *FraudRepository) GetByID(ctx context.Context, id uint) (*models.Fraud, error) {
	var fraud models.Fraud
	err := r.db.WithContext(ctx).First(&fraud, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fraud, nil
}

// Paginate returns page (1-based) of perPage frauds ordered by creation time descending.
func (r *FraudRepository) Paginate(ctx context.Context, page, perPage int) (FraudPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	result := FraudPage{
		Data:        []models.Fraud{},
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    1,
	}

	total, err := r.Count(ctx)
	if err != nil {
		return result, err
	}
	result.Total = total
	if total > 0 {
		result.LastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	if page > result.LastPage {
		return result, nil
	}

	err = newestFirst(r.db.WithContext(ctx)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&result.Data).Error
	return result, err
}

// Recent returns the n most recently created frauds.
func (r *FraudRepository) Recent(ctx context.Context, n int) ([]models.Fraud, error) {
	frauds := []models.Fraud{}
	err := newestFirst(r.db.WithContext(ctx)).Limit(n).Find(&frauds).Error
	return frauds, err
}

type statRow struct {
	Category float64
	Count    int64
	Sum      decimal.Decimal
}

// Stats aggregates all stored frauds: count, amount totals and per-category counts.
func (r *FraudRepository) Stats(ctx context.Context) (FraudStats, error) {
	stats := FraudStats{ByCategory: []CategoryCount{}}
	var rows []statRow

	err := r.db.WithContext(ctx).Model(&models.Fraud{}).
		Select("category, COUNT(*) as count, COALESCE(SUM(amt),0) as sum").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}

	for _, row := range rows {
		stats.Total += row.Count
		stats.TotalAmount = stats.TotalAmount.Add(row.Sum)
		stats.ByCategory = append(stats.ByCategory, CategoryCount{Category: row.Category, Count: row.Count})
	}

	if stats.Total > 0 {
		stats.AverageAmount = stats.TotalAmount.Div(decimal.NewFromInt(stats.Total)).Round(2)
	}
	stats.TotalAmount = stats.TotalAmount.Round(2)

	return stats, nil
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
