package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"expenses/models"
)

// GormStore 基于 gorm 的存储实现，支持 mysql / postgres / sqlite
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建 gorm 存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Create 写入消费记录
func (s *GormStore) Create(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	expense := models.Expense{
		Amount:   in.Amount,
		Category: in.Category,
		Note:     in.Note,
		Date:     in.Date,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &expense, nil
}

// List 查询消费记录
func (s *GormStore) List(ctx context.Context, filter ListFilter) ([]models.Expense, error) {
	query := s.db.WithContext(ctx).Model(&models.Expense{})

	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	expenses := make([]models.Expense, 0)
	if err := query.Order("date DESC").Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// DeleteByID 删除消费记录
func (s *GormStore) DeleteByID(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete expense %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// ListInRange 查询时间区间内的消费记录，按写入顺序（id 正序）
func (s *GormStore) ListInRange(ctx context.Context, from, to time.Time) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("list expenses in range: %w", err)
	}
	return expenses, nil
}
