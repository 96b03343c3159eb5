// Package store 消费记录持久化接口及其实现
package store

import (
	"context"
	"time"

	"expenses/models"
)

// ListFilter 列表查询条件，零值字段不参与过滤
type ListFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Category string
}

// ExpenseStore 消费记录存储。每次调用各自保证原子性。
type ExpenseStore interface {
	// Create 写入一条记录并返回分配了 ID 的结果
	Create(ctx context.Context, e models.NewExpense) (*models.Expense, error)
	// List 按条件查询，日期倒序
	List(ctx context.Context, filter ListFilter) ([]models.Expense, error)
	// DeleteByID 物理删除，返回删除的行数（0 或 1）
	DeleteByID(ctx context.Context, id uint) (int64, error)
	// ListInRange 查询 [from, to] 闭区间内的记录，按 id 正序
	ListInRange(ctx context.Context, from, to time.Time) ([]models.Expense, error)
}

var (
	_ ExpenseStore = (*GormStore)(nil)
	_ ExpenseStore = (*MemoryStore)(nil)
)
