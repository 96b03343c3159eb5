package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"expenses/models"
)

// MemoryStore 内存存储，用于测试及 database.driver=memory
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	items  []models.Expense
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Create 写入消费记录
func (s *MemoryStore) Create(_ context.Context, in models.NewExpense) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.Expense{
		ID:        s.nextID,
		Amount:    in.Amount,
		Category:  in.Category,
		Note:      copyNote(in.Note),
		Date:      in.Date,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.items = append(s.items, e)

	out := e
	out.Note = copyNote(e.Note)
	return &out, nil
}

// List 查询消费记录，日期倒序
func (s *MemoryStore) List(_ context.Context, filter ListFilter) ([]models.Expense, error) {
	out := s.match(func(e models.Expense) bool {
		if filter.DateFrom != nil && e.Date.Before(*filter.DateFrom) {
			return false
		}
		if filter.DateTo != nil && e.Date.After(*filter.DateTo) {
			return false
		}
		return filter.Category == "" || e.Category == filter.Category
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// DeleteByID 删除消费记录
func (s *MemoryStore) DeleteByID(_ context.Context, id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ListInRange 查询时间区间内的消费记录，按写入顺序
func (s *MemoryStore) ListInRange(_ context.Context, from, to time.Time) ([]models.Expense, error) {
	out := s.match(func(e models.Expense) bool {
		return !e.Date.Before(from) && !e.Date.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) match(keep func(models.Expense) bool) []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Expense, 0, len(s.items))
	for _, e := range s.items {
		if keep(e) {
			e.Note = copyNote(e.Note)
			out = append(out, e)
		}
	}
	return out
}

func copyNote(note *string) *string {
	if note == nil {
		return nil
	}
	n := *note
	return &n
}
