// Package events 消费记录领域事件发布
package events

import (
	"context"
	"encoding/json"
	"time"

	"expenses/models"
)

// 事件类型，同时作为 RabbitMQ routing key
const (
	TypeExpenseCreated = "expense.created"
	TypeExpenseDeleted = "expense.deleted"
)

// Event 领域事件
type Event struct {
	Type       string          `json:"type"`
	ExpenseID  uint            `json:"expense_id"`
	Expense    *models.Expense `json:"expense,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// ExpenseCreated 新建消费记录事件
func ExpenseCreated(e *models.Expense) Event {
	return Event{
		Type:       TypeExpenseCreated,
		ExpenseID:  e.ID,
		Expense:    e,
		OccurredAt: time.Now(),
	}
}

// ExpenseDeleted 删除消费记录事件
func ExpenseDeleted(id uint) Event {
	return Event{
		Type:       TypeExpenseDeleted,
		ExpenseID:  id,
		OccurredAt: time.Now(),
	}
}

// ToJSON 序列化事件
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher 事件发布者
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// NoopPublisher 未启用事件时使用，丢弃所有事件
type NoopPublisher struct{}

// Publish 丢弃事件
func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// Close 无需释放资源
func (NoopPublisher) Close() error { return nil }
