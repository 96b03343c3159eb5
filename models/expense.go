package models

import (
	"time"
)

// Expense 消费记录模型
type Expense struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Category  string    `json:"category" gorm:"size:50;not null;index"`
	Note      *string   `json:"note" gorm:"size:255"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	CreatedAt time.Time `json:"-"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense 校验、规范化之后待写入的消费记录
type NewExpense struct {
	Amount   float64
	Category string
	Note     *string
	Date     time.Time
}

// Category 消费类别常量（固定集合，不支持动态扩展）
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryBills     = "Bills"
	CategoryShopping  = "Shopping"
	CategoryOther     = "Other"
)

// GetCategories 获取所有消费类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryBills,
		CategoryShopping,
		CategoryOther,
	}
}

// IsValidCategory 判断类别是否属于固定集合（区分大小写）
func IsValidCategory(name string) bool {
	for _, c := range GetCategories() {
		if c == name {
			return true
		}
	}
	return false
}
