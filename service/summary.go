package service

import (
	"math"

	"expenses/models"
)

// CategoryTotal 单个类别的小计
type CategoryTotal struct {
	Category string  `json:"category" example:"Food"`
	Total    float64 `json:"total" example:"15.5"`
}

// MonthlySummary 月度消费汇总
type MonthlySummary struct {
	Month      string          `json:"month" example:"2026-02"`
	Total      float64         `json:"total" example:"57.5"`
	ByCategory []CategoryTotal `json:"byCategory"`
}

// categoryTotals 按首次出现顺序累加各类别金额
type categoryTotals struct {
	index  map[string]int
	totals []CategoryTotal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{
		index:  make(map[string]int),
		totals: make([]CategoryTotal, 0),
	}
}

func (ct *categoryTotals) add(category string, amount float64) {
	if i, ok := ct.index[category]; ok {
		ct.totals[i].Total += amount
		return
	}
	ct.index[category] = len(ct.totals)
	ct.totals = append(ct.totals, CategoryTotal{Category: category, Total: amount})
}

// Summarize 汇总传入的消费记录，不关心时间窗口，Month 由调用方填写。
// 总额四舍五入到分；各类别小计保留原始累加值，不单独取整（兼容旧版接口行为）。
func Summarize(expenses []models.Expense) MonthlySummary {
	var total float64
	byCategory := newCategoryTotals()
	for _, e := range expenses {
		total += e.Amount
		byCategory.add(e.Category, e.Amount)
	}
	return MonthlySummary{
		Total:      RoundCents(total),
		ByCategory: byCategory.totals,
	}
}

// RoundCents 按 round(x*100)/100 取整到分，0.5 远离零
func RoundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
