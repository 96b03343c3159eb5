package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"expenses/models"
)

// CreateExpenseInput 创建消费记录的原始请求体。
// 字段保留 JSON 原始类型，由 ValidateCreate 负责类型转换。
type CreateExpenseInput struct {
	Amount   any `json:"amount" swaggertype:"number" example:"15.5"`
	Category any `json:"category" swaggertype:"string" example:"Food"`
	Note     any `json:"note" swaggertype:"string" example:"Lunch"`
	Date     any `json:"date" swaggertype:"string" example:"2026-02-20"`
}

// DateRange 列表查询的日期范围，nil 表示不限制
type DateRange struct {
	From *time.Time
	To   *time.Time
}

var msgCategoryNotAllowed = "category must be one of: " + strings.Join(models.GetCategories(), ", ")

// ValidateCreate 校验并规范化新建消费记录。
// 三项检查全部执行，错误合并为一个 *ValidationError。
func ValidateCreate(in CreateExpenseInput) (*models.NewExpense, error) {
	var errs []string

	amount, ok := parseAmount(in.Amount)
	if !ok {
		errs = append(errs, MsgAmountInvalid)
	}

	category, _ := in.Category.(string)
	category = strings.TrimSpace(category)
	if category == "" {
		errs = append(errs, MsgCategoryRequired)
	} else if !models.IsValidCategory(category) {
		errs = append(errs, msgCategoryNotAllowed)
	}

	date, ok := ParseDateValue(in.Date)
	if !ok {
		errs = append(errs, MsgDateInvalid)
	}

	if len(errs) > 0 {
		return nil, newValidationError(errs...)
	}

	return &models.NewExpense{
		Amount:   amount,
		Category: category,
		Note:     normalizeNote(in.Note),
		Date:     date,
	}, nil
}

// ValidateQueryFilters 校验列表查询的 from / to，空字符串表示未传。
// 返回的 To 未做扩展，调用方需用 EndOfDay 扩展到当天结束。
func ValidateQueryFilters(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		t, ok := ParseDate(from)
		if !ok {
			return DateRange{}, newValidationError(MsgFromInvalid)
		}
		r.From = &t
	}
	if to != "" {
		t, ok := ParseDate(to)
		if !ok {
			return DateRange{}, newValidationError(MsgToInvalid)
		}
		r.To = &t
	}
	return r, nil
}

// parseAmount 接受 JSON 数字或数字字符串，必须为有限正数
func parseAmount(v any) (float64, bool) {
	var n float64
	switch a := v.(type) {
	case float64:
		n = a
	case json.Number:
		d, err := decimal.NewFromString(a.String())
		if err != nil {
			return 0, false
		}
		n = d.InexactFloat64()
	case string:
		s := strings.TrimSpace(a)
		if s == "" {
			return 0, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, false
		}
		n = d.InexactFloat64()
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return n, true
}

// normalizeNote 去除首尾空白，空白备注规范化为 nil
func normalizeNote(v any) *string {
	var s string
	switch n := v.(type) {
	case nil:
		return nil
	case string:
		s = n
	case float64:
		s = strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(n)
	default:
		s = fmt.Sprint(n)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
