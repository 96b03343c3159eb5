package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expenses/models"
)

// isoLayout ISO-8601，UTC，毫秒精度
const isoLayout = "2006-01-02T15:04:05.000Z"

// ErrorResponse 错误响应，多条校验错误已合并为一条消息
type ErrorResponse struct {
	Error string `json:"error" example:"amount must be a positive number"`
}

// SuccessResponse 无数据的成功响应
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ExpenseResponse 消费记录对外格式
type ExpenseResponse struct {
	ID       uint    `json:"id" example:"1"`
	Amount   float64 `json:"amount" example:"15.5"`
	Category string  `json:"category" example:"Food"`
	Note     *string `json:"note" example:"Lunch"`
	Date     string  `json:"date" example:"2026-02-20T00:00:00.000Z"`
}

// FormatInstant 格式化为 ISO-8601 UTC 字符串
func FormatInstant(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// NewExpenseResponse 转换为对外格式
func NewExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		Amount:   e.Amount,
		Category: e.Category,
		Note:     e.Note,
		Date:     FormatInstant(e.Date),
	}
}

// NewExpenseListResponse 批量转换，空列表序列化为 []
func NewExpenseListResponse(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, NewExpenseResponse(&expenses[i]))
	}
	return out
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
