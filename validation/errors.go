// Package validation 请求参数校验与规范化：日期解析、消费记录校验、月份参数
package validation

import "strings"

// 校验失败提示，作为接口契约的一部分保持稳定
const (
	MsgAmountInvalid    = "amount must be a positive number"
	MsgCategoryRequired = "category is required and must be non-empty"
	MsgDateInvalid      = "date is required and must be valid (ISO or YYYY-MM-DD)"
	MsgFromInvalid      = "from must be valid date (YYYY-MM-DD)"
	MsgToInvalid        = "to must be valid date (YYYY-MM-DD)"
	MsgMonthInvalid     = "month must be YYYY-MM"
)

// ValidationError 用户输入不合法，可能同时包含多条原因
type ValidationError struct {
	Messages []string
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error 以 "; " 拼接所有原因
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
