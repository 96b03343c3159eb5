package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"expenses/service"
	"expenses/store"
	"expenses/validation"
)

// SummaryHandler 汇总统计处理器
type SummaryHandler struct {
	store store.ExpenseStore
	log   logrus.FieldLogger
	now   func() time.Time
}

// NewSummaryHandler 创建汇总统计处理器
func NewSummaryHandler(s store.ExpenseStore, log logrus.FieldLogger) *SummaryHandler {
	return &SummaryHandler{store: s, log: log, now: time.Now}
}

// Monthly 获取月度汇总
// @Summary 获取月度汇总
// @Description 统计指定月份（默认当前月）的消费总额及各类别小计。总额取整到分，类别小计为原始累加值；类别按首次出现顺序排列。
// @Tags 统计
// @Produce json
// @Param month query string false "月份 (YYYY-MM)"
// @Success 200 {object} service.MonthlySummary "获取成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/summary/monthly [get]
func (h *SummaryHandler) Monthly(c *gin.Context) {
	month, err := validation.ParseMonth(c.Query("month"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if month == "" {
		month = validation.CurrentMonth(h.now())
	}

	start, end, err := validation.MonthWindow(month)
	if err != nil {
		BadRequest(c, validation.MsgMonthInvalid)
		return
	}

	expenses, err := h.store.ListInRange(c.Request.Context(), start, end)
	if err != nil {
		requestLogger(c, h.log).WithError(err).WithField("month", month).Error("查询月度消费失败")
		InternalError(c, SafeErrorMessage(err, "failed to load summary"))
		return
	}

	summary := service.Summarize(expenses)
	summary.Month = month
	c.JSON(http.StatusOK, summary)
}
