package api

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"expenses/events"
	"expenses/middleware"
	"expenses/models"
	"expenses/store"
	"expenses/validation"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	store  store.ExpenseStore
	events events.Publisher
	log    logrus.FieldLogger
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(s store.ExpenseStore, p events.Publisher, log logrus.FieldLogger) *ExpenseHandler {
	if p == nil {
		p = events.NoopPublisher{}
	}
	return &ExpenseHandler{store: s, events: p, log: log}
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 校验金额、类别、日期后写入一条消费记录。多个字段不合法时错误信息以 "; " 合并返回。
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body validation.CreateExpenseInput true "消费记录信息"
// @Success 201 {object} ExpenseResponse "创建成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req validation.CreateExpenseInput
	// 空请求体按全部字段缺失处理
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Error(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		BadRequest(c, "invalid JSON body")
		return
	}

	in, err := validation.ValidateCreate(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expense, err := h.store.Create(c.Request.Context(), *in)
	if err != nil {
		h.logger(c).WithError(err).Error("创建消费记录失败")
		InternalError(c, SafeErrorMessage(err, "failed to create expense"))
		return
	}

	h.publish(c, events.ExpenseCreated(expense))
	c.JSON(http.StatusCreated, NewExpenseResponse(expense))
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 按日期倒序返回消费记录，支持日期范围（to 包含当天）和类别筛选
// @Tags 消费记录
// @Produce json
// @Param from query string false "开始日期 (2024-01-01)"
// @Param to query string false "结束日期 (2024-01-31)"
// @Param category query string false "类别筛选"
// @Success 200 {array} ExpenseResponse "获取成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expenses, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		h.logger(c).WithError(err).Error("查询消费记录失败")
		InternalError(c, SafeErrorMessage(err, "failed to list expenses"))
		return
	}
	h.logger(c).WithField("count", len(expenses)).Debug("查询消费记录")

	c.JSON(http.StatusOK, NewExpenseListResponse(expenses))
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 按 ID 物理删除消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} SuccessResponse "删除成功"
// @Failure 400 {object} ErrorResponse "ID 不是整数"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok, err := parseExpenseID(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid id")
		return
	}
	// 负数或超出范围的整数不可能存在
	if !ok {
		NotFound(c, "Expense not found")
		return
	}

	deleted, err := h.store.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.logger(c).WithError(err).WithField("id", id).Error("删除消费记录失败")
		InternalError(c, SafeErrorMessage(err, "failed to delete expense"))
		return
	}
	if deleted == 0 {
		NotFound(c, "Expense not found")
		return
	}

	h.publish(c, events.ExpenseDeleted(id))
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetCategories 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 返回固定的消费类别集合
// @Tags 消费记录
// @Produce json
// @Success 200 {array} string "获取成功"
// @Router /api/categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.GetCategories())
}

// parseExpenseID 解析路径中的 ID。
// 非整数返回 err；整数但不在 ID 取值范围内时 ok 为 false。
func parseExpenseID(raw string) (id uint, ok bool, err error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n <= 0 || uint64(n) > math.MaxUint32 {
		return 0, false, nil
	}
	return uint(n), true, nil
}

// listFilterFromQuery 从 from / to / category 查询参数构造过滤条件，to 扩展到当天结束
func listFilterFromQuery(c *gin.Context) (store.ListFilter, error) {
	r, err := validation.ValidateQueryFilters(c.Query("from"), c.Query("to"))
	if err != nil {
		return store.ListFilter{}, err
	}

	filter := store.ListFilter{DateFrom: r.From}
	if r.To != nil {
		end := validation.EndOfDay(*r.To)
		filter.DateTo = &end
	}
	filter.Category = strings.TrimSpace(c.Query("category"))
	return filter, nil
}

func (h *ExpenseHandler) publish(c *gin.Context, evt events.Event) {
	if err := h.events.Publish(c.Request.Context(), evt); err != nil {
		h.logger(c).WithError(err).WithField("type", evt.Type).Warn("发布事件失败")
	}
}

func (h *ExpenseHandler) logger(c *gin.Context) logrus.FieldLogger {
	return requestLogger(c, h.log)
}

// requestLogger 附带请求 ID 的 logger
func requestLogger(c *gin.Context, log logrus.FieldLogger) logrus.FieldLogger {
	return log.WithField("request_id", middleware.GetRequestID(c))
}
