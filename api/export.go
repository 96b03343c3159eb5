package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"expenses/models"
	"expenses/store"
)

const exportSheetName = "Expenses"

// ExportHandler 导出处理器
type ExportHandler struct {
	store store.ExpenseStore
	log   logrus.FieldLogger
}

// NewExportHandler 创建导出处理器
func NewExportHandler(s store.ExpenseStore, log logrus.FieldLogger) *ExportHandler {
	return &ExportHandler{store: s, log: log}
}

// Export 导出消费记录
// @Summary 导出消费记录
// @Description 按与列表接口相同的筛选条件导出消费记录为 CSV 或 Excel 文件
// @Tags 导出
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "导出格式" Enums(csv,xlsx) default(csv)
// @Param from query string false "开始日期 (2024-01-01)"
// @Param to query string false "结束日期 (2024-01-31)"
// @Param category query string false "类别筛选"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/expenses/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		BadRequest(c, "format must be csv or xlsx")
		return
	}

	filter, err := listFilterFromQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expenses, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		requestLogger(c, h.log).WithError(err).Error("查询导出数据失败")
		InternalError(c, SafeErrorMessage(err, "failed to export expenses"))
		return
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "xlsx":
		data, err = buildXLSX(expenses)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		data, err = buildCSV(expenses)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		requestLogger(c, h.log).WithError(err).WithField("format", format).Error("生成导出文件失败")
		InternalError(c, "failed to build export file")
		return
	}

	filename := fmt.Sprintf("expenses_%s.%s", time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

var exportHeaders = []string{"id", "amount", "category", "note", "date"}

func exportRow(e models.Expense) []string {
	note := ""
	if e.Note != nil {
		note = *e.Note
	}
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		decimal.NewFromFloat(e.Amount).StringFixed(2),
		e.Category,
		note,
		FormatInstant(e.Date),
	}
}

func buildCSV(expenses []models.Expense) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, e := range expenses {
		if err := writer.Write(exportRow(e)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildXLSX(expenses []models.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	f.SetColWidth(exportSheetName, "A", "A", 8)
	f.SetColWidth(exportSheetName, "B", "C", 14)
	f.SetColWidth(exportSheetName, "D", "D", 30)
	f.SetColWidth(exportSheetName, "E", "E", 26)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cell, header)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, e := range expenses {
		row := i + 2
		note := ""
		if e.Note != nil {
			note = *e.Note
		}
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), e.Amount)
		f.SetCellValue(exportSheetName, fmt.Sprintf("C%d", row), e.Category)
		f.SetCellValue(exportSheetName, fmt.Sprintf("D%d", row), note)
		f.SetCellValue(exportSheetName, fmt.Sprintf("E%d", row), FormatInstant(e.Date))
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}

	// 合计行
	totalRow := len(expenses) + 2
	f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", totalRow), "total")
	f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", totalRow), total.Round(2).InexactFloat64())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
