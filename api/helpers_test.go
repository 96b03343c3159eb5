package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"expenses/events"
	"expenses/models"
	"expenses/store"
)

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// failingStore 所有操作均返回错误
type failingStore struct{}

var errStoreDown = errors.New("store unavailable")

func (failingStore) Create(context.Context, models.NewExpense) (*models.Expense, error) {
	return nil, errStoreDown
}
func (failingStore) List(context.Context, store.ListFilter) ([]models.Expense, error) {
	return nil, errStoreDown
}
func (failingStore) DeleteByID(context.Context, uint) (int64, error) { return 0, errStoreDown }
func (failingStore) ListInRange(context.Context, time.Time, time.Time) ([]models.Expense, error) {
	return nil, errStoreDown
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRouter(s store.ExpenseStore, p events.Publisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := newTestLogger()

	expenseHandler := NewExpenseHandler(s, p, log)
	summaryHandler := NewSummaryHandler(s, log)
	exportHandler := NewExportHandler(s, log)

	r := gin.New()
	r.GET("/api/categories", expenseHandler.GetCategories)
	r.POST("/api/expenses", expenseHandler.Create)
	r.GET("/api/expenses", expenseHandler.List)
	r.GET("/api/expenses/export", exportHandler.Export)
	r.DELETE("/api/expenses/:id", expenseHandler.Delete)
	r.GET("/api/summary/monthly", summaryHandler.Monthly)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func mustCreate(t *testing.T, s store.ExpenseStore, amount float64, category string, date time.Time) *models.Expense {
	t.Helper()
	e, err := s.Create(context.Background(), models.NewExpense{Amount: amount, Category: category, Date: date})
	require.NoError(t, err)
	return e
}
