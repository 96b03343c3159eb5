package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"expenses/api"
	"expenses/config"
	_ "expenses/docs"
	"expenses/events"
	"expenses/middleware"
	"expenses/store"
)

// Dependencies 路由依赖
type Dependencies struct {
	Store  store.ExpenseStore
	Events events.Publisher
	Logger *logrus.Logger
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(CORSMiddleware())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	expenseHandler := api.NewExpenseHandler(deps.Store, deps.Events, deps.Logger)
	summaryHandler := api.NewSummaryHandler(deps.Store, deps.Logger)
	exportHandler := api.NewExportHandler(deps.Store, deps.Logger)

	// 写接口限流
	writeGuard := func(c *gin.Context) { c.Next() }
	if cfg.App.RateLimit.Enabled {
		writeGuard = middleware.RateLimit(cfg.App.RateLimit.MaxRequests, cfg.App.RateLimit.Window)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/categories", expenseHandler.GetCategories)

		expenses := apiGroup.Group("/expenses")
		{
			expenses.POST("", writeGuard, expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/export", exportHandler.Export)
			expenses.DELETE("/:id", writeGuard, expenseHandler.Delete)
		}

		summary := apiGroup.Group("/summary")
		{
			summary.GET("/monthly", summaryHandler.Monthly)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
