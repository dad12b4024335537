package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/api/handler"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/api/middleware"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/jwt"
)

// Setup builds the gin engine. rdb may be nil; the answer rate limiter
// then runs per process.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	users middleware.UserLoader,
	rdb middleware.WindowLimiter,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	admin := middleware.JWTAuth(jwtMgr, users)
	superAdmin := middleware.RequireLevel(jwtMgr, users, model.LevelSuperAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.System.Health)
		api.GET("/schema", superAdmin, h.System.Schema)

		// admin accounts
		accounts := api.Group("/admin")
		{
			accounts.POST("/login", h.Auth.Login)
			accounts.POST("/register", superAdmin, h.Auth.Register)
			accounts.GET("/me", admin, h.Auth.Me)
			accounts.POST("/reset-password", admin, h.Auth.ResetPassword)
			accounts.GET("/password-expired", admin, h.Auth.PasswordExpired)
		}

		// departments; :key is a slug or a numeric id
		departments := api.Group("/departments")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/slug/:slug", h.Department.GetDepartmentBySlug)
			departments.POST("", superAdmin, h.Department.CreateDepartment)
			departments.PUT("/:key", superAdmin, h.Department.UpdateDepartment)
			departments.DELETE("/:key", superAdmin, h.Department.DeleteDepartment)
			departments.GET("/:key/questions", h.Question.ListDepartmentQuestions)
			departments.POST("/:key/questions", admin, h.Question.CreateQuestion)
			departments.GET("/:key/active-question", h.Question.ActiveQuestion)
		}

		// questions and kiosk answers
		questions := api.Group("/questions")
		{
			questions.GET("", admin, h.Question.ListQuestions)
			questions.POST("/:questionId/answers",
				middleware.RateLimit(rdb, cfg.RateLimit.AnswersPerMinute, time.Minute, logger),
				h.Answer.SubmitAnswer,
			)
		}

		// dashboard reports
		reports := api.Group("/reports", admin)
		{
			reports.GET("", h.Report.Reports)
			reports.GET("/history", h.Report.History)
			reports.GET("/export", h.Export.ExportReport)
		}
		api.GET("/emoji-stats", admin, h.Report.EmojiStats)
	}

	return r
}
