package app

import (
	"elearn_backend/docs"
	"elearn_backend/internal/config"
	"elearn_backend/internal/middleware"
	"elearn_backend/internal/model"
	"elearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公開ルート（ログイン不要）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// 2. 認証必須ルート
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// クイズ・学習履歴・診断
		authGroup.GET("/quiz/genres", c.quiz.GetGenres)
		authGroup.GET("/quiz/questions", c.quiz.GetQuestions)
		authGroup.POST("/quiz/submit", c.quiz.Submit)
		authGroup.GET("/learning-logs", c.quiz.GetHistory)
		authGroup.GET("/diagnosis", c.diagnosis.Diagnose)
		authGroup.GET("/diagnosis/cached", c.diagnosis.GetCached)

		// 問題バンク（閲覧）
		authGroup.GET("/questions", c.question.ListAll)
		authGroup.GET("/questions/common", c.question.ListCommon)

		// コース（閲覧）
		authGroup.GET("/courses", c.course.List)
	}

	// 3. 管理ルート（ADMIN 以上。MASTER は常に通過）
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleSuperAdmin, model.RoleAdmin))
	{
		adminGroup.GET("/users", c.user.List)
		adminGroup.POST("/users", c.user.Create)
		adminGroup.PUT("/users/:id", c.user.Update)
		adminGroup.DELETE("/users/:id", c.user.Deactivate)

		adminGroup.GET("/departments", c.org.ListDepartments)
		adminGroup.POST("/departments", c.org.CreateDepartment)
		adminGroup.PUT("/departments/:id", c.org.UpdateDepartment)
		adminGroup.DELETE("/departments/:id", c.org.DeleteDepartment)

		adminGroup.GET("/sections", c.org.ListSections)
		adminGroup.POST("/sections", c.org.CreateSection)
		adminGroup.PUT("/sections/:id", c.org.UpdateSection)
		adminGroup.DELETE("/sections/:id", c.org.DeleteSection)

		adminGroup.POST("/questions", c.question.Create)
		adminGroup.PUT("/questions/:id", c.question.Update)
		adminGroup.POST("/questions/:id/copy", c.question.CopyToCompany)
		adminGroup.DELETE("/questions/:id", c.question.Remove)

		adminGroup.POST("/courses", c.course.Create)
		adminGroup.PUT("/courses/:id", c.course.Update)
		adminGroup.PATCH("/courses/:id/publish", c.course.Publish)
		adminGroup.DELETE("/courses/:id", c.course.Delete)
	}

	// 4. MASTER 専用ルート（会社管理）
	masterGroup := router.Group("/api/admin")
	masterGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware())
	{
		masterGroup.GET("/companies", c.org.ListCompanies)
		masterGroup.POST("/companies", c.org.CreateCompany)
		masterGroup.PUT("/companies/:id", c.org.UpdateCompany)
		masterGroup.DELETE("/companies/:id", c.org.DeleteCompany)
	}
}
