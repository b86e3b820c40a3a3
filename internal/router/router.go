package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/launchlabs/leo-backend/docs"
	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/middleware"
	"github.com/launchlabs/leo-backend/internal/modules/handler"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
)

type RouterDeps struct {
	Config         *config.Config
	Log            *zap.Logger
	Redis          *redis.Client
	AuthService    service.AuthService
	AuthHandler    *handler.AuthHandler
	ProjectHandler *handler.ProjectHandler
	PledgeHandler  *handler.PledgeHandler
	UpdateHandler  *handler.UpdateHandler
	PostHandler    *handler.PostHandler
	FileHandler    *handler.FileHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// The session cookie is SameSite=None, so the browser only sends it
	// cross-origin when credentials are allowed here.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	if len(d.Config.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = d.Config.CORS.AllowOrigins
	} else {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	r.Use(cors.New(corsCfg))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// uploaded images, when stored on local disk
	if d.Config.Storage.Driver == "" || d.Config.Storage.Driver == "local" {
		r.Static(d.Config.Storage.BasePath, d.Config.Storage.LocalDir)
	}

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sessionAuth := middleware.SessionAuth(d.AuthService)
	loginWindow := time.Duration(d.Config.Redis.LoginWindowSec) * time.Second

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login",
				middleware.LoginRateLimit(d.Redis, d.Config.Redis.LoginLimit, loginWindow, d.Log),
				d.AuthHandler.Login)
			auth.GET("/check", sessionAuth, d.AuthHandler.Check)
		}

		files := v1.Group("/files")
		{
			files.POST("/upload/image", sessionAuth, d.FileHandler.UploadImage)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", d.PostHandler.ListPosts)
			posts.GET("/:post_id", d.PostHandler.GetPost)
			posts.POST("", sessionAuth, d.PostHandler.CreatePost)
			posts.DELETE("/:post_id", sessionAuth, d.PostHandler.DeletePost)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.GET("/:project_id", d.ProjectHandler.GetProject)

			// Every mutating route sits behind the session boundary.
			projects.POST("", sessionAuth, d.ProjectHandler.CreateProject)
			projects.PUT("/:project_id", sessionAuth, d.ProjectHandler.UpdateProject)
			projects.DELETE("/:project_id", sessionAuth, d.ProjectHandler.DeleteProject)

			projects.GET("/:project_id/pledges", d.PledgeHandler.ListPledges)
			projects.POST("/:project_id/pledges", sessionAuth, d.PledgeHandler.CreatePledge)

			projects.GET("/:project_id/updates", d.UpdateHandler.ListUpdates)
			projects.POST("/:project_id/updates", sessionAuth, d.UpdateHandler.CreateUpdate)
		}
	}

	return r
}
