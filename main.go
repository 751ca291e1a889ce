package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testblog/config"
	"testblog/handlers"
	"testblog/helper"
	"testblog/middleware"
	"testblog/models"
	"testblog/repositories"
	"testblog/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	logger, sync := config.NewLogger()
	defer sync()

	db := config.InitDB()
	if err := config.SeedData(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		logger.Fatal("validator init failed", zap.Error(err))
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	userService := services.NewUserService(userRepo, roleRepo, logger)
	authService := services.NewAuthService(userService, logger)
	articleService := services.NewArticleService(articleRepo, logger)
	tagService := services.NewTagService(tagRepo, logger)
	commentService := services.NewCommentService(commentRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService)
	tagHandler := handlers.NewTagHandler(tagService, articleService)
	commentHandler := handlers.NewCommentHandler(commentService, articleService)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		profile := api.Group("/profile", middleware.AuthMiddleware())
		{
			profile.GET("", authHandler.GetProfile)
			profile.POST("/password", authHandler.ChangePassword)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", middleware.OptionalAuth(), articleHandler.GetArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.POST("", middleware.AuthMiddleware(), articleHandler.CreateArticle)
			articles.PUT("/:id", middleware.AuthMiddleware(), articleHandler.UpdateArticle)
			articles.DELETE("/:id", middleware.AuthMiddleware(), articleHandler.DeleteArticle)
			articles.POST("/:id/publish", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleModerator), articleHandler.PublishArticle)
			articles.POST("/:id/unpublish", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleModerator), articleHandler.UnpublishArticle)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.GET("/:id/articles", middleware.OptionalAuth(), tagHandler.GetTagArticles)

			moderated := tags.Group("", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleModerator))
			{
				moderated.POST("", tagHandler.CreateTag)
				moderated.PUT("/:id", tagHandler.UpdateTag)
				moderated.DELETE("/:id", tagHandler.DeleteTag)
			}
		}

		comments := api.Group("/comments")
		{
			comments.GET("/article/:article_id", commentHandler.GetCommentsByArticle)
			comments.GET("/:id", commentHandler.GetComment)
			comments.GET("/:id/replies", commentHandler.GetReplies)
			comments.POST("", middleware.AuthMiddleware(), commentHandler.CreateComment)
			comments.PUT("/:id", middleware.AuthMiddleware(), commentHandler.UpdateComment)
			comments.DELETE("/:id", middleware.AuthMiddleware(), commentHandler.DeleteComment)
			comments.POST("/:id/approve", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleModerator), commentHandler.ApproveComment)
		}

		users := api.Group("/users", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/roles", userHandler.GetUserRoles)
			users.POST("/:id/roles", userHandler.AssignRole)
			users.DELETE("/:id/roles/:role", userHandler.RevokeRole)
			users.POST("/:id/activate", userHandler.SetActive(true))
			users.POST("/:id/deactivate", userHandler.SetActive(false))
		}
	}

	srv := &http.Server{
		Addr:         ":" + getPort(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown did not complete cleanly", zap.Error(err))
	}
	logger.Info("server stopped")
}

func getPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
