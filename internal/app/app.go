package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "markblog/internal/controller/http"
	"markblog/internal/repo/persistent"
	"markblog/internal/usecase"
	"markblog/pkg/cache"
	"markblog/pkg/config"
	"markblog/pkg/jwt"
	"markblog/pkg/logger"
	"markblog/pkg/middleware"
	"markblog/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "markblog/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, s3Client *s3.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	revocations := cache.NewRevocationStore(redisClient)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, revocations, s3Client, log)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, likeRepo, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, log)

	// Initialize HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase, log)
	postHandler := appHTTP.NewPostHandler(postUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase, log)
	likeHandler := appHTTP.NewLikeHandler(likeUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.AuthMiddleware(jwtService, revocations)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService, revocations)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", requireAuth, authHandler.Logout)
		auth.GET("/me", requireAuth, authHandler.Me)
		auth.POST("/avatar", requireAuth, authHandler.UploadAvatar)

		api.GET("/posts", optionalAuth, postHandler.ListPosts)
		api.GET("/posts/my", requireAuth, postHandler.ListMyPosts)
		api.POST("/posts", requireAuth, postHandler.CreatePost)
		api.GET("/posts/:id", optionalAuth, postHandler.GetPost)
		api.PUT("/posts/:id", requireAuth, postHandler.UpdatePost)
		api.DELETE("/posts/:id", requireAuth, postHandler.DeletePost)

		api.GET("/posts/:id/comments", optionalAuth, commentHandler.ListComments)
		api.POST("/posts/:id/comments", requireAuth, commentHandler.CreateComment)

		api.GET("/posts/:id/like-status", optionalAuth, likeHandler.GetLikeStatus)
		api.POST("/posts/:id/like", requireAuth, likeHandler.ToggleLike)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server before closing its backing connections
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("Server exited")
}
