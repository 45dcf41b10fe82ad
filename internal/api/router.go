package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skillshare/skillshare-api/docs"
	"github.com/skillshare/skillshare-api/internal/api/handler"
	"github.com/skillshare/skillshare-api/internal/api/middleware"
	"github.com/skillshare/skillshare-api/internal/core/ports"
	"github.com/skillshare/skillshare-api/internal/core/service"
	mongorepo "github.com/skillshare/skillshare-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/skillshare/skillshare-api/internal/infrastructure/db/redis"
)

// Deps carries everything the router needs to assemble the service graph.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens ports.TokenService
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skillshare"))

	// Token extraction runs on every route. A missing header means an
	// anonymous request; an invalid token is rejected even on public routes.
	e.Use(middleware.Authenticate(deps.Tokens))
	requireAuth := middleware.RequireAuth()

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	postRepo := mongorepo.NewPostRepository(deps.DB)
	commentRepo := mongorepo.NewCommentRepository(deps.DB)
	likeRepo := mongorepo.NewLikeRepository(deps.DB)
	planRepo := mongorepo.NewLearningPlanRepository(deps.DB)
	notificationRepo := mongorepo.NewNotificationRepository(deps.DB)

	// --- Services ---
	dedup := redisinfra.NewNotificationDedup(deps.Redis)
	notifier := service.NewNotifier(notificationRepo, dedup, deps.Log)

	authService := service.NewAuthService(userRepo, deps.Tokens)
	userService := service.NewUserService(userRepo, notifier, deps.Log)
	postService := service.NewPostService(postRepo, deps.Log)
	commentService := service.NewCommentService(commentRepo, postRepo, notifier, deps.Log)
	likeService := service.NewLikeService(likeRepo, postRepo, notifier, deps.Log)
	planService := service.NewLearningPlanService(planRepo, deps.Log)
	notificationService := service.NewNotificationService(notificationRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	planHandler := handler.NewLearningPlanHandler(planService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Users & follow graph ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.GET("/users/:id/private", userHandler.GetPrivate, requireAuth)
	e.PUT("/users/:id", userHandler.Update, requireAuth)
	e.DELETE("/users/:id", userHandler.Delete, requireAuth)
	e.POST("/users/:id/follow", userHandler.Follow, requireAuth)
	e.POST("/users/:id/unfollow", userHandler.Unfollow, requireAuth)
	e.GET("/users/:id/followers", userHandler.Followers)
	e.GET("/users/:id/following", userHandler.Following)

	// --- Posts ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create, requireAuth)
	e.PUT("/posts/:id", postHandler.Update, requireAuth)
	e.DELETE("/posts/:id", postHandler.Delete, requireAuth)

	// --- Comments ---
	e.GET("/posts/:id/comments", commentHandler.ListByPost)
	e.POST("/posts/:id/comments", commentHandler.Create, requireAuth)
	e.PUT("/posts/:id/comments/:commentId", commentHandler.Update, requireAuth)
	e.DELETE("/posts/:id/comments/:commentId", commentHandler.Delete, requireAuth)

	// --- Likes ---
	e.GET("/posts/:id/likes", likeHandler.ListByPost)
	e.POST("/posts/:id/likes", likeHandler.Add, requireAuth)
	e.DELETE("/posts/:id/likes", likeHandler.Remove, requireAuth)

	// --- Learning plans ---
	e.GET("/learning-plans", planHandler.List)
	e.GET("/learning-plans/:id", planHandler.Get)
	e.POST("/learning-plans", planHandler.Create, requireAuth)
	e.PUT("/learning-plans/:id", planHandler.Update, requireAuth)
	e.DELETE("/learning-plans/:id", planHandler.Delete, requireAuth)

	// --- Notifications (always owner-scoped) ---
	e.GET("/notifications", notificationHandler.List, requireAuth)
	e.PUT("/notifications/:id/read", notificationHandler.MarkRead, requireAuth)
	e.PUT("/notifications/read-all", notificationHandler.MarkAllRead, requireAuth)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
