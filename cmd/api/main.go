package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"balanceai/internal/adapter"
	"balanceai/internal/cache"
	"balanceai/internal/config"
	"balanceai/internal/database"
	"balanceai/internal/domain"
	"balanceai/internal/handler"
	"balanceai/internal/logger"
	"balanceai/internal/middleware"
	"balanceai/internal/repository"
	"balanceai/internal/service"
	"balanceai/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXSQLiteDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Optional cache: the API degrades to uncached reads when Redis is
	// not reachable at startup.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, feed caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	txManager := repository.NewTransactionManagerAdapter(db)
	userRepository := repository.NewSQLXUserRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	wellnessRepository := repository.NewSQLXWellnessRepository(db)
	trackingRepository := repository.NewSQLXTrackingRepository(db)
	communityRepository := repository.NewSQLXCommunityRepository(db)
	familyRepository := repository.NewSQLXFamilyRepository(db)
	settingsRepository := repository.NewSQLXSettingsRepository(db)

	validator := validation.NewValidator()

	userService := service.NewUserService(userRepository, validator)
	settingsService := service.NewSettingsService(settingsRepository, userRepository, validator)
	quizService := service.NewQuizService(quizRepository, userRepository, txManager, validator)
	wellnessService := service.NewWellnessService(wellnessRepository, userRepository, validator)
	trackingService := service.NewTrackingService(trackingRepository, userRepository, txManager, validator)
	communityService := service.NewCommunityService(communityRepository, userRepository, txManager, cacheAdapter, cfg.Cache.FeedTTL, validator)
	dashboardService := service.NewDashboardService(quizRepository, trackingRepository, userRepository)
	familyService := service.NewFamilyService(familyRepository, userRepository, trackingRepository, quizRepository, validator)
	chatbotService := service.NewChatbotService(validator)

	userHandler := handler.NewUserHandler(userService, dashboardService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	quizHandler := handler.NewQuizHandler(quizService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	communityHandler := handler.NewCommunityHandler(communityService)
	familyHandler := handler.NewFamilyHandler(familyService)
	chatbotHandler := handler.NewChatbotHandler(chatbotService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", middleware.Protected(cfg.Auth))

	api.Get("/users", userHandler.GetUsers)
	api.Post("/users", userHandler.CreateUser)
	api.Put("/users", userHandler.UpdateUser)
	api.Delete("/users", userHandler.DeleteUser)
	api.Get("/users/:id/dashboard", userHandler.GetDashboard)
	api.Get("/users/:id/wellness-plan", wellnessHandler.GetWellnessPlanView)

	api.Get("/user-settings", settingsHandler.GetSettings)
	api.Post("/user-settings", settingsHandler.CreateSettings)
	api.Put("/user-settings", settingsHandler.UpdateSettings)
	api.Delete("/user-settings", settingsHandler.DeleteSettings)

	api.Post("/quiz/submit", quizHandler.SubmitQuiz)
	api.Get("/quiz-responses", quizHandler.GetResponses)
	api.Post("/quiz-responses", quizHandler.CreateResponse)
	api.Put("/quiz-responses", quizHandler.UpdateResponse)
	api.Delete("/quiz-responses", quizHandler.DeleteResponse)
	api.Get("/quiz-results", quizHandler.GetResults)
	api.Post("/quiz-results", quizHandler.CreateResult)
	api.Put("/quiz-results", quizHandler.UpdateResult)
	api.Delete("/quiz-results", quizHandler.DeleteResult)

	api.Get("/wellness-goals", wellnessHandler.GetGoals)
	api.Post("/wellness-goals", wellnessHandler.CreateGoal)
	api.Put("/wellness-goals", wellnessHandler.UpdateGoal)
	api.Delete("/wellness-goals", wellnessHandler.DeleteGoal)
	api.Get("/wellness-plans", wellnessHandler.GetPlans)
	api.Post("/wellness-plans", wellnessHandler.CreatePlan)
	api.Put("/wellness-plans", wellnessHandler.UpdatePlan)
	api.Delete("/wellness-plans", wellnessHandler.DeletePlan)

	api.Get("/user-metrics", trackingHandler.GetMetrics)
	api.Post("/user-metrics", trackingHandler.CreateMetric)
	api.Put("/user-metrics", trackingHandler.UpdateMetric)
	api.Delete("/user-metrics", trackingHandler.DeleteMetric)
	api.Get("/badges", trackingHandler.GetBadges)
	api.Post("/badges", trackingHandler.CreateBadge)
	api.Put("/badges", trackingHandler.UpdateBadge)
	api.Delete("/badges", trackingHandler.DeleteBadge)
	api.Get("/user-streaks", trackingHandler.GetStreaks)
	api.Post("/user-streaks", trackingHandler.CreateStreak)
	api.Put("/user-streaks", trackingHandler.UpdateStreak)
	api.Delete("/user-streaks", trackingHandler.DeleteStreak)
	api.Get("/daily-tasks", trackingHandler.GetTasks)
	api.Post("/daily-tasks", trackingHandler.CreateTask)
	api.Put("/daily-tasks", trackingHandler.UpdateTask)
	api.Delete("/daily-tasks", trackingHandler.DeleteTask)

	api.Get("/community/feed", communityHandler.GetFeed)
	api.Post("/community/posts/:id/like", communityHandler.ToggleLike)
	api.Get("/community-posts", communityHandler.GetPosts)
	api.Post("/community-posts", communityHandler.CreatePost)
	api.Put("/community-posts", communityHandler.UpdatePost)
	api.Delete("/community-posts", communityHandler.DeletePost)
	api.Get("/post-likes", communityHandler.GetLikes)
	api.Post("/post-likes", communityHandler.CreateLike)
	api.Delete("/post-likes", communityHandler.DeleteLike)
	api.Get("/post-comments", communityHandler.GetComments)
	api.Post("/post-comments", communityHandler.CreateComment)
	api.Put("/post-comments", communityHandler.UpdateComment)
	api.Delete("/post-comments", communityHandler.DeleteComment)

	api.Get("/family/:groupId/members", familyHandler.GetGroupMembers)
	api.Get("/family-members", familyHandler.GetMembers)
	api.Post("/family-members", familyHandler.CreateMember)
	api.Put("/family-members", familyHandler.UpdateMember)
	api.Delete("/family-members", familyHandler.DeleteMember)

	api.Post("/chatbot/message", chatbotHandler.SendMessage)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
