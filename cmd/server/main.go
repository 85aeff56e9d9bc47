package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"

	config "socialpulse/configs"
	"socialpulse/internal/ai"
	"socialpulse/internal/api/handlers"
	"socialpulse/internal/api/middleware"
	job "socialpulse/internal/jobs"
	"socialpulse/internal/mailer"
	"socialpulse/internal/queue"
	"socialpulse/internal/repository"
	"socialpulse/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	aiDataRepo := repository.NewAiDataRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	postMediaRepo := repository.NewPostMediaRepository(db)

	mail := mailer.New(cfg.SMTP)
	aiClient := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)

	authService := service.NewAuthService(*cfg, userRepo, mail)
	userService := service.NewUserService(userRepo)
	r2Service := service.NewR2Service(*cfg)
	postService := service.NewPostService(postRepo, engagementRepo)
	mediaService := service.NewMediaService(db, postRepo, mediaAssetRepo, postMediaRepo, r2Service)
	accountService := service.NewAccountService(socialAccountRepo)
	templateService := service.NewTemplateService(templateRepo)
	analyticsService := service.NewAnalyticsService(aiDataRepo, postRepo, engagementRepo, socialAccountRepo)
	aiService := service.NewAiService(aiClient, aiDataRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService, userService)
	app.Post("/api/auth/signup", auth.Signup)
	app.Post("/api/auth/verify-email", auth.VerifyEmail)
	app.Post("/api/auth/resend-otp", auth.ResendOTP)
	app.Post("/api/auth/login", auth.Login)
	app.Post("/api/auth/logout", auth.Logout)
	app.Post("/api/auth/forgot-password", auth.ForgotPassword)
	app.Post("/api/auth/verify-reset-token", auth.VerifyResetToken)
	app.Post("/api/auth/reset-password", auth.ResetPassword)
	app.Get("/api/auth/check-auth", auth.CheckAuth)
	app.Get("/api/auth/linkedin", auth.LinkedinLogin)
	app.Get("/api/auth/linkedin/callback", auth.LinkedinCallback)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(*cfg, userService)
	api.Get("/user/info", user.GetUserInfo)
	api.Delete("/user", user.RemoveUser)

	post := handlers.NewPostHandler(postService, mediaService, client)
	api.Post("/posts", post.CreatePost)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/:id", post.GetPost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.RemovePost)
	api.Post("/posts/:id/schedule", post.SchedulePost)
	api.Post("/posts/:id/media", post.UploadMedia)
	api.Get("/posts/:id/media", post.ListMedia)
	api.Get("/posts/:id/engagement", post.GetEngagement)
	api.Put("/posts/:id/engagement", post.UpsertEngagement)

	account := handlers.NewAccountHandler(accountService, analyticsService)
	api.Post("/social-accounts", account.ConnectAccount)
	api.Get("/social-accounts", account.ListAccounts)
	api.Put("/social-accounts/:id/settings", account.UpdateSettings)
	api.Delete("/social-accounts/:id", account.DisconnectAccount)
	api.Get("/social-accounts/:id/analytics", account.AccountAnalytics)

	template := handlers.NewTemplateHandler(templateService)
	api.Post("/templates", template.CreateTemplate)
	api.Get("/templates", template.ListTemplates)
	api.Get("/templates/:id", template.GetTemplate)
	api.Put("/templates/:id", template.UpdateTemplate)
	api.Delete("/templates/:id", template.RemoveTemplate)

	aiHandler := handlers.NewAiHandler(aiService)
	api.Post("/ai/generate-post", aiHandler.GeneratePost)
	api.Post("/ai/generate-hashtags", aiHandler.GenerateHashtags)
	api.Post("/ai/generate-caption", aiHandler.GenerateCaption)
	api.Post("/ai/generate-comment", aiHandler.GenerateComment)
	api.Post("/ai/content-suggestions", aiHandler.ContentSuggestions)
	api.Post("/ai/analyze-performance", aiHandler.AnalyzePerformance)
	api.Post("/ai/comment", aiHandler.GenerateEngagementComment)
	api.Post("/ai/analyze-post", aiHandler.AnalyzePost)

	dashboard := handlers.NewDashboardHandler(analyticsService)
	api.Get("/dashboard", dashboard.Summary)
	api.Get("/ai/analytics", dashboard.UserAnalytics)
	api.Put("/ai/engagement/:id", dashboard.UpdateEngagement)

	// cron jobs
	tokenExpiryJob := job.NewTokenExpiryJob(socialAccountRepo)

	// queue
	queueW := queue.NewQueue(postRepo)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", tokenExpiryJob.DeactivateExpiring)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
