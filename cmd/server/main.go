package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/fadilmartias/ai-interviewer/internal/domain/fiber/handler"
	"github.com/fadilmartias/ai-interviewer/internal/metrics"
	"github.com/fadilmartias/ai-interviewer/internal/middleware"
	"github.com/fadilmartias/ai-interviewer/internal/repository"
	"github.com/fadilmartias/ai-interviewer/internal/service"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Uploads are capped per route; this only has to fit the largest one plus
// the form fields sent with it.
const bodyLimit = 12 * 1024 * 1024

type stores struct {
	jobs       repository.JobStore
	interviews repository.InterviewStore
	close      func(context.Context) error
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zlog := newLogger(appConfig)
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, dir := range []string{appConfig.UploadDir, appConfig.AudioDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			zlog.Fatal("could not create directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: bodyLimit,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: appConfig.CORSOrigins,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.Metrics())
	limits := config.LoadRateLimitConfig()
	app.Use(middleware.RateLimiter("global", limits.GlobalMax, limits.Window))

	app.Static("/audio", appConfig.AudioDir)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	st, err := connectStores(ctx, zlog)
	if err != nil {
		zlog.Fatal("could not connect to database", zap.Error(err))
	}

	groqConfig := config.LoadGroqConfig()
	breakerConfig := config.LoadBreakerConfig()
	groqClient := service.NewGroqClient(groqConfig)

	chat, err := service.NewChatService(ctx, groqClient, groqConfig, config.LoadGeminiConfig(), zlog)
	if err != nil {
		zlog.Fatal("could not create chat service", zap.Error(err))
	}
	chat = service.NewBreakerChatService("chat", chat, breakerConfig, zlog)
	transcriber := service.NewBreakerTranscriptionService("transcription",
		service.NewGroqTranscriptionService(groqClient, groqConfig.TranscriptionModel, zlog), breakerConfig, zlog)
	speech := service.NewScriptSpeechService(config.LoadSpeechConfig(), appConfig.AudioDir, zlog)

	interviewUC := usecase.NewInterviewUsecase(chat, transcriber, speech, st.interviews, zlog)

	api := app.Group("/api")
	handler.NewResumeHandler(usecase.NewResumeUsecase(chat, nil, zlog), appConfig.UploadDir).RegisterRoutes(api.Group("/resume"))
	handler.NewJobHandler(usecase.NewJobUsecase(st.jobs, zlog)).RegisterRoutes(api.Group("/jobs"))
	handler.NewInterviewHandler(interviewUC, appConfig.UploadDir).RegisterRoutes(api.Group("/interview"))
	handler.NewAIHandler(interviewUC, appConfig.UploadDir).RegisterRoutes(api.Group("/ai"))
	handler.NewVoiceHandler(usecase.NewVoiceUsecase(speech)).RegisterRoutes(api.Group("/voice"))

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zlog.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server running", zap.String("port", appConfig.Port), zap.String("env", appConfig.Env))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Error("server stopped", zap.Error(err))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.close(closeCtx); err != nil {
		zlog.Warn("could not close database", zap.Error(err))
	}
}

func newLogger(appConfig *config.AppConfig) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if appConfig.IsProduction() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("could not create logger: %v", err)
	}
	return l.With(zap.String("app", appConfig.Name))
}

func connectStores(ctx context.Context, zlog *zap.Logger) (*stores, error) {
	dbConfig := config.LoadDBConfig()

	switch dbConfig.Driver {
	case config.DriverPostgres:
		db, err := ConnectDB(dbConfig)
		if err != nil {
			return nil, err
		}
		zlog.Info("connected to postgres", zap.String("host", dbConfig.Host), zap.String("db", dbConfig.Name))
		return &stores{
			jobs:       repository.NewJobRepository(db),
			interviews: repository.NewInterviewRepository(db),
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	case config.DriverMongo:
		client, err := repository.NewMongoClient(ctx, dbConfig.MongoURI, dbConfig.MongoDBName)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureIndexes(ctx); err != nil {
			zlog.Warn("could not create interview index", zap.Error(err))
		}
		zlog.Info("connected to mongo", zap.String("db", dbConfig.MongoDBName))
		return &stores{
			jobs:       repository.NewMongoJobRepository(client),
			interviews: repository.NewMongoInterviewRepository(client),
			close:      client.Disconnect,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", dbConfig.Driver)
	}
}

func ConnectDB(dbConfig *config.DBConfig) (*gorm.DB, error) {
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := repository.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
