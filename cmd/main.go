package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/database"
	_ "github.com/lshigami/examprep/docs" // Swagger docs - auto-generated
	"github.com/lshigami/examprep/internal/auth"
	"github.com/lshigami/examprep/internal/controller"
	userctrl "github.com/lshigami/examprep/internal/controller/user"
	"github.com/lshigami/examprep/internal/logger"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const janitorInterval = time.Minute

// @title Exam Prep Mock Exam API
// @version 1.0
// @description Timed mock exams over the licensure question bank: randomized pools, server-side countdown, one-shot scoring and review.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			auth.NewVerifier,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewExamResultRepository,
			repository.NewMistakeRepository,
			repository.NewProfileRepository,
			repository.NewQuestionSource,
			repository.NewResultSink,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreReportService,
			service.NewQuestionService,
			service.NewMockExamService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewQuestionController,
			userctrl.NewMockExamController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.SetLevel(cfg.LogLevel) }),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartSessionJanitor),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	sig := <-app.Done()
	log.Info().Str("signal", sig.String()).Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := log.Info()
		if param.StatusCode >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // zerolog already wrote the line
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:  cfg.Server.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", auth.GuestTokenHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 || corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", controller.Health)

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	verifier *auth.Verifier,
	profiles repository.ProfileRepository,
	mockExams service.MockExamService,
	questionCtrl *userctrl.QuestionController,
	mockExamCtrl *userctrl.MockExamController,
) {
	api := router.Group("/api/v1")
	api.Use(auth.Middleware(verifier, profiles))
	questionCtrl.RegisterRoutes(api)
	mockExamCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mock exam API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			serverErr := server.Shutdown(shutdownCtx)
			// Sessions may still be submitting; wait for their results to land.
			return errors.Join(serverErr, mockExams.Shutdown(ctx))
		},
	})
}

// StartSessionJanitor evicts stale sessions from memory until the app stops.
func StartSessionJanitor(lc fx.Lifecycle, cfg *config.Config, mockExams service.MockExamService) {
	if cfg.Exam.SessionTTL <= 0 {
		log.Warn().Msg("StartSessionJanitor: EXAM_SESSION_TTL is not positive, sessions are never evicted")
		return
	}
	interval := janitorInterval
	if quarter := cfg.Exam.SessionTTL / 4; quarter > 0 && quarter < interval {
		interval = quarter
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				mockExams.RunJanitor(ctx, interval)
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
