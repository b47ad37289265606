package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutormatch/internal/config"
	"tutormatch/internal/database"
	"tutormatch/internal/middleware"
	"tutormatch/internal/modules/booking"
	"tutormatch/internal/modules/directory"
	"tutormatch/internal/modules/review"
	"tutormatch/internal/modules/slot"
	jwtsvc "tutormatch/internal/pkg/jwt"
	"tutormatch/internal/pkg/logger"
	"tutormatch/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(cfg.Environment)
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewTutorProfileRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	slotService := slot.NewService(slotRepo)
	slotHandler := slot.NewHandler(slotService)

	bookingService := booking.NewService(bookingRepo, slotRepo, userRepo, profileRepo, zlog)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo, userRepo)
	reviewHandler := review.NewHandler(reviewService)

	directoryService := directory.NewService(userRepo, profileRepo, reviewRepo)
	directoryHandler := directory.NewHandler(directoryService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"service": "tutormatch",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))

	tutor := protected.Group("")
	tutor.Use(middleware.TutorOnly())

	slotHandler.RegisterRoutes(protected, tutor)
	bookingHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)
	directoryHandler.RegisterRoutes(protected)

	zlog.Info("starting api",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
