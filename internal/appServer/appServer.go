package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/activity-registration/config"
	repository "github.com/ds124wfegd/activity-registration/internal/database/postgres"
	cache "github.com/ds124wfegd/activity-registration/internal/database/redis"
	"github.com/ds124wfegd/activity-registration/internal/pkg/kafka"
	"github.com/ds124wfegd/activity-registration/internal/service"
	"github.com/ds124wfegd/activity-registration/internal/transport"
	"github.com/ds124wfegd/activity-registration/internal/worker"

	"github.com/ds124wfegd/activity-registration/pkg/postgres"
	"github.com/ds124wfegd/activity-registration/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12}, // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	activityRepo := repository.NewActivityRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Initialize agenda cache
	var agendaCache *cache.AgendaCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		agendaCache = cache.NewAgendaCache(redisClient, cfg.Agenda.CacheTTL)
		logrus.Info("Agenda cache initialized")
	} else {
		logrus.Warn("Redis disabled, agenda reads go straight to postgres")
	}

	// Initialize reservation event producer
	var producer kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		logrus.Info("Reservation event producer initialized")
	}

	// Initialize services
	enrollmentService := service.NewEnrollmentService(activityRepo, reservationRepo, agendaCache, producer)
	agendaService := service.NewAgendaService(activityRepo, placeRepo, agendaCache)
	activityService := service.NewActivityService(activityRepo, placeRepo, agendaCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize agenda refresh worker
	if agendaCache != nil {
		refreshWorker := worker.NewAgendaRefreshWorker(agendaService, cfg.Worker.RefreshInterval)
		go refreshWorker.Start(ctx)
		logrus.Info("Agenda refresh worker started")
	}

	// Initialize handlers
	activityHandler := transport.NewActivityHandler(activityService)
	agendaHandler := transport.NewAgendaHandler(agendaService)
	enrollmentHandler := transport.NewEnrollmentHandler(enrollmentService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(activityHandler, agendaHandler, enrollmentHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
