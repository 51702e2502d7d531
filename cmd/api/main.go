package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medcenter/portal-api/internal/config"
	"github.com/medcenter/portal-api/internal/handler"
	appointmenthandler "github.com/medcenter/portal-api/internal/handler/appointment"
	authhandler "github.com/medcenter/portal-api/internal/handler/auth"
	billinghandler "github.com/medcenter/portal-api/internal/handler/billing"
	dashboardhandler "github.com/medcenter/portal-api/internal/handler/dashboard"
	doctorhandler "github.com/medcenter/portal-api/internal/handler/doctor"
	patienthandler "github.com/medcenter/portal-api/internal/handler/patient"
	prescriptionhandler "github.com/medcenter/portal-api/internal/handler/prescription"
	recordhandler "github.com/medcenter/portal-api/internal/handler/record"
	viewhandler "github.com/medcenter/portal-api/internal/handler/view"
	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/repository/memory"
	"github.com/medcenter/portal-api/internal/router"
	"github.com/medcenter/portal-api/internal/seed"
	appointmentservice "github.com/medcenter/portal-api/internal/service/appointment"
	billingservice "github.com/medcenter/portal-api/internal/service/billing"
	dashboardservice "github.com/medcenter/portal-api/internal/service/dashboard"
	doctorservice "github.com/medcenter/portal-api/internal/service/doctor"
	patientservice "github.com/medcenter/portal-api/internal/service/patient"
	prescriptionservice "github.com/medcenter/portal-api/internal/service/prescription"
	recordservice "github.com/medcenter/portal-api/internal/service/record"
	sessionservice "github.com/medcenter/portal-api/internal/service/session"
	"github.com/medcenter/portal-api/internal/sessionfile"
	"github.com/medcenter/portal-api/internal/view"
	"github.com/medcenter/portal-api/internal/worker"
	"github.com/medcenter/portal-api/pkg/auth"
	"github.com/medcenter/portal-api/pkg/logger"
	"github.com/medcenter/portal-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	m := metrics.NewMetrics(cfg.Metrics.Namespace)

	// Repositories
	doctorRepo := memory.NewDoctorRepository()
	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	billRepo := memory.NewBillRepository()
	recordRepo := memory.NewMedicalRecordRepository()
	prescriptionRepo := memory.NewPrescriptionRepository()

	ctx := context.Background()
	if err := seed.Load(ctx, seed.Repositories{
		Doctors:       doctorRepo,
		Patients:      patientRepo,
		Appointments:  appointmentRepo,
		Bills:         billRepo,
		Records:       recordRepo,
		Prescriptions: prescriptionRepo,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to load bootstrap data")
	}

	// Session layer
	sessionStore := sessionfile.NewStore(cfg.Session.FilePath)
	tokenSvc := auth.NewTokenService(auth.Config{
		Secret:      cfg.JWT.Secret,
		ExpiryHours: cfg.JWT.ExpiryHours,
	})
	sessionSvc := sessionservice.NewService(seed.Credentials(), sessionStore, tokenSvc)

	// Services
	doctorSvc := doctorservice.NewService(doctorRepo, m)
	patientSvc := patientservice.NewService(patientRepo, m)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, patientRepo, doctorRepo, m)
	billingSvc := billingservice.NewService(billRepo, patientRepo, m)
	recordSvc := recordservice.NewService(recordRepo, patientRepo, doctorRepo, m)
	prescriptionSvc := prescriptionservice.NewService(prescriptionRepo, patientRepo, doctorRepo, appointmentRepo, m)
	dashboardSvc := dashboardservice.NewService(doctorRepo, patientRepo, appointmentRepo, billRepo)
	viewRouter := view.NewRouter(cfg.Views.Strict)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(sessionSvc)
	handlers := router.Handlers{
		Base:         handler.NewHandler(),
		Auth:         authhandler.NewHandler(sessionSvc, m),
		Doctor:       doctorhandler.NewHandler(doctorSvc),
		Patient:      patienthandler.NewHandler(patientSvc),
		Appointment:  appointmenthandler.NewHandler(appointmentSvc),
		Billing:      billinghandler.NewHandler(billingSvc),
		Record:       recordhandler.NewHandler(recordSvc),
		Prescription: prescriptionhandler.NewHandler(prescriptionSvc),
		Dashboard:    dashboardhandler.NewHandler(dashboardSvc),
		View:         viewhandler.NewHandler(viewRouter),
	}

	r := router.NewRouter(authMiddleware, handlers, m, router.Config{
		RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimit.Burst,
		CORS: middleware.CORSConfig{
			AllowOrigins: cfg.CORS.AllowedOrigins,
			AllowMethods: cfg.CORS.AllowedMethods,
			AllowHeaders: cfg.CORS.AllowedHeaders,
			MaxAge:       3600,
		},
	})
	r.Setup()

	// Billing sweep
	sweeper := worker.NewBillingSweepWorker(billingSvc, cfg.Billing.SweepSchedule, logger.NewLogger(nil))
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start billing sweep")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
