package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

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
	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/pkg/metrics"
)

type Handlers struct {
	Base         *handler.Handler
	Auth         *authhandler.Handler
	Doctor       *doctorhandler.Handler
	Patient      *patienthandler.Handler
	Appointment  *appointmenthandler.Handler
	Billing      *billinghandler.Handler
	Record       *recordhandler.Handler
	Prescription *prescriptionhandler.Handler
	Dashboard    *dashboardhandler.Handler
	View         *viewhandler.Handler
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORS           middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
	metrics  *metrics.Metrics
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, m *metrics.Metrics, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidators()

	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
		metrics:  m,
	}

	engine.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.RequestID(),
	)

	engine.Use(middleware.CORS(config.CORS))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)
	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.setupProtectedRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.handlers.Base.LivenessCheck)
		health.GET("/ready", r.handlers.Base.ReadinessCheck)
		health.GET("/metrics", r.handlers.Base.MetricsHandler)
	}
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.handlers.Auth.RegisterRoutes(rg)

	// View resolution must work for anonymous callers, which resolve to
	// the login screen.
	views := rg.Group("/views")
	views.Use(r.auth.Optional())
	{
		views.GET("/resolve", r.handlers.View.Resolve)
		views.GET("/menu", r.handlers.View.Menu)
	}
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	r.handlers.Auth.RegisterProtectedRoutes(rg)

	rg.GET("/dashboard/stats", r.handlers.Dashboard.Stats)

	adminOnly := r.auth.RequireRole(model.RoleAdmin)
	staff := r.auth.RequireRole(model.RoleAdmin, model.RoleDoctor)

	doctors := rg.Group("/doctors")
	{
		doctors.GET("", r.handlers.Doctor.ListDoctors)
		doctors.GET("/:id", r.handlers.Doctor.GetDoctor)
		doctors.POST("", adminOnly, r.handlers.Doctor.CreateDoctor)
		doctors.PUT("/:id", adminOnly, r.handlers.Doctor.UpdateDoctor)
		doctors.DELETE("/:id", adminOnly, r.handlers.Doctor.DeleteDoctor)
	}

	patients := rg.Group("/patients")
	{
		patients.GET("", staff, r.handlers.Patient.ListPatients)
		patients.GET("/:id", staff, r.handlers.Patient.GetPatient)
		patients.POST("", adminOnly, r.handlers.Patient.CreatePatient)
		patients.PUT("/:id", adminOnly, r.handlers.Patient.UpdatePatient)
		patients.DELETE("/:id", adminOnly, r.handlers.Patient.DeletePatient)
	}

	appointments := rg.Group("/appointments")
	{
		appointments.GET("", r.handlers.Appointment.ListAppointments)
		appointments.GET("/:id", r.handlers.Appointment.GetAppointment)
		appointments.POST("", r.handlers.Appointment.CreateAppointment)
		appointments.PUT("/:id", staff, r.handlers.Appointment.UpdateAppointment)
		appointments.DELETE("/:id", adminOnly, r.handlers.Appointment.DeleteAppointment)
	}

	bills := rg.Group("/bills")
	{
		bills.GET("", r.auth.RequireRole(model.RoleAdmin, model.RolePatient), r.handlers.Billing.ListBills)
		bills.GET("/:id", r.auth.RequireRole(model.RoleAdmin, model.RolePatient), r.handlers.Billing.GetBill)
		bills.POST("", adminOnly, r.handlers.Billing.CreateBill)
		bills.PUT("/:id", adminOnly, r.handlers.Billing.UpdateBill)
		bills.DELETE("/:id", adminOnly, r.handlers.Billing.DeleteBill)
	}

	records := rg.Group("/records")
	{
		records.GET("", r.handlers.Record.ListRecords)
		records.GET("/:id", r.handlers.Record.GetRecord)
		records.POST("", staff, r.handlers.Record.CreateRecord)
	}

	prescriptions := rg.Group("/prescriptions")
	{
		prescriptions.GET("", r.handlers.Prescription.ListPrescriptions)
		prescriptions.GET("/:id", r.handlers.Prescription.GetPrescription)
		prescriptions.POST("", staff, r.handlers.Prescription.CreatePrescription)
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path).Inc()
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
