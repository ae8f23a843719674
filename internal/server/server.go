package server

import (
	"context"
	"net/http"
	"time"

	"gymplace/internal/attendance"
	"gymplace/internal/auth"
	"gymplace/internal/calendar"
	"gymplace/internal/config"
	"gymplace/internal/dashboard"
	"gymplace/internal/event"
	"gymplace/internal/gymclass"
	"gymplace/internal/instructor"
	"gymplace/internal/member"
	"gymplace/internal/registration"
	"gymplace/internal/specialhours"
	"gymplace/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router      *gin.Engine
	http        *http.Server
	stopLimiter func()
}

type handlers struct {
	users         *user.Handler
	members       *member.Handler
	instructors   *instructor.Handler
	classes       *gymclass.Handler
	registrations *registration.Handler
	attendance    *attendance.Handler
	events        *event.Handler
	specialHours  *specialhours.Handler
	calendar      *calendar.Handler
	dashboard     *dashboard.Handler
}

func newHandlers(db *sqlx.DB, cfg *config.Config, revoked auth.RevocationStore) handlers {
	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo)
	instructorService := instructor.NewService(instructor.NewRepository(db))
	registrationService := registration.NewService(registration.NewRepository(db), memberService)
	classService := gymclass.NewService(gymclass.NewRepository(db), instructorService, registrationService, memberService)
	attendanceService := attendance.NewService(attendance.NewRepository(db), memberService)
	eventService := event.NewService(event.NewRepository(db))
	hoursService := specialhours.NewService(specialhours.NewRepository(db))
	userService := user.NewService(user.NewRepository(db), memberRepo, cfg.JWTSecret, cfg.JWTRefreshSecret, revoked)

	return handlers{
		users:         user.NewHandler(userService),
		members:       member.NewHandler(memberService),
		instructors:   instructor.NewHandler(instructorService),
		classes:       gymclass.NewHandler(classService),
		registrations: registration.NewHandler(registrationService),
		attendance:    attendance.NewHandler(attendanceService),
		events:        event.NewHandler(eventService),
		specialHours:  specialhours.NewHandler(hoursService),
		calendar:      calendar.NewHandler(calendar.NewService(eventService, hoursService)),
		dashboard:     dashboard.NewHandler(dashboard.NewService(memberService, classService, registrationService, attendanceService)),
	}
}

// New wires every repository, service and handler onto one router.
// revoked may be nil, in which case logout cannot invalidate tokens early.
func New(db *sqlx.DB, cfg *config.Config, revoked auth.RevocationStore) *Server {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(), MetricsMiddleware(), corsMiddleware())

	limit, stopLimiter := RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	registerRoutes(router, newHandlers(db, cfg, revoked), cfg, revoked, limit)

	return &Server{
		router:      router,
		stopLimiter: stopLimiter,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func registerRoutes(router *gin.Engine, h handlers, cfg *config.Config, revoked auth.RevocationStore, limit gin.HandlerFunc) {
	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	requireAuth := auth.AuthMiddleware(cfg.JWTSecret, revoked)

	authRoutes := router.Group("/auth")
	authRoutes.Use(limit)
	{
		authRoutes.POST("/register", h.users.Register)
		authRoutes.POST("/login", h.users.Login)
		authRoutes.POST("/refresh", h.users.Refresh)
		authRoutes.POST("/logout", requireAuth, h.users.Logout)
	}

	public := router.Group("/")
	{
		public.GET("/stats", h.dashboard.Home)
		public.POST("/members/signup", h.members.Signup)
		public.GET("/classes", h.classes.Schedule)
		public.GET("/classes/:classID", auth.OptionalAuth(cfg.JWTSecret, revoked), h.classes.Detail)
		public.GET("/instructors", h.instructors.List)
		public.GET("/instructors/:instructorID", h.instructors.Get)
		public.GET("/info", h.calendar.Info)
		public.GET("/calendar", h.calendar.Month)
		public.GET("/events", h.events.Upcoming)
		public.GET("/special-hours", h.specialHours.Upcoming)
	}

	protected := router.Group("/")
	protected.Use(requireAuth)
	{
		protected.GET("/me", h.users.Me)
		protected.GET("/dashboard", h.dashboard.Dashboard)
		protected.GET("/profile", h.members.GetProfile)
		protected.PUT("/profile", h.members.UpdateProfile)
		protected.GET("/members", h.members.ListMembers)
		protected.GET("/members/:memberID", h.dashboard.MemberDetail)
		protected.POST("/classes/:classID/register", h.registrations.Register)
		protected.POST("/classes/:classID/cancel", h.registrations.Cancel)
		protected.GET("/registrations", h.registrations.ListMine)
		protected.POST("/check-in", h.attendance.CheckIn)
		protected.POST("/check-out", h.attendance.CheckOut)
		protected.GET("/check-ins", h.attendance.ListMine)
	}

	admin := router.Group("/admin")
	admin.Use(requireAuth, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/members", h.members.CreateMember)
		admin.POST("/members/:memberID/deactivate", h.members.Deactivate)
		admin.POST("/members/:memberID/reactivate", h.members.Reactivate)

		admin.POST("/classes", h.classes.Create)
		admin.PUT("/classes/:classID", h.classes.Update)
		admin.POST("/classes/:classID/activate", h.classes.Activate)
		admin.POST("/classes/:classID/deactivate", h.classes.Deactivate)
		admin.GET("/classes/:classID/registrations", h.registrations.ListForClass)

		admin.POST("/registrations/:registrationID/cancel", h.registrations.AdminCancel)
		admin.PUT("/registrations/:registrationID/attended", h.registrations.MarkAttended)

		admin.POST("/instructors", h.instructors.Create)
		admin.PUT("/instructors/:instructorID", h.instructors.Update)

		admin.POST("/events", h.events.Create)
		admin.PUT("/events/:eventID", h.events.Update)
		admin.POST("/events/:eventID/activate", h.events.Activate)
		admin.POST("/events/:eventID/deactivate", h.events.Deactivate)

		admin.POST("/special-hours", h.specialHours.Create)
		admin.PUT("/special-hours/:hoursID", h.specialHours.Update)
		admin.DELETE("/special-hours/:hoursID", h.specialHours.Delete)
	}
}

func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving on the configured port until Shutdown is called.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.stopLimiter()
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
