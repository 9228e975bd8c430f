package server

import (
	"context"
	"net/http"

	"fitclub/internal/auth"
	"fitclub/internal/config"
	"fitclub/internal/kv"
	"fitclub/internal/profile"
	"fitclub/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
	store  *store.Store
}

func New(st *store.Store, blobs kv.Store, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitTTL))

	profileHandler := profile.NewHandler(profile.NewService(blobs, cfg.JWTSecret))
	storeHandler := store.NewHandler(st)

	public := router.Group("/auth")
	{
		public.POST("/register", profileHandler.Register)
		public.POST("/login", profileHandler.Login)
		public.POST("/refresh", profileHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", profileHandler.GetMe)

		protected.GET("/classes", storeHandler.ListClasses)
		protected.GET("/classes/:classID", storeHandler.GetClass)
		protected.POST("/classes/:classID/book", storeHandler.BookClass)
		protected.POST("/classes/:classID/cancel", storeHandler.CancelClass)

		protected.GET("/workouts", storeHandler.ListCatalog)
		protected.POST("/workouts", storeHandler.LogWorkout)
		protected.GET("/progress", storeHandler.ListProgress)

		protected.GET("/goals", storeHandler.ListGoals)
		protected.POST("/goals", storeHandler.AddGoal)
		protected.POST("/goals/:goalID/progress", storeHandler.UpdateGoalProgress)

		protected.GET("/nutrition", storeHandler.GetNutrition)
		protected.POST("/nutrition/water", storeHandler.AddWater)
		protected.POST("/nutrition/meals", storeHandler.LogMeal)
	}

	router.GET("/health", Health)
	router.GET("/ready", Ready(st))
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		config: cfg,
		store:  st,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
