package server

import (
	"context"
	"net/http"

	"github.com/showprojectts/criativoio/internal/account"
	"github.com/showprojectts/criativoio/internal/admin"
	"github.com/showprojectts/criativoio/internal/auth"
	"github.com/showprojectts/criativoio/internal/config"
	"github.com/showprojectts/criativoio/internal/credits"
	"github.com/showprojectts/criativoio/internal/generation"
	"github.com/showprojectts/criativoio/internal/history"
	"github.com/showprojectts/criativoio/internal/notifier"
	"github.com/showprojectts/criativoio/internal/provider"
	"github.com/showprojectts/criativoio/internal/recharge"
	"github.com/showprojectts/criativoio/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, rt *notifier.Notifier, denylist auth.Revoker) *Server {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	var providerClient provider.Client
	if cfg.ProviderAPIKey == "" {
		providerClient = provider.NewMockClient()
	} else {
		providerClient = provider.NewHTTPClient(cfg.ProviderURL, cfg.ProviderAPIKey, cfg.ProviderTimeout)
	}

	creditsRepo := credits.NewRepository(db)
	historyRepo := history.NewRepository(db)
	txRepo := recharge.NewRepository(db)
	userRepo := user.NewRepository(db)

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	creditsHandler := credits.NewHandler(db)
	historyHandler := history.NewHandler(db)
	adminHandler := admin.NewHandler(db)
	notifierHandler := notifier.NewHandler(rt)

	rechargeService := recharge.NewService(txRepo, creditsRepo, rt)
	rechargeHandler := recharge.NewHandler(rechargeService)

	generationService := generation.NewService(creditsRepo, historyRepo, providerClient, rt)
	generationHandler := generation.NewHandler(generationService)

	purgeService := account.NewService(historyRepo, creditsRepo, txRepo, userRepo, denylist)
	accountHandler := account.NewHandler(purgeService)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	// The recharge confirmation comes from a trusted backend caller;
	// no bearer auth is enforced at this layer.
	router.POST("/recharge", RateLimitMiddleware(10, 20), rechargeHandler.Recharge)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret, denylist)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.POST("/generate", RateLimitMiddleware(2, 5), generationHandler.Generate)
		protected.GET("/history", historyHandler.ListHistory)
		protected.GET("/credits", creditsHandler.GetBalance)
		protected.GET("/credits/transactions", rechargeHandler.ListTransactions)
		protected.GET("/realtime/credits", notifierHandler.StreamCredits)
		protected.DELETE("/account", accountHandler.DeleteAccount)
	}

	adminMiddleware := auth.RequireRole("admin")
	adminGroup := router.Group("/admin")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.GET("/stats", adminHandler.GetStats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
