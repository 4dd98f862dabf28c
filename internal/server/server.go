package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paylift/srbooster/internal/audit"
	auditdomain "github.com/paylift/srbooster/internal/audit/domain"
	"github.com/paylift/srbooster/internal/config"
	"github.com/paylift/srbooster/internal/feature"
	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	"github.com/paylift/srbooster/internal/matcher"
	matcherdomain "github.com/paylift/srbooster/internal/matcher/domain"
	"github.com/paylift/srbooster/internal/merchant"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	"github.com/paylift/srbooster/internal/observability"
	obsmiddleware "github.com/paylift/srbooster/internal/observability/logger"
	obsmetrics "github.com/paylift/srbooster/internal/observability/metrics"
	obstracing "github.com/paylift/srbooster/internal/observability/tracing"
	"github.com/paylift/srbooster/internal/ratelimit"
	"github.com/paylift/srbooster/internal/request"
	requestdomain "github.com/paylift/srbooster/internal/request/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	feature.Module,
	merchant.Module,
	matcher.Module,
	request.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	featureSvc    featuredomain.Service
	merchantSvc   merchantdomain.Service
	matcherSvc    matcherdomain.Service
	requestSvc    requestdomain.Service
	auditSvc      auditdomain.Service
	createLimiter *ratelimit.CreateLimiter
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	FeatureSvc    featuredomain.Service
	MerchantSvc   merchantdomain.Service
	MatcherSvc    matcherdomain.Service
	RequestSvc    requestdomain.Service
	AuditSvc      auditdomain.Service
	CreateLimiter *ratelimit.CreateLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		featureSvc:    p.FeatureSvc,
		merchantSvc:   p.MerchantSvc,
		matcherSvc:    p.MatcherSvc,
		requestSvc:    p.RequestSvc,
		auditSvc:      p.AuditSvc,
		createLimiter: p.CreateLimiter,
	}

	svc.registerCatalogRoutes()
	svc.registerRequestRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerCatalogRoutes() {
	s.engine.GET("/features", s.ListFeatures)
	s.engine.GET("/features/:feature_id", s.GetFeature)

	s.engine.GET("/merchants/:mid", s.GetMerchant)
	s.engine.GET("/merchants/:mid/features", s.GetMerchantFeatures)
	s.engine.GET("/merchants/:mid/sr-booster", s.GetSRBooster)
}

func (s *Server) registerRequestRoutes() {
	s.engine.POST("/requests", s.createLimiter.Middleware(), s.CreateRequest)
	s.engine.GET("/requests", s.ListRequests)
	s.engine.GET("/requests/:request_id", s.GetRequest)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")

	admin.GET("/pending-approvals", s.ListPendingApprovals)
	admin.PATCH("/requests/:request_id/approve", s.ApproveRequest)
	admin.PATCH("/requests/:request_id/reject", s.RejectRequest)
}
