package v1

import (
	"net/http"

	"go-interview-tracker/internal/delivery/http/middleware"
	"go-interview-tracker/internal/domain"
	"go-interview-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	InterviewUC domain.InterviewUsecase
	FeedbackUC  domain.FeedbackUsecase
	HealthUC    usecase.HealthUsecase
	// Redis is optional; the rate limiter counts in memory without it.
	Redis          *goredis.Client
	RateLimit      middleware.RateLimitConfig
	AllowedOrigins []string
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog *zap.Logger
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := domain.RegisterValidators(v); err != nil {
			return nil, err
		}
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLogger(deps.AccessLog))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/health_check", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c))
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("")
	if deps.RateLimit.Limit > 0 {
		api.Use(middleware.RateLimitMiddleware(deps.RateLimit, deps.Redis))
	}
	{
		NewCandidateHandler(api, deps.CandidateUC)
		NewInterviewHandler(api, deps.InterviewUC)
		NewFeedbackHandler(api, deps.FeedbackUC)
	}

	return r, nil
}
