// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/config"
	"github.com/roshanpatil2000/web-analytics-backend/db"
	"github.com/roshanpatil2000/web-analytics-backend/middleware"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Hash      *security.PasswordHash
	StartedAt time.Time

	authLimiter *middleware.RateLimiter
}

// NewRouter opens the shared database handle and assembles the API
// around it. An error here is fatal, the process must not serve
// traffic without storage
func NewRouter() (*API, error) {
	makeLogger()

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	return New(database), nil
}

// New assembles the router on top of an explicitly owned database
// handle. Tests inject an in-memory database through here
func New(database *gorm.DB) *API {
	a := &API{
		DB:        database,
		Hash:      security.New(),
		StartedAt: time.Now(),
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.NewRequestIDMiddleware(),
		middleware.NewRecoveryMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	jwt := middleware.NewJWTMiddleware()

	a.authLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	})
	authLimiter := a.authLimiter.Middleware()

	// GET / 			-> Generic greeting, proves the server is reachable
	router.GET("/", a.Root)

	v1 := router.Group("/api/v1")
	{
		// GET /api/v1/health	-> Reports process and host health
		v1.GET("/health", a.HealthCheck)
	}

	user := v1.Group("/user", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/v1/user/signup		-> Registers a new user
		user.POST("/signup", authLimiter, a.UserSignup)

		// POST /api/v1/user/login		-> Logs in a user and rotates their token
		user.POST("/login", authLimiter, a.UserLogin)

		// POST /api/v1/user/verify		-> Completes email verification
		user.POST("/verify", a.UserVerify)

		// POST /api/v1/user/forgot-password	-> Starts the password reset flow
		user.POST("/forgot-password", authLimiter, a.UserForgotPassword)

		// POST /api/v1/user/reset-password	-> Completes the password reset flow
		user.POST("/reset-password", authLimiter, a.UserResetPassword)

		// GET /api/v1/user			-> Lists all users
		user.GET("", a.UserList)

		// GET /api/v1/user/:id			-> Returns a single user
		user.GET("/:id", a.UserFetch)

		// DELETE /api/v1/user/:id		-> Deletes a single user
		user.DELETE("/:id", a.UserDelete)

		// DELETE /api/v1/user			-> Deletes every user, admins only
		user.DELETE("", jwt, middleware.RequireAdmin(), a.UserDeleteAll)
	}

	// Everything that matched no route above terminates through the
	// same envelope as real handlers
	router.NoRoute(func(c *gin.Context) {
		respond.ErrorMessage(c, 404, "Route not found")
	})

	return a
}

// Close releases the background resources the router owns. The
// database handle is closed separately by whoever opened it
func (a *API) Close() {
	a.authLimiter.Stop()
}

func makeLogger() {
	if config.IsProduction() {
		log, _ := zap.NewProductionConfig().Build()
		zap.ReplaceGlobals(log)
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
