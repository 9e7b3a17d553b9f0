package infra

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rihla/customer-queries/internal/auth"
	"github.com/rihla/customer-queries/internal/cache"
	"github.com/rihla/customer-queries/internal/config"
	"github.com/rihla/customer-queries/internal/errors"
	"github.com/rihla/customer-queries/internal/handlers"
	"github.com/rihla/customer-queries/internal/mailer"
	"github.com/rihla/customer-queries/internal/middleware"
	"github.com/rihla/customer-queries/internal/repository"
	"github.com/rihla/customer-queries/internal/service"
	"github.com/rihla/customer-queries/internal/validation"
	"github.com/rihla/customer-queries/pkg/db/transactor"
)

// Router assembles the whole application on top of the established
// infrastructure connections
func Router(
	pgPool *pgxpool.Pool,
	mongoClient *mongo.Client,
	redisClient *redis.Client,
	mailPub mailer.Publisher,
	cfg config.Config,
) (*echo.Echo, error) {
	e := echo.New()

	e.HTTPErrorHandler = errorHandler(e)

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)

	// Transactor
	trx := transactor.NewPgxTransactor(pgPool)

	// Extra functionality
	jwtCfg := cfg.AuthCfg.JwtCfg
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)
	policy := auth.NewPolicy(cfg.AuthCfg.AdminEmail)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)

	// Repositories
	userRps := repository.NewPostgresUserRepository(trx)
	rfrTokenRps := repository.NewPostgresRefreshTokenRepository(trx)
	resetTokenRps := repository.NewPostgresPasswordResetTokenRepository(trx)
	queryRps := repository.NewMongoCustomerQueryRepository(mongoClient, cfg.MongoCfg.Database)
	queryCache := cache.NewRedisCustomerQueryCache(redisClient)

	// Services
	authSvc := service.NewAuthService(jwtIssuer, userRps, rfrTokenRps, resetTokenRps, mailPub, service.AuthServiceCfg{
		RefreshTokenMaxCount:    cfg.AuthCfg.RefreshTokenCfg.MaxCount,
		RefreshTokenTimeToLive:  cfg.AuthCfg.RefreshTokenCfg.TimeToLive,
		PasswordResetTimeToLive: cfg.AuthCfg.PasswordResetTTL,
	})
	querySvc := service.NewCustomerQueryService(queryRps, queryCache, policy)
	exportSvc := service.NewExportService(querySvc)

	// Handlers
	authHandler := handlers.NewAuthHandler(trx, authSvc)
	queryHandler := handlers.NewCustomerQueryHandler(querySvc, exportSvc)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.POST("/refresh", authHandler.Refresh)
	authAPI.POST("/password-reset", authHandler.RequestPasswordReset)
	authAPI.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// customer queries
	queriesAPI := api.Group("/v1/queries", authorizeMw)
	queriesAPI.GET("", queryHandler.List)
	queriesAPI.GET("/export", queryHandler.Export)
	queriesAPI.GET("/:id", queryHandler.Get)
	queriesAPI.POST("", queryHandler.Post)
	queriesAPI.PUT("/:id", queryHandler.Put)
	queriesAPI.DELETE("/:id", queryHandler.DeleteByID)

	return e, nil
}

// errorHandler maps domain errors to http statuses. Every failure takes
// this single path, successful or silent swallowing of mutation errors
// doesn't exist
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		logrus.Errorf("error occurred on request processing - %v", err)

		var notFoundErr *errors.EntryNotFoundErr
		if stderrors.As(err, &notFoundErr) {
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		}

		var accessDeniedErr *errors.AccessDeniedErr
		if stderrors.As(err, &accessDeniedErr) {
			err = echo.NewHTTPError(http.StatusForbidden, accessDeniedErr.Error())
		}

		var businessErr *errors.BusinessErr
		if stderrors.As(err, &businessErr) {
			err = echo.NewHTTPError(http.StatusBadRequest, businessErr)
		}

		var payloadErr *validation.PayloadError
		if stderrors.As(err, &payloadErr) {
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
