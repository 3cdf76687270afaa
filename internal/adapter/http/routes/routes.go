package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "rcp_tracker/docs" // This will be auto-generated
	"rcp_tracker/internal/adapter/http/handlers"
	"rcp_tracker/internal/adapter/http/middleware"
	"rcp_tracker/internal/config"
	"rcp_tracker/internal/infrastructure/rates"
	"rcp_tracker/internal/infrastructure/storage"
	"rcp_tracker/internal/usecase"
	"rcp_tracker/internal/usecase/interfaces"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups what the router serves.
type Handlers struct {
	Task  *handlers.TaskHandler
	Admin *handlers.AdminHandler
}

// NewHandlers wires the use cases over the given stores.
func NewHandlers(cfg config.Config, stores *storage.Stores, clock interfaces.IClock, logger *log.Logger) Handlers {
	accountant := usecase.NewDurationAccountant(
		rates.NewConfigRateLookup(cfg.Rates),
		cfg.Accounting.HoursPrecision,
		cfg.Accounting.CurrencyPrecision,
	)
	guard := usecase.NewExclusivityGuard(stores.Tasks)

	taskUseCase := usecase.NewTaskUseCase(stores.Tasks, stores.Variants, guard, accountant, clock, logger)
	adminUseCase := usecase.NewAdminCorrectionUseCase(stores.Tasks, guard, accountant, clock, logger)

	return Handlers{
		Task:  handlers.NewTaskHandler(taskUseCase),
		Admin: handlers.NewAdminHandler(adminUseCase),
	}
}

// NewRouter builds the gin engine with middlewares and the v1 routes.
func NewRouter(h Handlers, logger *log.Logger, swagger bool) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	if swagger {
		// Swagger documentation endpoint
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRCPRoutes(v1, h)
	return router
}

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	stores, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	router := NewRouter(NewHandlers(cfg, stores, interfaces.SystemClock{}, logger), logger, cfg.HTTP.Swagger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr, "storage", cfg.Storage.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func setMiddlewares(router *gin.Engine, logger *log.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
}
