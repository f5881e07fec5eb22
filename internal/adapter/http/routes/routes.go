package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	_ "seguro_xpto/docs" // This will be auto-generated
	"seguro_xpto/internal/adapter/http/handlers"
	"seguro_xpto/internal/adapter/persistence/memory"
	repository2 "seguro_xpto/internal/adapter/persistence/repository"
	"seguro_xpto/internal/infrastructure/config"
	"seguro_xpto/internal/infrastructure/database"
	"seguro_xpto/internal/infrastructure/metrics"
	"seguro_xpto/internal/infrastructure/payments"
	"seguro_xpto/internal/usecase"
	"seguro_xpto/internal/usecase/interfaces"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM, then shut down
// gracefully.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := NewRouter(ctx, cfg, reg)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[server] listening addr=%s storage=%s", srv.Addr, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("[server] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires repositories, use cases and handlers for cfg and exposes
// the collectors registered on reg under /metrics.
func NewRouter(ctx context.Context, cfg config.Config, reg *prometheus.Registry) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var paymentGateway interfaces.IPaymentGateway
	if cfg.Gateway.Enabled {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Gateway.AccessToken, cfg.Gateway.Mock)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			paymentGateway = mpGateway
		}
	}

	processor := usecase.NewPaymentProcessor(repos.payments)
	productUseCase := usecase.NewProductUseCase(repos.products)
	policyholderUseCase := usecase.NewPolicyholderUseCase(repos.policyholders)
	paymentUseCase := usecase.NewPaymentUseCase(processor, paymentGateway, metrics.New(reg))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProductRoutes(v1, handlers.NewProductHandler(productUseCase))
	addPolicyholderRoutes(v1, handlers.NewPolicyholderHandler(policyholderUseCase))
	addPaymentRoutes(v1, handlers.NewPaymentHandler(paymentUseCase, cfg.DefaultPenaltyPolicy, cfg.ReminderHorizonDays))

	return router, nil
}

type repositories struct {
	products      interfaces.IProductRepository
	policyholders interfaces.IPolicyholderRepository
	payments      interfaces.IPaymentRecordRepository
}

func buildRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.StorageBackend {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Printf("[storage] using dynamodb products=%s policyholders=%s payments=%s", cfg.Tables.Products, cfg.Tables.Policyholders, cfg.Tables.Payments)
		return repositories{
			products:      repository2.NewProductDynamoRepository(ddb, cfg.Tables.Products),
			policyholders: repository2.NewPolicyholderDynamoRepository(ddb, cfg.Tables.Policyholders),
			payments:      repository2.NewPaymentRecordDynamoRepository(ddb, cfg.Tables.Payments),
		}, nil
	default:
		log.Printf("[storage] using in-memory repositories")
		return repositories{
			products:      memory.NewProductRepository(),
			policyholders: memory.NewPolicyholderRepository(),
			payments:      memory.NewPaymentRecordRepository(),
		}, nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
