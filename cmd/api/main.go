package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/order"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-api/internal/interfaces/http"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/logger"
	"github.com/tu-usuario/ventas-api/pkg/pubsub"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	broker := pubsub.New()

	authUC := auth.NewAuthUseCase(userRepo, cfg.Auth.AdminSecret, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpirationHours,
		Issuer:   cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, broker)
	clientUC := usecase.NewClientUseCase(clientRepo)
	orderUC := order.NewOrderUseCase(txRunner, clientRepo, orderRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		ClientUC:  clientUC,
		OrderUC:   orderUC,
		ReportUC:  reportUC,
		Broker:    broker,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
