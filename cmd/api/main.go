package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/application/auth"
	"github.com/tu-usuario/rifa-pro/internal/application/partner"
	apppayment "github.com/tu-usuario/rifa-pro/internal/application/payment"
	"github.com/tu-usuario/rifa-pro/internal/application/profiles"
	"github.com/tu-usuario/rifa-pro/internal/application/raffles"
	"github.com/tu-usuario/rifa-pro/internal/application/reports"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/application/wallet"
	infrapayment "github.com/tu-usuario/rifa-pro/internal/infrastructure/payment"
	infrapdf "github.com/tu-usuario/rifa-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/rifa-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/rifa-pro/internal/interfaces/http"
	"github.com/tu-usuario/rifa-pro/pkg/config"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	raffleRepo := postgres.NewRaffleRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	numberRepo := postgres.NewNumberRepository(pool)
	clickRepo := postgres.NewClickRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	winningRepo := postgres.NewWinningNumberRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Limites de saque vêm da configuração como string decimal
	minWithdrawal, err := decimal.NewFromString(cfg.Withdrawal.MinAmount)
	if err != nil {
		log.Fatal().Err(err).Msg("WITHDRAWAL_MIN inválido")
	}
	maxWithdrawal, err := decimal.NewFromString(cfg.Withdrawal.MaxAmount)
	if err != nil {
		log.Fatal().Err(err).Msg("WITHDRAWAL_MAX inválido")
	}

	authUC := auth.NewUseCase(profileRepo, cfg.JWT, log)
	allocator := sales.NewAllocateNumbersUseCase(txRunner)
	saleUC := sales.NewCreateSaleUseCase(profileRepo, raffleRepo, saleRepo, numberRepo, log)
	doorToDoorUC := sales.NewDoorToDoorUseCase(txRunner, profileRepo, allocator, log)
	walletUC := wallet.NewUseCase(txRunner, profileRepo, saleRepo, withdrawalRepo, minWithdrawal, maxWithdrawal, log)
	partnerUC := partner.NewUseCase(profileRepo, clickRepo, saleRepo, walletUC, log)
	raffleUC := raffles.NewUseCase(txRunner, raffleRepo, numberRepo, winningRepo, log)
	profileUC := profiles.NewUseCase(profileRepo, log)

	pixClient := infrapayment.NewPixClient(cfg.Payment, log)
	checkoutUC := apppayment.NewCheckoutUseCase(
		saleUC, allocator, txRunner,
		raffleRepo, saleRepo, numberRepo, winningRepo,
		pixClient, cfg.Payment, log,
	)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewUseCase(raffleRepo, saleRepo, numberRepo, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rifa Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		RaffleUC:   raffleUC,
		SaleUC:     saleUC,
		DoorToDoor: doorToDoorUC,
		CheckoutUC: checkoutUC,
		PartnerUC:  partnerUC,
		WalletUC:   walletUC,
		ProfileUC:  profileUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
