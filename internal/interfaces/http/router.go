package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/auth"
	"github.com/tu-usuario/rifa-pro/internal/application/partner"
	"github.com/tu-usuario/rifa-pro/internal/application/payment"
	"github.com/tu-usuario/rifa-pro/internal/application/profiles"
	"github.com/tu-usuario/rifa-pro/internal/application/raffles"
	"github.com/tu-usuario/rifa-pro/internal/application/reports"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/application/wallet"
	"github.com/tu-usuario/rifa-pro/internal/domain/access"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	RaffleUC   *raffles.UseCase
	SaleUC     *sales.CreateSaleUseCase
	DoorToDoor *sales.DoorToDoorUseCase
	CheckoutUC *payment.CheckoutUseCase
	PartnerUC  *partner.UseCase
	WalletUC   *wallet.UseCase
	ProfileUC  *profiles.UseCase
	ReportUC   *reports.UseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Vitrine (público)
	raffleHandler := NewRaffleHandler(deps.RaffleUC)
	api.Get("/raffles/active", raffleHandler.GetActive)
	api.Get("/raffles/:id", raffleHandler.GetByID)

	// Cliques de afiliado (público: a loja registra antes do redirect)
	clickHandler := NewClickHandler(deps.PartnerUC)
	api.Post("/clicks", clickHandler.Track)

	// Checkout (público: comprador não tem conta)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Post("/checkout", checkoutHandler.Create)
	api.Get("/checkout/verify/:session_id", checkoutHandler.Verify)

	// Recibo da venda (público)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.DoorToDoor)
	api.Get("/sales/:id", saleHandler.GetByID)

	// Portal do parceiro (Bearer + permissões de parceiro)
	partnerGroup := api.Group("/partner", AuthMiddleware(deps.JWTSecret))
	partnerHandler := NewPartnerHandler(deps.PartnerUC, deps.WalletUC)
	partnerGroup.Get("/stats", RequirePermission(access.PermPartnerPortal), partnerHandler.Stats)
	partnerGroup.Get("/balance", RequirePermission(access.PermPartnerPortal), partnerHandler.Balance)
	partnerGroup.Get("/sales", RequirePermission(access.PermPartnerPortal), partnerHandler.ListSales)
	partnerGroup.Get("/clicks", RequirePermission(access.PermPartnerPortal), partnerHandler.ListClicks)
	partnerGroup.Get("/withdrawals", RequirePermission(access.PermPartnerPortal), partnerHandler.ListWithdrawals)
	partnerGroup.Post("/withdrawals", RequirePermission(access.PermPartnerWithdraw), partnerHandler.RequestWithdrawal)
	partnerGroup.Post("/field-sales", RequirePermission(access.PermPartnerFieldSales), saleHandler.RegisterFieldSale)
	partnerGroup.Patch("/field-sales/:id", RequirePermission(access.PermPartnerFieldSales), saleHandler.PatchFieldSale)

	// Back-office (Bearer + permissões de admin)
	adminGroup := api.Group("/admin", AuthMiddleware(deps.JWTSecret))
	adminHandler := NewAdminHandler(deps.WalletUC, deps.ProfileUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	adminGroup.Post("/raffles", RequirePermission(access.PermAdminRaffles), raffleHandler.Create)
	adminGroup.Get("/raffles", RequirePermission(access.PermAdminRaffles), raffleHandler.List)
	adminGroup.Put("/raffles/:id", RequirePermission(access.PermAdminRaffles), raffleHandler.Update)
	adminGroup.Post("/raffles/:id/winning-numbers", RequirePermission(access.PermAdminRaffles), raffleHandler.AddWinningNumber)
	adminGroup.Get("/raffles/:id/winning-numbers", RequirePermission(access.PermAdminRaffles), raffleHandler.ListWinningNumbers)
	adminGroup.Post("/raffles/:id/draw", RequirePermission(access.PermAdminRaffles), raffleHandler.Draw)
	adminGroup.Post("/raffles/:id/cancel", RequirePermission(access.PermAdminRaffles), raffleHandler.Cancel)
	adminGroup.Get("/raffles/:id/report.pdf", RequirePermission(access.PermAdminReports), reportHandler.RafflePDF)

	adminGroup.Get("/withdrawals", RequirePermission(access.PermAdminWithdrawals), adminHandler.ListWithdrawals)
	adminGroup.Patch("/withdrawals/:id", RequirePermission(access.PermAdminWithdrawals), adminHandler.ReviewWithdrawal)

	adminGroup.Get("/profiles", RequirePermission(access.PermAdminProfiles), adminHandler.ListProfiles)
	adminGroup.Get("/profiles/:id", RequirePermission(access.PermAdminProfiles), adminHandler.GetProfile)
	adminGroup.Delete("/profiles/:id", RequirePermission(access.PermAdminProfiles), adminHandler.DeactivateProfile)
}
