package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/raffle"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// ValidationError carrega os erros de campo do formulário de venda.
// É devolvido antes de qualquer acesso ao banco.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	return "entrada inválida"
}

// NewSale monta a venda a partir da rifa e do parceiro resolvido. O preço e a
// comissão são sempre calculados no servidor; valores vindos do cliente são
// ignorados. Parceiro nulo ou inativo vende sem atribuição (comissão zero).
func NewSale(r *entity.Raffle, partner *entity.Profile, in dto.CreateSaleRequest, doorToDoor bool, now time.Time) *entity.Sale {
	unit := raffle.UnitPrice(r, in.Quantity)
	total := raffle.TotalAmount(r, in.Quantity)

	sale := &entity.Sale{
		ID:               uuid.New().String(),
		RaffleID:         r.ID,
		CustomerName:     in.CustomerName,
		CustomerWhatsApp: in.CustomerWhatsApp,
		CustomerCity:     in.CustomerCity,
		Quantity:         in.Quantity,
		UnitPrice:        unit,
		TotalAmount:      total,
		CommissionAmount: decimal.Zero,
		Status:           entity.SaleStatusPending,
		PaymentMethod:    in.PaymentMethod,
		DoorToDoor:       doorToDoor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if partner.IsActivePartner() {
		sale.PartnerID = partner.ID
		sale.CommissionAmount = raffle.CommissionAmount(total, r.CommissionRate)
	}
	return sale
}

// CreateSaleUseCase cria vendas pendentes da loja online.
type CreateSaleUseCase struct {
	profileRepo repository.ProfileRepository
	raffleRepo  repository.RaffleRepository
	saleRepo    repository.SaleRepository
	numberRepo  repository.NumberRepository
	log         *logger.Logger
}

// NewCreateSaleUseCase constrói o caso de uso.
func NewCreateSaleUseCase(
	profileRepo repository.ProfileRepository,
	raffleRepo repository.RaffleRepository,
	saleRepo repository.SaleRepository,
	numberRepo repository.NumberRepository,
	log *logger.Logger,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		profileRepo: profileRepo,
		raffleRepo:  raffleRepo,
		saleRepo:    saleRepo,
		numberRepo:  numberRepo,
		log:         log,
	}
}

// ResolvePartner busca o parceiro pelo slug do link de afiliado. Slug vazio,
// desconhecido ou de perfil que não é parceiro ativo resolve para nil: a
// venda segue sem atribuição em vez de falhar.
func (uc *CreateSaleUseCase) ResolvePartner(slug string) (*entity.Profile, error) {
	if slug == "" {
		return nil, nil
	}
	partner, err := uc.profileRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !partner.IsActivePartner() {
		return nil, nil
	}
	return partner, nil
}

// Create valida o formulário, resolve rifa e parceiro e persiste a venda
// pendente. Os números só são alocados na confirmação do pagamento.
func (uc *CreateSaleUseCase) Create(_ context.Context, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	r, err := uc.raffleRepo.GetByID(in.RaffleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.Status != entity.RaffleStatusActive {
		return nil, domain.ErrRaffleNotActive
	}

	partner, err := uc.ResolvePartner(in.PartnerSlug)
	if err != nil {
		return nil, err
	}

	sale := NewSale(r, partner, in, false, time.Now())
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("raffle_id", sale.RaffleID).
		Int("quantity", sale.Quantity).
		Str("total", sale.TotalAmount.StringFixed(2)).
		Msg("venda criada")
	return sale, nil
}

// GetBySale devolve a venda com os números alocados (se houver).
func (uc *CreateSaleUseCase) GetBySale(_ context.Context, saleID string) (*entity.Sale, []int, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	rows, err := uc.numberRepo.ListBySale(saleID)
	if err != nil {
		return nil, nil, err
	}
	numbers := make([]int, 0, len(rows))
	for _, row := range rows {
		numbers = append(numbers, row.Number)
	}
	return sale, numbers, nil
}
