package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

func seedPartner(s *memStore, id, slug string, active bool) *entity.Profile {
	p := &entity.Profile{
		ID:       id,
		Name:     "Parceiro Teste",
		Slug:     slug,
		Role:     entity.RolePartner,
		IsActive: active,
	}
	s.profiles[id] = p
	return p
}

func newCreateSaleUC(s *memStore) *sales.CreateSaleUseCase {
	return sales.NewCreateSaleUseCase(
		&fakeProfileRepo{s}, &fakeRaffleRepo{s}, &fakeSaleRepo{s}, &fakeNumberRepo{s}, testLogger())
}

func validRequest(raffleID string) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		RaffleID:         raffleID,
		CustomerName:     "Maria Souza",
		CustomerWhatsApp: "(11) 91234-5678",
		CustomerCity:     "Campinas",
		Quantity:         5,
		PaymentMethod:    entity.PaymentMethodPix,
	}
}

func TestCreateSale_PrecoSemDesconto(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	uc := newCreateSaleUC(s)

	sale, err := uc.Create(context.Background(), validRequest("r1"))
	require.NoError(t, err)

	// 5 números a R$ 1,99
	assert.Equal(t, "1.99", sale.UnitPrice.StringFixed(2))
	assert.Equal(t, "9.95", sale.TotalAmount.StringFixed(2))
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
	assert.True(t, sale.CommissionAmount.IsZero(), "sem parceiro não há comissão")
	assert.Empty(t, sale.PartnerID)
}

func TestCreateSale_PrecoComDescontoPorQuantidade(t *testing.T) {
	s := newMemStore()
	r := seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	r.DiscountPrice = decimal.RequireFromString("0.99")
	r.DiscountMinQuantity = 10
	uc := newCreateSaleUC(s)

	in := validRequest("r1")
	in.Quantity = 10
	sale, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// 10 números no preço com desconto: 10 × 0,99
	assert.Equal(t, "0.99", sale.UnitPrice.StringFixed(2))
	assert.Equal(t, "9.90", sale.TotalAmount.StringFixed(2))
}

func TestCreateSale_DescontoNaoAplicaAbaixoDoMinimo(t *testing.T) {
	s := newMemStore()
	r := seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	r.DiscountPrice = decimal.RequireFromString("0.99")
	r.DiscountMinQuantity = 10
	uc := newCreateSaleUC(s)

	in := validRequest("r1")
	in.Quantity = 9
	sale, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "1.99", sale.UnitPrice.StringFixed(2))
}

func TestCreateSale_ComissaoDeParceiroAtivo(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 100, entity.RaffleStatusActive) // comissão 30%
	seedPartner(s, "p1", "joao-da-silva", true)
	uc := newCreateSaleUC(s)

	in := validRequest("r1")
	in.PartnerSlug = "joao-da-silva"
	sale, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// 30% de 9,95 = 2,985 → 2,99 (centavos)
	assert.Equal(t, "p1", sale.PartnerID)
	assert.Equal(t, "2.99", sale.CommissionAmount.StringFixed(2))
}

func TestCreateSale_ParceiroInativoVendeSemComissao(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao-da-silva", false)
	uc := newCreateSaleUC(s)

	in := validRequest("r1")
	in.PartnerSlug = "joao-da-silva"
	sale, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	// A venda passa, mas sem atribuição nem comissão
	assert.Empty(t, sale.PartnerID)
	assert.True(t, sale.CommissionAmount.IsZero())
}

func TestCreateSale_SlugDesconhecidoNaoBloqueiaVenda(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	uc := newCreateSaleUC(s)

	in := validRequest("r1")
	in.PartnerSlug = "nao-existe"
	sale, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, sale.PartnerID)
}

func TestCreateSale_ValidacaoDeCampos(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	uc := newCreateSaleUC(s)

	in := validRequest("r1")
	in.CustomerName = "  "
	in.CustomerWhatsApp = "1234"
	in.Quantity = 0

	_, err := uc.Create(context.Background(), in)
	var validation *sales.ValidationError
	require.ErrorAs(t, err, &validation)

	fields := map[string]bool{}
	for _, fe := range validation.Fields {
		fields[fe.Field] = true
	}
	assert.True(t, fields["customer_name"])
	assert.True(t, fields["customer_whatsapp"])
	assert.True(t, fields["quantity"])
	assert.Empty(t, s.sales, "entrada inválida não toca o banco")
}

func TestCreateSale_RifaNaoAtiva(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 100, entity.RaffleStatusCancelled)
	uc := newCreateSaleUC(s)

	_, err := uc.Create(context.Background(), validRequest("r1"))
	assert.ErrorIs(t, err, domain.ErrRaffleNotActive)
}

func TestCreateSale_WhatsAppFormatosBrasileiros(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 1000, entity.RaffleStatusActive)
	uc := newCreateSaleUC(s)

	valid := []string{"+55 11 91234-5678", "11912345678", "(11) 91234-5678", "11 1234-5678"}
	for _, w := range valid {
		in := validRequest("r1")
		in.CustomerWhatsApp = w
		_, err := uc.Create(context.Background(), in)
		assert.NoError(t, err, "WhatsApp %q deve ser aceito", w)
	}
}

func TestNewSale_TimestampsEMetodo(t *testing.T) {
	s := newMemStore()
	r := seedRaffle(s, "r1", 100, entity.RaffleStatusActive)
	now := time.Now()

	sale := sales.NewSale(r, nil, validRequest("r1"), true, now)
	assert.True(t, sale.DoorToDoor)
	assert.Equal(t, now, sale.CreatedAt)
	assert.Equal(t, entity.PaymentMethodPix, sale.PaymentMethod)
	assert.NotEmpty(t, sale.ID)
}
