package payment_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/application/payment"
	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
	"github.com/tu-usuario/rifa-pro/pkg/config"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	mu       sync.Mutex
	raffles  map[string]*entity.Raffle
	sales    map[string]*entity.Sale
	numbers  map[string]map[int]*entity.PurchasedNumber
	profiles map[string]*entity.Profile
	clicks   []*entity.PartnerClick
	winning  map[string][]*entity.WinningNumber
}

func newStore() *store {
	return &store{
		raffles:  map[string]*entity.Raffle{},
		sales:    map[string]*entity.Sale{},
		numbers:  map[string]map[int]*entity.PurchasedNumber{},
		profiles: map[string]*entity.Profile{},
		winning:  map[string][]*entity.WinningNumber{},
	}
}

type txRunner struct{ s *store }

func (r *txRunner) Run(_ context.Context, fn func(
	repository.RaffleRepository, repository.SaleRepository, repository.NumberRepository,
	repository.ClickRepository, repository.WinningNumberRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&raffleRepo{r.s}, &saleRepo{r.s}, &numberRepo{r.s}, &clickRepo{r.s}, &winningRepo{r.s})
}

type raffleRepo struct{ s *store }

func (r *raffleRepo) Create(raffle *entity.Raffle) error { r.s.raffles[raffle.ID] = raffle; return nil }
func (r *raffleRepo) GetByID(id string) (*entity.Raffle, error) { return r.s.raffles[id], nil }
func (r *raffleRepo) GetByIDForUpdate(id string) (*entity.Raffle, error) {
	return r.s.raffles[id], nil
}
func (r *raffleRepo) GetActive() (*entity.Raffle, error) {
	for _, raffle := range r.s.raffles {
		if raffle.Status == entity.RaffleStatusActive {
			return raffle, nil
		}
	}
	return nil, nil
}
func (r *raffleRepo) List(int, int) ([]*entity.Raffle, error) { return nil, nil }
func (r *raffleRepo) Update(raffle *entity.Raffle) error { r.s.raffles[raffle.ID] = raffle; return nil }

type saleRepo struct{ s *store }

func (r *saleRepo) Create(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *saleRepo) GetByID(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r *saleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r *saleRepo) GetByCheckoutSession(sessionID string) (*entity.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.CheckoutSessionID == sessionID {
			return sale, nil
		}
	}
	return nil, nil
}
func (r *saleRepo) ListByPartner(string, int, int) ([]*entity.Sale, error) { return nil, nil }
func (r *saleRepo) ListByRaffle(string, int, int) ([]*entity.Sale, error) { return nil, nil }
func (r *saleRepo) Update(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *saleRepo) SumCommissionByPartner(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *saleRepo) CountByPartner(string) (int, error) { return 0, nil }

type numberRepo struct{ s *store }

func (r *numberRepo) BulkCreate(numbers []*entity.PurchasedNumber) error {
	for _, n := range numbers {
		byRaffle := r.s.numbers[n.RaffleID]
		if byRaffle == nil {
			byRaffle = map[int]*entity.PurchasedNumber{}
			r.s.numbers[n.RaffleID] = byRaffle
		}
		if _, taken := byRaffle[n.Number]; taken {
			return domain.ErrConflict
		}
		byRaffle[n.Number] = n
	}
	return nil
}
func (r *numberRepo) UsedNumbers(raffleID string) ([]int, error) {
	var out []int
	for n := range r.s.numbers[raffleID] {
		out = append(out, n)
	}
	return out, nil
}
func (r *numberRepo) CountByRaffle(raffleID string) (int, error) {
	return len(r.s.numbers[raffleID]), nil
}
func (r *numberRepo) ListBySale(saleID string) ([]*entity.PurchasedNumber, error) {
	var out []*entity.PurchasedNumber
	for _, byRaffle := range r.s.numbers {
		for _, n := range byRaffle {
			if n.SaleID == saleID {
				out = append(out, n)
			}
		}
	}
	return out, nil
}
func (r *numberRepo) DeleteBySale(string) error { return nil }
func (r *numberRepo) MarkWinners(string, []int) error { return nil }

type clickRepo struct{ s *store }

func (r *clickRepo) Create(c *entity.PartnerClick) error { r.s.clicks = append(r.s.clicks, c); return nil }
func (r *clickRepo) ListByPartner(string, int, int) ([]*entity.PartnerClick, error) {
	return nil, nil
}
func (r *clickRepo) CountByPartner(string) (int, int, error) { return 0, 0, nil }
func (r *clickRepo) MarkLatestConverted(partnerID, saleID string) error {
	for i := len(r.s.clicks) - 1; i >= 0; i-- {
		c := r.s.clicks[i]
		if c.PartnerID == partnerID && !c.Converted {
			c.Converted = true
			c.SaleID = saleID
			return nil
		}
	}
	return nil
}

type winningRepo struct{ s *store }

func (r *winningRepo) Create(wn *entity.WinningNumber) error {
	r.s.winning[wn.RaffleID] = append(r.s.winning[wn.RaffleID], wn)
	return nil
}
func (r *winningRepo) ListByRaffle(raffleID string) ([]*entity.WinningNumber, error) {
	return r.s.winning[raffleID], nil
}
func (r *winningRepo) FindMatches(raffleID string, numbers []int) ([]*entity.WinningNumber, error) {
	var out []*entity.WinningNumber
	for _, wn := range r.s.winning[raffleID] {
		for _, n := range numbers {
			if wn.Number == n {
				out = append(out, wn)
			}
		}
	}
	return out, nil
}

type profileRepo struct{ s *store }

func (r *profileRepo) Create(p *entity.Profile) error { r.s.profiles[p.ID] = p; return nil }
func (r *profileRepo) GetByID(id string) (*entity.Profile, error) { return r.s.profiles[id], nil }
func (r *profileRepo) GetByIDForUpdate(id string) (*entity.Profile, error) {
	return r.s.profiles[id], nil
}
func (r *profileRepo) GetByEmail(string) (*entity.Profile, error) { return nil, nil }
func (r *profileRepo) GetBySlug(slug string) (*entity.Profile, error) {
	for _, p := range r.s.profiles {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}
func (r *profileRepo) ListByRole(string, int, int) ([]*entity.Profile, error) { return nil, nil }
func (r *profileRepo) Update(p *entity.Profile) error { r.s.profiles[p.ID] = p; return nil }
func (r *profileRepo) Deactivate(string) error { return nil }

// fakeProvider simula o provedor de checkout: sessões criadas ficam não pagas
// até o teste marcar paid.
type fakeProvider struct {
	mu        sync.Mutex
	sessions  map[string]bool // sessionID -> paga
	createErr error
	calls     int
}

func (p *fakeProvider) CreateSession(_ context.Context, req payment.SessionRequest) (*payment.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.createErr != nil {
		return nil, p.createErr
	}
	id := "sess-" + req.SaleID
	if p.sessions == nil {
		p.sessions = map[string]bool{}
	}
	p.sessions[id] = false
	return &payment.Session{ID: id, URL: "https://pay.example/" + id}, nil
}

func (p *fakeProvider) GetSessionStatus(_ context.Context, sessionID string) (*payment.SessionStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	paid := p.sessions[sessionID]
	status := "open"
	if paid {
		status = "paid"
	}
	return &payment.SessionStatus{ID: sessionID, Status: status, Paid: paid}, nil
}

func (p *fakeProvider) markPaid(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessions[sessionID] = true
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildCheckout(s *store, provider *fakeProvider) *payment.CheckoutUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	runner := &txRunner{s}
	allocator := sales.NewAllocateNumbersUseCase(runner)
	creator := sales.NewCreateSaleUseCase(&profileRepo{s}, &raffleRepo{s}, &saleRepo{s}, &numberRepo{s}, log)
	return payment.NewCheckoutUseCase(
		creator, allocator, runner,
		&raffleRepo{s}, &saleRepo{s}, &numberRepo{s}, &winningRepo{s},
		provider,
		config.PaymentConfig{SuccessURL: "https://loja.example/ok", CancelURL: "https://loja.example/nok"},
		log,
	)
}

func seedActiveRaffle(s *store, id string, total int) *entity.Raffle {
	r := &entity.Raffle{
		ID:             id,
		Title:          "Rifa de Teste",
		TotalNumbers:   total,
		PricePerNumber: decimal.RequireFromString("1.99"),
		CommissionRate: decimal.NewFromInt(30),
		Status:         entity.RaffleStatusActive,
	}
	s.raffles[id] = r
	return r
}

func checkoutRequest() dto.CreateCheckoutRequest {
	return dto.CreateCheckoutRequest{
		CustomerName:     "Maria Souza",
		CustomerWhatsApp: "(11) 91234-5678",
		CustomerCity:     "Campinas",
		Quantity:         3,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CriaVendaPendenteComSessao(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 100)
	provider := &fakeProvider{}
	uc := buildCheckout(s, provider)

	resp, err := uc.CreatePixPayment(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SaleID)
	assert.Equal(t, "sess-"+resp.SaleID, resp.SessionID)
	assert.NotEmpty(t, resp.URL)

	sale := s.sales[resp.SaleID]
	require.NotNil(t, sale)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
	assert.Empty(t, s.numbers["r1"], "números só aparecem depois do pagamento")
}

func TestCheckout_ErroDoProvedorSobeIntacto(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 100)
	provider := &fakeProvider{createErr: errors.New("provider: limite de sessões excedido")}
	uc := buildCheckout(s, provider)

	_, err := uc.CreatePixPayment(context.Background(), checkoutRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limite de sessões excedido",
		"a mensagem do provedor não pode ser mascarada")
	assert.Empty(t, s.numbers["r1"])
}

func TestVerify_NaoPagoNaoAloca(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 100)
	provider := &fakeProvider{}
	uc := buildCheckout(s, provider)

	created, err := uc.CreatePixPayment(context.Background(), checkoutRequest())
	require.NoError(t, err)

	resp, err := uc.VerifyPayment(context.Background(), created.SessionID)
	require.NoError(t, err)
	assert.False(t, resp.Paid)
	assert.Empty(t, resp.Numbers)
	assert.Empty(t, s.numbers["r1"])
}

func TestVerify_PagoAlocaEConcluiIdempotente(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 100)
	provider := &fakeProvider{}
	uc := buildCheckout(s, provider)

	created, err := uc.CreatePixPayment(context.Background(), checkoutRequest())
	require.NoError(t, err)
	provider.markPaid(created.SessionID)

	first, err := uc.VerifyPayment(context.Background(), created.SessionID)
	require.NoError(t, err)
	assert.True(t, first.Paid)
	assert.Len(t, first.Numbers, 3)
	assert.Equal(t, entity.SaleStatusCompleted, s.sales[created.SaleID].Status)

	// Segundo poll: mesmos números, nada novo alocado
	second, err := uc.VerifyPayment(context.Background(), created.SessionID)
	require.NoError(t, err)
	assert.True(t, second.Paid)
	assert.ElementsMatch(t, first.Numbers, second.Numbers)
	assert.Len(t, s.numbers["r1"], 3)
}

func TestVerify_ConverteCliqueDoParceiro(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 100)
	s.profiles["p1"] = &entity.Profile{ID: "p1", Slug: "joao", Role: entity.RolePartner, IsActive: true}
	s.clicks = append(s.clicks, &entity.PartnerClick{ID: "c1", PartnerID: "p1"})
	provider := &fakeProvider{}
	uc := buildCheckout(s, provider)

	in := checkoutRequest()
	in.PartnerSlug = "joao"
	created, err := uc.CreatePixPayment(context.Background(), in)
	require.NoError(t, err)
	provider.markPaid(created.SessionID)

	_, err = uc.VerifyPayment(context.Background(), created.SessionID)
	require.NoError(t, err)

	assert.True(t, s.clicks[0].Converted, "o clique mais recente vira conversão")
	assert.Equal(t, created.SaleID, s.clicks[0].SaleID)

	sale := s.sales[created.SaleID]
	assert.Equal(t, "p1", sale.PartnerID)
	// 30% de 3 × 1,99 = 1,791 → 1,79
	assert.Equal(t, "1.79", sale.CommissionAmount.StringFixed(2))
}

func TestVerify_NumeroPremiadoApareceNoResultado(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 3) // pool mínimo garante que o premiado saia
	s.winning["r1"] = []*entity.WinningNumber{
		{RaffleID: "r1", Number: 2, PrizeName: "Bicicleta"},
	}
	provider := &fakeProvider{}
	uc := buildCheckout(s, provider)

	created, err := uc.CreatePixPayment(context.Background(), checkoutRequest())
	require.NoError(t, err)
	provider.markPaid(created.SessionID)

	resp, err := uc.VerifyPayment(context.Background(), created.SessionID)
	require.NoError(t, err)
	require.Len(t, resp.Prizes, 1)
	assert.Equal(t, 2, resp.Prizes[0].Number)
	assert.Equal(t, "Bicicleta", resp.Prizes[0].PrizeName)
}

func TestVerify_SessaoDesconhecida(t *testing.T) {
	s := newStore()
	seedActiveRaffle(s, "r1", 100)
	uc := buildCheckout(s, &fakeProvider{})

	_, err := uc.VerifyPayment(context.Background(), "sess-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
