package sales_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

// memStore é o banco em memória dos testes. O fakeTxRunner segura o mutex
// durante o callback inteiro, reproduzindo a serialização que o SELECT FOR
// UPDATE da rifa garante no PostgreSQL.
type memStore struct {
	mu       sync.Mutex
	raffles  map[string]*entity.Raffle
	sales    map[string]*entity.Sale
	numbers  map[string]map[int]*entity.PurchasedNumber // raffleID -> número
	profiles map[string]*entity.Profile
	clicks   []*entity.PartnerClick
	winning  map[string][]*entity.WinningNumber
}

func newMemStore() *memStore {
	return &memStore{
		raffles:  map[string]*entity.Raffle{},
		sales:    map[string]*entity.Sale{},
		numbers:  map[string]map[int]*entity.PurchasedNumber{},
		profiles: map[string]*entity.Profile{},
		winning:  map[string][]*entity.WinningNumber{},
	}
}

// fakeTxRunner implementa sales.TxRunner sobre o memStore.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	raffleRepo repository.RaffleRepository,
	saleRepo repository.SaleRepository,
	numberRepo repository.NumberRepository,
	clickRepo repository.ClickRepository,
	winningRepo repository.WinningNumberRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&fakeRaffleRepo{r.s}, &fakeSaleRepo{r.s}, &fakeNumberRepo{r.s}, &fakeClickRepo{r.s}, &fakeWinningRepo{r.s})
}

// ── Raffles ───────────────────────────────────────────────────────────────────

type fakeRaffleRepo struct{ s *memStore }

func (r *fakeRaffleRepo) Create(raffle *entity.Raffle) error {
	r.s.raffles[raffle.ID] = raffle
	return nil
}
func (r *fakeRaffleRepo) GetByID(id string) (*entity.Raffle, error) { return r.s.raffles[id], nil }
func (r *fakeRaffleRepo) GetByIDForUpdate(id string) (*entity.Raffle, error) {
	return r.s.raffles[id], nil
}
func (r *fakeRaffleRepo) GetActive() (*entity.Raffle, error) {
	for _, raffle := range r.s.raffles {
		if raffle.Status == entity.RaffleStatusActive {
			return raffle, nil
		}
	}
	return nil, nil
}
func (r *fakeRaffleRepo) List(_, _ int) ([]*entity.Raffle, error) {
	var out []*entity.Raffle
	for _, raffle := range r.s.raffles {
		out = append(out, raffle)
	}
	return out, nil
}
func (r *fakeRaffleRepo) Update(raffle *entity.Raffle) error {
	r.s.raffles[raffle.ID] = raffle
	return nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales[sale.ID] = sale
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error)          { return r.s.sales[id], nil }
func (r *fakeSaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r *fakeSaleRepo) GetByCheckoutSession(sessionID string) (*entity.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.CheckoutSessionID == sessionID {
			return sale, nil
		}
	}
	return nil, nil
}
func (r *fakeSaleRepo) ListByPartner(partnerID string, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.PartnerID == partnerID {
			out = append(out, sale)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) ListByRaffle(raffleID string, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.RaffleID == raffleID {
			out = append(out, sale)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) Update(sale *entity.Sale) error {
	r.s.sales[sale.ID] = sale
	return nil
}
func (r *fakeSaleRepo) SumCommissionByPartner(partnerID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, sale := range r.s.sales {
		if sale.PartnerID == partnerID && sale.Status == entity.SaleStatusCompleted {
			sum = sum.Add(sale.CommissionAmount)
		}
	}
	return sum, nil
}
func (r *fakeSaleRepo) CountByPartner(partnerID string) (int, error) {
	n := 0
	for _, sale := range r.s.sales {
		if sale.PartnerID == partnerID {
			n++
		}
	}
	return n, nil
}

// ── Numbers ───────────────────────────────────────────────────────────────────

type fakeNumberRepo struct{ s *memStore }

func (r *fakeNumberRepo) BulkCreate(numbers []*entity.PurchasedNumber) error {
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
func (r *fakeNumberRepo) UsedNumbers(raffleID string) ([]int, error) {
	var out []int
	for n := range r.s.numbers[raffleID] {
		out = append(out, n)
	}
	return out, nil
}
func (r *fakeNumberRepo) CountByRaffle(raffleID string) (int, error) {
	return len(r.s.numbers[raffleID]), nil
}
func (r *fakeNumberRepo) ListBySale(saleID string) ([]*entity.PurchasedNumber, error) {
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
func (r *fakeNumberRepo) DeleteBySale(saleID string) error {
	for _, byRaffle := range r.s.numbers {
		for num, n := range byRaffle {
			if n.SaleID == saleID {
				delete(byRaffle, num)
			}
		}
	}
	return nil
}
func (r *fakeNumberRepo) MarkWinners(raffleID string, numbers []int) error {
	for _, num := range numbers {
		if n, ok := r.s.numbers[raffleID][num]; ok {
			n.IsWinner = true
		}
	}
	return nil
}

// ── Clicks ────────────────────────────────────────────────────────────────────

type fakeClickRepo struct{ s *memStore }

func (r *fakeClickRepo) Create(c *entity.PartnerClick) error {
	r.s.clicks = append(r.s.clicks, c)
	return nil
}
func (r *fakeClickRepo) ListByPartner(partnerID string, _, _ int) ([]*entity.PartnerClick, error) {
	var out []*entity.PartnerClick
	for _, c := range r.s.clicks {
		if c.PartnerID == partnerID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeClickRepo) CountByPartner(partnerID string) (total, converted int, err error) {
	for _, c := range r.s.clicks {
		if c.PartnerID != partnerID {
			continue
		}
		total++
		if c.Converted {
			converted++
		}
	}
	return total, converted, nil
}
func (r *fakeClickRepo) MarkLatestConverted(partnerID, saleID string) error {
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

// ── Winning numbers ───────────────────────────────────────────────────────────

type fakeWinningRepo struct{ s *memStore }

func (r *fakeWinningRepo) Create(wn *entity.WinningNumber) error {
	r.s.winning[wn.RaffleID] = append(r.s.winning[wn.RaffleID], wn)
	return nil
}
func (r *fakeWinningRepo) ListByRaffle(raffleID string) ([]*entity.WinningNumber, error) {
	return r.s.winning[raffleID], nil
}
func (r *fakeWinningRepo) FindMatches(raffleID string, numbers []int) ([]*entity.WinningNumber, error) {
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

// ── Profiles ──────────────────────────────────────────────────────────────────

type fakeProfileRepo struct{ s *memStore }

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	r.s.profiles[p.ID] = p
	return nil
}
func (r *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) { return r.s.profiles[id], nil }
func (r *fakeProfileRepo) GetByIDForUpdate(id string) (*entity.Profile, error) {
	return r.s.profiles[id], nil
}
func (r *fakeProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	for _, p := range r.s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProfileRepo) GetBySlug(slug string) (*entity.Profile, error) {
	for _, p := range r.s.profiles {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProfileRepo) ListByRole(role string, _, _ int) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range r.s.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProfileRepo) Update(p *entity.Profile) error {
	r.s.profiles[p.ID] = p
	return nil
}
func (r *fakeProfileRepo) Deactivate(id string) error {
	if p, ok := r.s.profiles[id]; ok {
		p.IsActive = false
	}
	return nil
}
