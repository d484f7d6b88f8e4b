package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rifa-pro/internal/application/sales"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

func newDoorToDoorUC(s *memStore) *sales.DoorToDoorUseCase {
	allocator := sales.NewAllocateNumbersUseCase(&fakeTxRunner{s})
	return sales.NewDoorToDoorUseCase(&fakeTxRunner{s}, &fakeProfileRepo{s}, allocator, testLogger())
}

func TestDoorToDoor_RegistraEAlocaNaMesmaOperacao(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	sale, numbers, err := uc.Register(context.Background(), "p1", in)
	require.NoError(t, err)

	assert.True(t, sale.DoorToDoor)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
	assert.Equal(t, "p1", sale.PartnerID)
	assert.Equal(t, "2.99", sale.CommissionAmount.StringFixed(2))
	assert.Len(t, numbers, 5)
	assert.Len(t, s.numbers["r1"], 5, "números reservados na hora do registro")
}

func TestDoorToDoor_SemNumerosNadaEGravado(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 5, entity.RaffleStatusActive)
	seedNumbers(s, "r1", "antiga", 1, 2, 3)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1") // pede 5, restam 2
	in.PaymentMethod = entity.PaymentMethodCash
	_, _, err := uc.Register(context.Background(), "p1", in)

	var insufficient *domain.InsufficientNumbersError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Empty(t, s.sales, "a venda não pode sobrar sem números")
}

func TestDoorToDoor_ParceiroInativoNaoRegistra(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", false)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	_, _, err := uc.Register(context.Background(), "p1", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDoorToDoor_MetodoCartaoRejeitado(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCard
	_, _, err := uc.Register(context.Background(), "p1", in)

	var validation *sales.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestDoorToDoor_AcertoPeloDono(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	sale, _, err := uc.Register(context.Background(), "p1", in)
	require.NoError(t, err)

	settled, err := uc.Settle(context.Background(), "p1", entity.RolePartner, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, settled.Status)
	require.NotNil(t, settled.SettledAt)
}

func TestDoorToDoor_OutroParceiroNaoMexe(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	seedPartner(s, "p2", "ana", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	sale, _, err := uc.Register(context.Background(), "p1", in)
	require.NoError(t, err)

	_, err = uc.Settle(context.Background(), "p2", entity.RolePartner, sale.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin pode acertar a venda de qualquer parceiro
	_, err = uc.Settle(context.Background(), "admin-1", entity.RoleAdmin, sale.ID)
	assert.NoError(t, err)
}

func TestDoorToDoor_CancelamentoLiberaNumeros(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	sale, _, err := uc.Register(context.Background(), "p1", in)
	require.NoError(t, err)
	require.Len(t, s.numbers["r1"], 5)

	cancelled, err := uc.Cancel(context.Background(), "p1", entity.RolePartner, sale.ID, "cliente desistiu")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, cancelled.Status)
	assert.Equal(t, "cliente desistiu", cancelled.CancelReason)
	assert.Empty(t, s.numbers["r1"], "números voltam ao pool da rifa")
}

func TestDoorToDoor_CancelamentoExigeMotivo(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	sale, _, err := uc.Register(context.Background(), "p1", in)
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), "p1", entity.RolePartner, sale.ID, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDoorToDoor_AcertoDuploConflita(t *testing.T) {
	s := newMemStore()
	seedRaffle(s, "r1", 50, entity.RaffleStatusActive)
	seedPartner(s, "p1", "joao", true)
	uc := newDoorToDoorUC(s)

	in := validRequest("r1")
	in.PaymentMethod = entity.PaymentMethodCash
	sale, _, err := uc.Register(context.Background(), "p1", in)
	require.NoError(t, err)

	_, err = uc.Settle(context.Background(), "p1", entity.RolePartner, sale.ID)
	require.NoError(t, err)

	_, err = uc.Settle(context.Background(), "p1", entity.RolePartner, sale.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
