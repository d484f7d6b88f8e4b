package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/rifa-pro/internal/domain/access"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

func TestCheck_AdminTemTodasAsPermissoes(t *testing.T) {
	for _, perm := range []access.Permission{
		access.PermAdminRaffles, access.PermAdminWithdrawals,
		access.PermPartnerPortal, access.PermPartnerWithdraw,
	} {
		d := access.Check(entity.RoleAdmin, perm)
		assert.True(t, d.Allowed, "admin deve ter %s", perm)
		assert.Empty(t, d.Reason)
	}
}

func TestCheck_ParceiroNaoAcessaBackoffice(t *testing.T) {
	d := access.Check(entity.RolePartner, access.PermAdminWithdrawals)
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason, "negação deve explicar o motivo")
}

func TestCheck_ClienteSoNavega(t *testing.T) {
	assert.False(t, access.Check(entity.RoleCustomer, access.PermPartnerPortal).Allowed)
}

func TestCheck_PapelDesconhecido(t *testing.T) {
	d := access.Check("hacker", access.PermAdminRaffles)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "desconhecido")
}
