// Package access implementa a checagem de permissão tipada consumida pelo
// roteamento HTTP: cada rota declara a Permission exigida e recebe uma
// Decision explícita, em vez de comparações de string espalhadas por guards.
package access

import "github.com/tu-usuario/rifa-pro/internal/domain/entity"

// Permission identifica uma ação protegida da plataforma.
type Permission string

const (
	PermPartnerPortal     Permission = "partner:portal"      // dashboard, stats, listagens próprias
	PermPartnerWithdraw   Permission = "partner:withdraw"    // solicitar saque
	PermPartnerFieldSales Permission = "partner:field-sales" // registrar/acertar vendas porta a porta
	PermAdminRaffles      Permission = "admin:raffles"       // CRUD de rifas, números premiados, sorteio
	PermAdminProfiles     Permission = "admin:profiles"      // supervisão de parceiros
	PermAdminWithdrawals  Permission = "admin:withdrawals"   // revisão de saques
	PermAdminReports      Permission = "admin:reports"       // relatórios financeiros
	PermAdminFieldSales   Permission = "admin:field-sales"   // acertar/cancelar vendas de qualquer parceiro
)

// Decision é o resultado explícito de uma checagem de acesso.
type Decision struct {
	Allowed bool
	Reason  string // preenchido quando negado
}

// rolePermissions mapeia papel -> permissões concedidas. Admin herda as de
// parceiro para poder operar o portal em nome de suporte.
var rolePermissions = map[string][]Permission{
	entity.RoleAdmin: {
		PermAdminRaffles, PermAdminProfiles, PermAdminWithdrawals,
		PermAdminReports, PermAdminFieldSales,
		PermPartnerPortal, PermPartnerWithdraw, PermPartnerFieldSales,
	},
	entity.RolePartner: {
		PermPartnerPortal, PermPartnerWithdraw, PermPartnerFieldSales,
	},
	entity.RoleCustomer: {},
}

// Check decide se o papel possui a permissão.
func Check(role string, perm Permission) Decision {
	perms, ok := rolePermissions[role]
	if !ok {
		return Decision{Allowed: false, Reason: "papel desconhecido: " + role}
	}
	for _, p := range perms {
		if p == perm {
			return Decision{Allowed: true}
		}
	}
	return Decision{Allowed: false, Reason: "papel '" + role + "' não possui a permissão '" + string(perm) + "'"}
}
