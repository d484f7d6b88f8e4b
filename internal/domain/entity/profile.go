package entity

import "time"

// Papéis de perfil.
const (
	RoleAdmin    = "admin"
	RolePartner  = "partner"
	RoleCustomer = "customer"
)

// Profile representa uma identidade da plataforma (admin, parceiro ou cliente).
// Slug é único e identifica o link de afiliado do parceiro (/p/<slug>).
// Perfis nunca são removidos fisicamente; desativação via IsActive.
type Profile struct {
	ID           string
	Name         string
	Email        string
	WhatsApp     string
	City         string
	Slug         string
	Role         string
	PasswordHash string
	PixKey       string // chave PIX padrão para recebimento de saques
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActivePartner indica se o perfil pode receber atribuição de comissão.
func (p *Profile) IsActivePartner() bool {
	return p != nil && p.Role == RolePartner && p.IsActive
}
