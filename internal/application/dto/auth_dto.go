package dto

import "time"

// RegisterRequest cadastro de perfil. Role vazio cadastra como customer;
// "partner" cria o perfil de afiliado com slug gerado a partir do nome.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
	City     string `json:"city"`
	Password string `json:"password"`
	Role     string `json:"role"`
	PixKey   string `json:"pix_key"`
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse perfil sem campos sensíveis.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	WhatsApp  string    `json:"whatsapp"`
	City      string    `json:"city"`
	Slug      string    `json:"slug"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + perfil autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
