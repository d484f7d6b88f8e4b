package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrProfileNotFound    = errors.New("perfil não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrRaffleNotActive    = errors.New("a rifa não está ativa")
	ErrInvalidTransition  = errors.New("transição de status inválida")
)

// InsufficientNumbersError indica que a rifa não tem números livres suficientes.
// Available é quanto ainda resta, exposto na mensagem ao comprador.
type InsufficientNumbersError struct {
	Available int
}

func (e *InsufficientNumbersError) Error() string {
	return fmt.Sprintf("números insuficientes: restam apenas %d disponíveis", e.Available)
}

// InsufficientBalanceError indica saldo insuficiente para o saque solicitado.
// Available é o saldo disponível do parceiro, exposto na mensagem.
type InsufficientBalanceError struct {
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("saldo insuficiente: disponível R$ %s", e.Available.StringFixed(2))
}
