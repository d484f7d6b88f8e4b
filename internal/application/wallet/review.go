package wallet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/rifa-pro/internal/application/dto"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

// ReviewWithdrawal aplica uma transição de status pelo admin. A máquina de
// estados do saque decide o que é permitido; rejeição exige motivo. Cada
// transição carimba quem processou e quando.
func (uc *UseCase) ReviewWithdrawal(ctx context.Context, adminID, withdrawalID string, in dto.ReviewWithdrawalRequest) (*entity.Withdrawal, error) {
	switch in.Status {
	case entity.WithdrawalStatusApproved, entity.WithdrawalStatusRejected,
		entity.WithdrawalStatusProcessed, entity.WithdrawalStatusFailed:
	default:
		return nil, fmt.Errorf("status de destino desconhecido: %w", domain.ErrInvalidInput)
	}
	if in.Status == entity.WithdrawalStatusRejected && strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("motivo é obrigatório na rejeição: %w", domain.ErrInvalidInput)
	}

	w, err := uc.withdrawalRepo.GetByID(withdrawalID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if !w.CanTransition(in.Status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	w.Status = in.Status
	w.ProcessedBy = adminID
	w.ProcessedAt = &now
	w.UpdatedAt = now
	if in.Status == entity.WithdrawalStatusRejected {
		w.RejectReason = in.Reason
	}
	if err := uc.withdrawalRepo.Update(w); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("withdrawal_id", w.ID).
		Str("status", w.Status).
		Str("by", adminID).
		Msg("saque revisado")
	return w, nil
}
