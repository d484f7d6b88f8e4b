package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

func TestWithdrawal_CanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.WithdrawalStatusPending, entity.WithdrawalStatusApproved, true},
		{entity.WithdrawalStatusPending, entity.WithdrawalStatusRejected, true},
		{entity.WithdrawalStatusPending, entity.WithdrawalStatusProcessed, false},
		{entity.WithdrawalStatusApproved, entity.WithdrawalStatusProcessed, true},
		{entity.WithdrawalStatusApproved, entity.WithdrawalStatusFailed, true},
		{entity.WithdrawalStatusApproved, entity.WithdrawalStatusRejected, false},
		// Terminais: nada sai de rejected/processed/failed
		{entity.WithdrawalStatusRejected, entity.WithdrawalStatusApproved, false},
		{entity.WithdrawalStatusProcessed, entity.WithdrawalStatusFailed, false},
		{entity.WithdrawalStatusFailed, entity.WithdrawalStatusPending, false},
	}
	for _, c := range cases {
		w := &entity.Withdrawal{Status: c.from}
		assert.Equal(t, c.ok, w.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestWithdrawal_CountsAgainstBalance(t *testing.T) {
	assert.True(t, (&entity.Withdrawal{Status: entity.WithdrawalStatusProcessed}).CountsAgainstBalance())
	assert.True(t, (&entity.Withdrawal{Status: entity.WithdrawalStatusApproved}).CountsAgainstBalance())
	assert.False(t, (&entity.Withdrawal{Status: entity.WithdrawalStatusPending}).CountsAgainstBalance())
	assert.False(t, (&entity.Withdrawal{Status: entity.WithdrawalStatusRejected}).CountsAgainstBalance())
}
