// Package raffle concentra a aritmética pura de preço e comissão,
// sem dependências de persistência.
package raffle

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
)

// UnitPrice devolve o preço unitário a cobrar: DiscountPrice quando a
// quantidade atinge DiscountMinQuantity e há desconto configurado,
// senão PricePerNumber.
func UnitPrice(r *entity.Raffle, quantity int) decimal.Decimal {
	if r.HasDiscount() && quantity >= r.DiscountMinQuantity {
		return r.DiscountPrice
	}
	return r.PricePerNumber
}

// TotalAmount devolve UnitPrice * quantidade.
func TotalAmount(r *entity.Raffle, quantity int) decimal.Decimal {
	return UnitPrice(r, quantity).Mul(decimal.NewFromInt(int64(quantity)))
}

// CommissionAmount calcula a comissão do parceiro: total * taxa / 100,
// arredondado a 2 casas (centavos).
func CommissionAmount(totalAmount, commissionRate decimal.Decimal) decimal.Decimal {
	return totalAmount.Mul(commissionRate).Div(decimal.NewFromInt(100)).Round(2)
}
