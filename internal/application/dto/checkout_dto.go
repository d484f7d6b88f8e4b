package dto

// CreateCheckoutRequest dados do modal de checkout da loja.
// Mesmos campos da venda; a rifa ativa e o preço são resolvidos no servidor.
type CreateCheckoutRequest struct {
	PartnerSlug      string `json:"partner_slug"`
	CustomerName     string `json:"customer_name"`
	CustomerWhatsApp string `json:"customer_whatsapp"`
	CustomerCity     string `json:"customer_city"`
	Quantity         int    `json:"quantity"`
}

// CheckoutResponse sessão criada no provedor de pagamento.
type CheckoutResponse struct {
	SaleID    string `json:"sale_id"`
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// PrizeMatch número comprado que bateu com um premiado.
type PrizeMatch struct {
	Number    int    `json:"number"`
	PrizeName string `json:"prize_name"`
}

// VerifyPaymentResponse resultado do poll de verificação.
// Quando Paid, Numbers traz os números gerados e Prizes os prêmios ganhos.
type VerifyPaymentResponse struct {
	Paid    bool         `json:"paid"`
	Status  string       `json:"status"`
	Numbers []int        `json:"numbers,omitempty"`
	Prizes  []PrizeMatch `json:"prizes,omitempty"`
}
