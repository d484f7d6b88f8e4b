// Package payment implementa o cliente HTTP do provedor de checkout PIX.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	app "github.com/tu-usuario/rifa-pro/internal/application/payment"
	"github.com/tu-usuario/rifa-pro/pkg/config"
	"github.com/tu-usuario/rifa-pro/pkg/logger"
)

var _ app.CheckoutProvider = (*PixClient)(nil)

// PixClient fala com a API REST do provedor de pagamento hospedado.
// Erros do provedor sobem com status e corpo; nenhuma re-tentativa aqui.
type PixClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logger.Logger
}

// NewPixClient constrói o cliente com timeout próprio (o checkout é chamado
// dentro de requests da loja; não pode pendurar o handler).
func NewPixClient(cfg config.PaymentConfig, log *logger.Logger) *PixClient {
	return &PixClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

type sessionPayload struct {
	ReferenceID   string `json:"reference_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

type sessionResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
	Paid        bool   `json:"paid"`
}

type providerError struct {
	Message string `json:"message"`
}

// CreateSession abre uma sessão de checkout PIX no provedor.
func (c *PixClient) CreateSession(ctx context.Context, req app.SessionRequest) (*app.Session, error) {
	payload := sessionPayload{
		ReferenceID:   req.SaleID,
		Description:   req.Description,
		Amount:        req.Amount.StringFixed(2),
		Currency:      "BRL",
		PaymentMethod: "pix",
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerWhatsApp,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", payload, &resp); err != nil {
		return nil, err
	}
	return &app.Session{ID: resp.ID, URL: resp.CheckoutURL}, nil
}

// GetSessionStatus consulta a situação da sessão.
func (c *PixClient) GetSessionStatus(ctx context.Context, sessionID string) (*app.SessionStatus, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+sessionID, nil, &resp); err != nil {
		return nil, err
	}
	return &app.SessionStatus{ID: resp.ID, Status: resp.Status, Paid: resp.Paid}, nil
}

func (c *PixClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("payment: serializar payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("payment: montar request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("payment: chamada ao provedor: %w", err)
	}
	defer res.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("chamada ao provedor de pagamento")

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("payment: ler resposta: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var perr providerError
		if json.Unmarshal(raw, &perr) == nil && perr.Message != "" {
			return fmt.Errorf("payment: provedor respondeu %d: %s", res.StatusCode, perr.Message)
		}
		return fmt.Errorf("payment: provedor respondeu %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("payment: decodificar resposta: %w", err)
		}
	}
	return nil
}
