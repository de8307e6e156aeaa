package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gwdto "github.com/radieske/vehicle-auction-poc/internal/payment-gateway-simulator/dto"
)

// Client chama o gateway de pagamento externo
type Client struct {
	BaseURL  string
	Currency string
	HTTP     *http.Client
}

func New(base, currency string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:  base,
		Currency: currency,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// Charge envia a cobrança; qualquer resposta fora de 2xx é erro (e pode ser re-tentada
// porque o gateway deduplica pelo Idempotency-Key)
func (c *Client) Charge(ctx context.Context, req gwdto.ChargeReq) (gwdto.ChargeResp, error) {
	if req.Currency == "" {
		req.Currency = c.Currency
	}
	body, err := json.Marshal(req)
	if err != nil {
		return gwdto.ChargeResp{}, err
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return gwdto.ChargeResp{}, err
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set(gwdto.IdempotencyHeader, req.ChargeID)

	res, err := c.HTTP.Do(hreq)
	if err != nil {
		return gwdto.ChargeResp{}, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return gwdto.ChargeResp{}, fmt.Errorf("gateway charge http %d", res.StatusCode)
	}
	var out gwdto.ChargeResp
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return gwdto.ChargeResp{}, err
	}
	if out.Status != gwdto.StatusCaptured && out.Status != gwdto.StatusDeclined {
		return gwdto.ChargeResp{}, fmt.Errorf("gateway charge: unexpected status %q", out.Status)
	}
	return out, nil
}
