package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"seguro_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway collects premiums and late fees through Mercado Pago.
//
// In mock mode no request leaves the process: the payload is echoed back as an
// approved payment so local environments can exercise the full flow.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: utcNow}, nil
	}
	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: utcNow}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g == nil || g.client == nil {
		log.Printf("[billing][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[billing][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[billing][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	at := g.now()
	id := strconv.FormatInt(at.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_approved"] = at.Format(time.RFC3339Nano)

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[billing][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[billing][gateway] mock create success provider_payment_id=%s", id)
	return id, "approved", b, nil
}

func utcNow() time.Time { return time.Now().UTC() }
