package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"vearn/internal/certificate"
	"vearn/internal/txn"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	DefaultRelayURL      = "https://tos.vecha.in/"
	DefaultMaxPolls      = 60
	DefaultRelayInterval = time.Second
)

var ErrRelayTimeout error = errors.New("wallet did not answer the signing request")
var ErrRelayResponse error = errors.New("malformed wallet response")

// DeclinedError is returned when the wallet answers with an error, most
// commonly because the user rejected the request.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("%s: %s", txn.ErrSignerDeclined.Error(), e.Reason)
}

func (e *DeclinedError) Is(target error) bool {
	return target == txn.ErrSignerDeclined
}

type relayRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Nonce   string      `json:"nonce"`
}

type relayOptions struct {
	Signer  string `json:"signer,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type txPayload struct {
	Message []txn.Clause `json:"message"`
	Options relayOptions `json:"options"`
}

type certMessage struct {
	Purpose string              `json:"purpose"`
	Payload certificate.Payload `json:"payload"`
}

type certPayload struct {
	Message certMessage  `json:"message"`
	Options relayOptions `json:"options"`
}

type relayResponse struct {
	Error   string          `json:"error"`
	Payload json.RawMessage `json:"payload"`
}

type txResponse struct {
	TxID   string `json:"txid"`
	Signer string `json:"signer"`
}

type certResponse struct {
	Annex struct {
		Domain    string `json:"domain"`
		Timestamp int64  `json:"timestamp"`
		Signer    string `json:"signer"`
	} `json:"annex"`
	Signature string `json:"signature"`
}

// Relay hands signing requests to Sync2 or VeWorld through the transaction
// relay service and waits for the wallet's answer.
type Relay struct {
	baseURL  string
	http     *fasthttp.Client
	interval time.Duration
	maxPolls int
	timeout  time.Duration
}

// NewRelay is a constructor function for the Relay type.
func NewRelay(baseURL string, maxPolls int, interval time.Duration) *Relay {
	if baseURL == "" {
		baseURL = DefaultRelayURL
	}
	if maxPolls <= 0 {
		maxPolls = DefaultMaxPolls
	}
	if interval <= 0 {
		interval = DefaultRelayInterval
	}
	return &Relay{
		baseURL:  strings.TrimRight(baseURL, "/") + "/",
		http:     &fasthttp.Client{MaxConnWaitTimeout: 10 * time.Second},
		interval: interval,
		maxPolls: maxPolls,
		timeout:  30 * time.Second,
	}
}

func (r *Relay) SignTx(ctx context.Context, req txn.SigningRequest) (txn.Handle, error) {
	payload := txPayload{
		Message: req.Clauses(),
		Options: relayOptions{Signer: req.Signer(), Comment: req.Comment()},
	}

	var resp txResponse
	if err := r.request(ctx, "tx", payload, &resp); err != nil {
		return txn.Handle{}, err
	}
	if resp.TxID == "" {
		return txn.Handle{}, fmt.Errorf("%w: missing txid", ErrRelayResponse)
	}

	return txn.Handle{TxID: strings.ToLower(resp.TxID), Signer: strings.ToLower(resp.Signer)}, nil
}

// SignCert asks the wallet to sign cert's purpose and payload. Signer is an
// optional hint; the wallet decides the final signer.
func (r *Relay) SignCert(ctx context.Context, cert certificate.Certificate) (certificate.Certificate, error) {
	payload := certPayload{
		Message: certMessage{Purpose: cert.Purpose, Payload: cert.Payload},
		Options: relayOptions{Signer: strings.ToLower(cert.Signer)},
	}

	var resp certResponse
	if err := r.request(ctx, "cert", payload, &resp); err != nil {
		return certificate.Certificate{}, err
	}

	cert.Domain = resp.Annex.Domain
	cert.Timestamp = resp.Annex.Timestamp
	cert.Signer = resp.Annex.Signer
	cert.Signature = resp.Signature
	return cert, nil
}

func (r *Relay) request(ctx context.Context, kind string, payload, out interface{}) error {
	id := uuid.NewString()

	body, err := json.Marshal(relayRequest{Type: kind, Payload: payload, Nonce: uuid.NewString()})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", kind, err)
	}

	status, _, err := r.do(ctx, fasthttp.MethodPost, r.baseURL+id, body)
	if err != nil {
		return fmt.Errorf("post %s request: %w", kind, err)
	}
	if status != fasthttp.StatusOK && status != fasthttp.StatusCreated && status != fasthttp.StatusNoContent {
		return fmt.Errorf("post %s request: status %d", kind, status)
	}

	raw, err := r.poll(ctx, r.baseURL+id+"-resp?wait=1")
	if err != nil {
		return err
	}

	var resp relayResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("%w: %w", ErrRelayResponse, err)
	}
	if resp.Error != "" {
		return &DeclinedError{Reason: resp.Error}
	}
	if err := json.Unmarshal(resp.Payload, out); err != nil {
		return fmt.Errorf("%w: %w", ErrRelayResponse, err)
	}
	return nil
}

func (r *Relay) poll(ctx context.Context, url string) ([]byte, error) {
	for i := 0; i < r.maxPolls; i++ {
		status, body, err := r.do(ctx, fasthttp.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("poll wallet response: %w", err)
		}
		if status == fasthttp.StatusOK && len(strings.TrimSpace(string(body))) > 0 {
			return body, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.interval):
		}
	}
	return nil, ErrRelayTimeout
}

func (r *Relay) do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(url)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	deadline := time.Now().Add(r.timeout)
	ctxDeadline := false
	if d, ok := ctx.Deadline(); ok && !d.After(deadline) {
		deadline, ctxDeadline = d, true
	}
	if err := r.http.DoDeadline(req, resp, deadline); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, ctxErr
		}
		if ctxDeadline && errors.Is(err, fasthttp.ErrTimeout) {
			return 0, nil, context.DeadlineExceeded
		}
		return 0, nil, err
	}

	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return resp.StatusCode(), out, nil
}
