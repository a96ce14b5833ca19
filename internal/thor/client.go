package thor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"vearn/internal/txn"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/valyala/fasthttp"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultTimeout      = 10 * time.Second
)

var ErrInvalidChainTag error = errors.New("invalid genesis block id")

var _ txn.ChainReader = (*Client)(nil)

// APIError is returned for any non-200 answer of the node.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, strings.TrimSpace(e.Body))
}

// Client talks to the REST API of a VeChain Thor node. It is safe for concurrent use.
type Client struct {
	baseURL      string
	http         *fasthttp.Client
	timeout      time.Duration
	pollInterval time.Duration
}

// NewClient is a constructor function for the Client type. Zero durations fall
// back to the defaults.
func NewClient(baseURL string, pollInterval, timeout time.Duration) *Client {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &fasthttp.Client{
			MaxConnWaitTimeout: timeout,
			MaxConnsPerHost:    20,
		},
		timeout:      timeout,
		pollInterval: pollInterval,
	}
}

// Receipt returns nil, nil while the transaction is not packed into a block.
func (c *Client) Receipt(ctx context.Context, txID string) (*txn.Receipt, error) {
	var r *receiptJSON
	if err := c.do(ctx, fasthttp.MethodGet, "/transactions/"+txID+"/receipt", nil, &r); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}

	return &txn.Receipt{
		TxID:           r.Meta.TxID,
		Reverted:       r.Reverted,
		BlockID:        r.Meta.BlockID,
		BlockNumber:    r.Meta.BlockNumber,
		BlockTimestamp: r.Meta.BlockTimestamp,
		GasUsed:        r.GasUsed,
		GasPayer:       r.GasPayer,
		Paid:           bigOrZero(r.Paid).String(),
		Reward:         bigOrZero(r.Reward).String(),
		Origin:         r.Meta.TxOrigin,
	}, nil
}

// Receipts looks up several receipts concurrently. Missing receipts are left
// out of the result; lookup failures are joined into the returned error.
func (c *Client) Receipts(ctx context.Context, txIDs []string) (map[string]*txn.Receipt, error) {
	type result struct {
		txID    string
		receipt *txn.Receipt
		err     error
	}

	resultsChan := make(chan result)

	var wg sync.WaitGroup
	for _, txID := range txIDs {
		wg.Add(1)
		go func(txID string) {
			defer wg.Done()
			receipt, err := c.Receipt(ctx, txID)
			if err != nil {
				err = fmt.Errorf("fetching receipt %q: %w", txID, err)
			}
			resultsChan <- result{txID, receipt, err}
		}(txID)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	receipts := make(map[string]*txn.Receipt, len(txIDs))
	var aggrErr error
	for res := range resultsChan {
		if res.err != nil {
			aggrErr = errors.Join(aggrErr, res.err)
			continue
		}
		if res.receipt != nil {
			receipts[res.txID] = res.receipt
		}
	}

	return receipts, aggrErr
}

// Block fetches a block by number, id or "best".
func (c *Client) Block(ctx context.Context, revision string) (*Block, error) {
	var b *Block
	if err := c.do(ctx, fasthttp.MethodGet, "/blocks/"+revision, nil, &b); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &APIError{Method: fasthttp.MethodGet, Path: "/blocks/" + revision, Status: fasthttp.StatusNotFound, Body: "null"}
	}
	return b, nil
}

func (c *Client) BestBlock(ctx context.Context) (*Block, error) {
	return c.Block(ctx, "best")
}

// ChainTag is the last byte of the genesis block id.
func (c *Client) ChainTag(ctx context.Context) (byte, error) {
	genesis, err := c.Block(ctx, "0")
	if err != nil {
		return 0, fmt.Errorf("get genesis block: %w", err)
	}
	id, err := hexutil.Decode(genesis.ID)
	if err != nil || len(id) != 32 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChainTag, genesis.ID)
	}
	return id[len(id)-1], nil
}

func (c *Client) Account(ctx context.Context, address string) (*Account, error) {
	var a accountJSON
	if err := c.do(ctx, fasthttp.MethodGet, "/accounts/"+address, nil, &a); err != nil {
		return nil, err
	}
	return &Account{
		Balance: bigOrZero(a.Balance),
		Energy:  bigOrZero(a.Energy),
		HasCode: a.HasCode,
	}, nil
}

// Call executes clauses against the best block without sending a transaction.
func (c *Client) Call(ctx context.Context, caller string, clauses []txn.Clause) ([]CallResult, error) {
	body := callRequest{
		Clauses: make([]clauseJSON, len(clauses)),
		Caller:  caller,
	}
	for i, cl := range clauses {
		body.Clauses[i] = clauseJSON{To: cl.To, Value: cl.Value, Data: cl.Data}
	}

	var results []CallResult
	if err := c.do(ctx, fasthttp.MethodPost, "/accounts/*", body, &results); err != nil {
		return nil, err
	}
	if len(results) != len(clauses) {
		return nil, fmt.Errorf("call returned %d results for %d clauses", len(results), len(clauses))
	}
	return results, nil
}

// SendRawTransaction broadcasts an RLP encoded signed transaction and returns its id.
func (c *Client) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	var resp rawTxResponse
	if err := c.do(ctx, fasthttp.MethodPost, "/transactions", rawTxRequest{Raw: hexutil.Encode(raw)}, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	deadline, ctxDeadline := requestDeadline(ctx, c.timeout)
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// fasthttp may fire just before the context does
		if ctxDeadline && errors.Is(err, fasthttp.ErrTimeout) {
			return context.DeadlineExceeded
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return &APIError{Method: method, Path: path, Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// requestDeadline picks the earlier of the context deadline and now+timeout,
// reporting whether the context's won.
func requestDeadline(ctx context.Context, timeout time.Duration) (time.Time, bool) {
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && !d.After(deadline) {
		return d, true
	}
	return deadline, false
}
