package client

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"wheelx-mcp/pkg/types"
)

// DefaultSlippages are the basis-point values probed when the caller
// does not pin a slippage.
var DefaultSlippages = []int{10, 50, 100}

// QuoteSummary is one comparator entry
type QuoteSummary struct {
	Slippage   int    `json:"slippage"`
	AmountOut  string `json:"amount_out"`
	MinReceive string `json:"min_receive"`
	Fee        string `json:"fee"`
	RequestID  string `json:"request_id"`
}

// Comparison holds the per-slippage quotes plus the derived picks
type Comparison struct {
	Quotes []QuoteSummary `json:"comparison"`
	Best   QuoteSummary   `json:"best_quote"`
	Safest QuoteSummary   `json:"safest_quote"`
}

// CompareQuotes fetches one quote per slippage value and selects the
// best (largest amount_out) and safest (smallest slippage) entries.
// When slippage is nil the DefaultSlippages set is probed. The calls
// are independent and run concurrently; results keep the slippage-set
// order so tie-breaking is deterministic (first occurrence wins).
func (c *WheelXClient) CompareQuotes(ctx context.Context, req types.QuoteRequest, slippage *int) (*Comparison, error) {
	slippages := DefaultSlippages
	if slippage != nil {
		slippages = []int{*slippage}
	}

	quotes := make([]QuoteSummary, len(slippages))
	errs := make([]error, len(slippages))

	var wg sync.WaitGroup
	for i, bps := range slippages {
		wg.Add(1)
		go func(i, bps int) {
			defer wg.Done()

			r := req
			r.Slippage = &bps
			quote, err := c.GetQuote(ctx, r)
			if err != nil {
				errs[i] = err
				return
			}
			quotes[i] = QuoteSummary{
				Slippage:   bps,
				AmountOut:  quote.AmountOut,
				MinReceive: quote.MinReceive,
				Fee:        quote.Fee,
				RequestID:  quote.RequestID,
			}
		}(i, bps)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	best, err := bestQuote(quotes)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Quotes: quotes,
		Best:   best,
		Safest: safestQuote(quotes),
	}, nil
}

// bestQuote picks the entry with the numerically largest amount_out.
// The decimal-string field is parsed before comparing; lexicographic
// comparison would misorder amounts of different widths.
func bestQuote(quotes []QuoteSummary) (QuoteSummary, error) {
	best := quotes[0]
	bestAmount, err := decimal.NewFromString(best.AmountOut)
	if err != nil {
		return QuoteSummary{}, &DecodeError{Err: err}
	}

	for _, q := range quotes[1:] {
		amount, err := decimal.NewFromString(q.AmountOut)
		if err != nil {
			return QuoteSummary{}, &DecodeError{Err: err}
		}
		if amount.GreaterThan(bestAmount) {
			best = q
			bestAmount = amount
		}
	}
	return best, nil
}

func safestQuote(quotes []QuoteSummary) QuoteSummary {
	safest := quotes[0]
	for _, q := range quotes[1:] {
		if q.Slippage < safest.Slippage {
			safest = q
		}
	}
	return safest
}
