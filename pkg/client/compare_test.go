package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// compareServer replies with a fixed amount_out per slippage value.
func compareServer(t *testing.T, amounts map[int]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Slippage *int `json:"slippage"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.NotNil(t, payload.Slippage, "comparator must always pin a slippage")

		amount, ok := amounts[*payload.Slippage]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, `{"message": "unexpected slippage %d"}`, *payload.Slippage)
			return
		}

		fmt.Fprintf(w, `{
			"request_id": "req-%d",
			"amount_out": %q,
			"min_receive": %q,
			"fee": "0.1",
			"slippage": %d,
			"tx": {"to": "0x1", "value": 0, "data": "0x"}
		}`, *payload.Slippage, amount, amount, *payload.Slippage)
	}))
}

func TestCompareQuotesPicks(t *testing.T) {
	srv := compareServer(t, map[int]string{10: "100.0", 50: "105.5", 100: "99.9"})
	defer srv.Close()

	comparison, err := New(srv.URL).CompareQuotes(context.Background(), validRequest(), nil)
	require.NoError(t, err)

	require.Len(t, comparison.Quotes, 3)
	require.Equal(t, []int{10, 50, 100}, []int{
		comparison.Quotes[0].Slippage,
		comparison.Quotes[1].Slippage,
		comparison.Quotes[2].Slippage,
	})

	require.Equal(t, 50, comparison.Best.Slippage)
	require.Equal(t, "105.5", comparison.Best.AmountOut)
	require.Equal(t, 10, comparison.Safest.Slippage)
}

func TestCompareQuotesNumericNotLexicographic(t *testing.T) {
	// "9.5" > "100.0" lexicographically; numerically 100.0 wins.
	srv := compareServer(t, map[int]string{10: "9.5", 50: "100.0", 100: "12.0"})
	defer srv.Close()

	comparison, err := New(srv.URL).CompareQuotes(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	require.Equal(t, 50, comparison.Best.Slippage)
}

func TestCompareQuotesTieBreakFirstOccurrence(t *testing.T) {
	srv := compareServer(t, map[int]string{10: "100.0", 50: "100.0", 100: "100.0"})
	defer srv.Close()

	comparison, err := New(srv.URL).CompareQuotes(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	require.Equal(t, 10, comparison.Best.Slippage)
}

func TestCompareQuotesExplicitSlippage(t *testing.T) {
	srv := compareServer(t, map[int]string{25: "101.0"})
	defer srv.Close()

	bps := 25
	comparison, err := New(srv.URL).CompareQuotes(context.Background(), validRequest(), &bps)
	require.NoError(t, err)

	require.Len(t, comparison.Quotes, 1)
	require.Equal(t, 25, comparison.Best.Slippage)
	require.Equal(t, 25, comparison.Safest.Slippage)
}

func TestCompareQuotesPropagatesFailure(t *testing.T) {
	// Only two of the three slippage values are known to the server.
	srv := compareServer(t, map[int]string{10: "100.0", 50: "105.5"})
	defer srv.Close()

	_, err := New(srv.URL).CompareQuotes(context.Background(), validRequest(), nil)
	require.Error(t, err)

	var httpErr *HTTPStatusError
	require.ErrorAs(t, err, &httpErr)
}
