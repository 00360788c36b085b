package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"goldboard/internal/model"
)

// PNJFetcher pulls the current gold price list from the PNJ edge API, the
// same feed the original crawler consumed. Each fetch is one day's batch,
// stamped with today's date in the feed's home timezone (UTC+7).
type PNJFetcher struct {
	client *resty.Client
	zone   string
	loc    *time.Location
}

// NewPNJFetcher creates a fetcher with optional proxy support.
func NewPNJFetcher(baseURL, zone, proxyURL string) *PNJFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(3)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		loc = time.FixedZone("ICT", 7*3600)
	}

	return &PNJFetcher{client: client, zone: zone, loc: loc}
}

func (f *PNJFetcher) Name() string { return "pnj" }

// pnjQuote is one row of the PNJ price list. Prices arrive as bare numbers;
// json.Number keeps them lossless for the decimal conversion.
type pnjQuote struct {
	Code string      `json:"masp"`
	Name string      `json:"tensp"`
	Buy  json.Number `json:"giamua"`
	Sell json.Number `json:"giaban"`
}

type pnjResponse struct {
	Data []pnjQuote `json:"data"`
}

// FetchQuotes fetches today's quotations.
func (f *PNJFetcher) FetchQuotes(ctx context.Context) ([]model.PriceRecord, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("zone", f.zone).
		Get("/ecom-frontend/v1/get-gold-price")
	if err != nil {
		return nil, fmt.Errorf("fetch quotes: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch quotes: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	var parsed pnjResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("fetch quotes: empty price list")
	}

	today := model.DateOf(time.Now().In(f.loc))
	records := make([]model.PriceRecord, 0, len(parsed.Data))
	for _, q := range parsed.Data {
		rec := model.PriceRecord{
			Date:        today,
			ProductCode: q.Code,
			ProductName: q.Name,
		}
		if q.Buy != "" {
			buy, err := decimal.NewFromString(q.Buy.String())
			if err != nil {
				return nil, fmt.Errorf("decode buy price for %s: %w", q.Code, err)
			}
			rec.BuyPrice = buy
		}
		if q.Sell != "" {
			sell, err := decimal.NewFromString(q.Sell.String())
			if err != nil {
				return nil, fmt.Errorf("decode sell price for %s: %w", q.Code, err)
			}
			rec.SellPrice = sell
		}
		records = append(records, rec)
	}
	return records, nil
}
