package coingecko

import (
	"context"
	"encoding/json"
)

// ExchangesParams holds the pagination switches of /exchanges
type ExchangesParams struct {
	PerPage int
	Page    int
}

// ExchangeTickersParams holds the optional switches of /exchanges/{id}/tickers
type ExchangeTickersParams struct {
	CoinIDs             []string
	IncludeExchangeLogo bool
	Page                int
	Depth               bool
	Order               string
}

// GetExchanges lists all exchanges with volume data, paginated to 100 items
func (c *Client) GetExchanges(ctx context.Context, opts *ExchangesParams) (json.RawMessage, error) {
	params := Params{}
	if opts != nil {
		if opts.PerPage > 0 {
			params["per_page"] = opts.PerPage
		}
		if opts.Page > 0 {
			params["page"] = opts.Page
		}
	}

	return c.Call(ctx, EndpointExchanges, params)
}

// GetExchangesList lists all supported exchange ids and names
func (c *Client) GetExchangesList(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointExchangesList, nil)
}

// GetExchange gets exchange volume in BTC and top tickers
func (c *Client) GetExchange(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Call(ctx, EndpointExchangeByID, Params{"id": id})
}

// GetExchangeTickers gets exchange tickers, paginated to 100 items
func (c *Client) GetExchangeTickers(ctx context.Context, id string, opts *ExchangeTickersParams) (json.RawMessage, error) {
	params := Params{"id": id}
	if opts != nil {
		if len(opts.CoinIDs) > 0 {
			params["coin_ids"] = opts.CoinIDs
		}
		if opts.IncludeExchangeLogo {
			params["include_exchange_logo"] = true
		}
		if opts.Page > 0 {
			params["page"] = opts.Page
		}
		if opts.Depth {
			params["depth"] = true
		}
		if opts.Order != "" {
			params["order"] = opts.Order
		}
	}

	return c.Call(ctx, EndpointExchangeTickers, params)
}

// GetExchangeVolumeChart gets volume chart data for an exchange
func (c *Client) GetExchangeVolumeChart(ctx context.Context, id string, days int) (json.RawMessage, error) {
	params := Params{
		"id":   id,
		"days": days,
	}

	return c.Call(ctx, EndpointExchangeVolumeChart, params)
}

// GetExchangeRates gets BTC-to-currency exchange rates
func (c *Client) GetExchangeRates(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointExchangeRates, nil)
}
