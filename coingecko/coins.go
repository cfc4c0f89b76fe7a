package coingecko

import (
	"context"
	"encoding/json"
)

// CoinsListParams holds the optional switches of /coins/list
type CoinsListParams struct {
	IncludePlatform bool
}

// MarketsParams holds the optional switches of /coins/markets.
// Zero-value fields are omitted from the request.
type MarketsParams struct {
	IDs                   []string
	Category              string
	Order                 string
	PerPage               int
	Page                  int
	Sparkline             bool
	PriceChangePercentage []string
}

// CoinParams holds the optional switches of /coins/{id}. Set fields request
// the corresponding payload section; unset fields leave the server default.
type CoinParams struct {
	Localization  bool
	Tickers       bool
	MarketData    bool
	CommunityData bool
	DeveloperData bool
	Sparkline     bool
}

// TickersParams holds the optional switches of /coins/{id}/tickers
type TickersParams struct {
	ExchangeIDs         []string
	IncludeExchangeLogo bool
	Page                int
	Order               string
	Depth               bool
}

// MarketChartParams holds the optional switches of /coins/{id}/market_chart
type MarketChartParams struct {
	Interval  string
	Precision string
}

// GetCoinsList gets all coin ids usable in other API calls
func (c *Client) GetCoinsList(ctx context.Context, opts *CoinsListParams) ([]CoinListItem, error) {
	params := Params{}
	if opts != nil && opts.IncludePlatform {
		params["include_platform"] = true
	}

	var result []CoinListItem
	if err := c.callInto(ctx, EndpointCoinsList, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCoinsMarkets gets market data for coins priced in vsCurrency
func (c *Client) GetCoinsMarkets(ctx context.Context, vsCurrency string, opts *MarketsParams) ([]CoinMarket, error) {
	params := Params{"vs_currency": vsCurrency}
	if opts != nil {
		if len(opts.IDs) > 0 {
			params["ids"] = opts.IDs
		}
		if opts.Category != "" {
			params["category"] = opts.Category
		}
		if opts.Order != "" {
			params["order"] = opts.Order
		}
		if opts.PerPage > 0 {
			params["per_page"] = opts.PerPage
		}
		if opts.Page > 0 {
			params["page"] = opts.Page
		}
		if opts.Sparkline {
			params["sparkline"] = true
		}
		if len(opts.PriceChangePercentage) > 0 {
			params["price_change_percentage"] = opts.PriceChangePercentage
		}
	}

	var result []CoinMarket
	if err := c.callInto(ctx, EndpointCoinsMarkets, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCoinByID gets current data for a coin
func (c *Client) GetCoinByID(ctx context.Context, id string, opts *CoinParams) (json.RawMessage, error) {
	params := Params{"id": id}
	if opts != nil {
		if opts.Localization {
			params["localization"] = true
		}
		if opts.Tickers {
			params["tickers"] = true
		}
		if opts.MarketData {
			params["market_data"] = true
		}
		if opts.CommunityData {
			params["community_data"] = true
		}
		if opts.DeveloperData {
			params["developer_data"] = true
		}
		if opts.Sparkline {
			params["sparkline"] = true
		}
	}

	return c.Call(ctx, EndpointCoinByID, params)
}

// GetCoinTickers gets coin tickers, paginated to 100 items
func (c *Client) GetCoinTickers(ctx context.Context, id string, opts *TickersParams) (json.RawMessage, error) {
	params := Params{"id": id}
	if opts != nil {
		if len(opts.ExchangeIDs) > 0 {
			params["exchange_ids"] = opts.ExchangeIDs
		}
		if opts.IncludeExchangeLogo {
			params["include_exchange_logo"] = true
		}
		if opts.Page > 0 {
			params["page"] = opts.Page
		}
		if opts.Order != "" {
			params["order"] = opts.Order
		}
		if opts.Depth {
			params["depth"] = true
		}
	}

	return c.Call(ctx, EndpointCoinTickers, params)
}

// GetCoinHistory gets historical data for a coin at a date (dd-mm-yyyy)
func (c *Client) GetCoinHistory(ctx context.Context, id, date string, localization bool) (json.RawMessage, error) {
	params := Params{"id": id, "date": date}
	if localization {
		params["localization"] = true
	}

	return c.Call(ctx, EndpointCoinHistory, params)
}

// GetCoinMarketChart gets historical market data (price, market cap, volume)
func (c *Client) GetCoinMarketChart(ctx context.Context, id, vsCurrency, days string, opts *MarketChartParams) (json.RawMessage, error) {
	params := Params{
		"id":          id,
		"vs_currency": vsCurrency,
		"days":        days,
	}
	if opts != nil {
		if opts.Interval != "" {
			params["interval"] = opts.Interval
		}
		if opts.Precision != "" {
			params["precision"] = opts.Precision
		}
	}

	return c.Call(ctx, EndpointCoinMarketChart, params)
}

// GetCoinMarketChartRange gets historical market data within a unix timestamp range
func (c *Client) GetCoinMarketChartRange(ctx context.Context, id, vsCurrency string, from, to int64) (json.RawMessage, error) {
	params := Params{
		"id":          id,
		"vs_currency": vsCurrency,
		"from":        from,
		"to":          to,
	}

	return c.Call(ctx, EndpointCoinMarketChartRange, params)
}

// GetCoinOHLC gets a coin's OHLC candles
func (c *Client) GetCoinOHLC(ctx context.Context, id, vsCurrency, days string) (json.RawMessage, error) {
	params := Params{
		"id":          id,
		"vs_currency": vsCurrency,
		"days":        days,
	}

	return c.Call(ctx, EndpointCoinOHLC, params)
}

// GetCoinContract gets coin info by platform id and contract address
func (c *Client) GetCoinContract(ctx context.Context, id, contractAddress string) (json.RawMessage, error) {
	params := Params{
		"id":               id,
		"contract_address": contractAddress,
	}

	return c.Call(ctx, EndpointCoinContract, params)
}

// GetCoinContractMarketChart gets historical market data by contract address
func (c *Client) GetCoinContractMarketChart(ctx context.Context, id, contractAddress, vsCurrency, days string) (json.RawMessage, error) {
	params := Params{
		"id":               id,
		"contract_address": contractAddress,
		"vs_currency":      vsCurrency,
		"days":             days,
	}

	return c.Call(ctx, EndpointCoinContractMarketChart, params)
}

// GetCoinContractMarketChartRange gets historical market data by contract
// address within a unix timestamp range
func (c *Client) GetCoinContractMarketChartRange(ctx context.Context, id, contractAddress, vsCurrency string, from, to int64) (json.RawMessage, error) {
	params := Params{
		"id":               id,
		"contract_address": contractAddress,
		"vs_currency":      vsCurrency,
		"from":             from,
		"to":               to,
	}

	return c.Call(ctx, EndpointCoinContractMarketChartRange, params)
}

// GetCoinCategoriesList lists all coin categories
func (c *Client) GetCoinCategoriesList(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointCoinCategoriesList, nil)
}

// GetCoinCategories lists all coin categories with market data
func (c *Client) GetCoinCategories(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointCoinCategories, nil)
}
