package coingecko

import (
	"context"
	"encoding/json"
)

// IndexesParams holds the pagination switches of /indexes
type IndexesParams struct {
	PerPage int
	Page    int
}

// GetIndexes lists all market indexes, paginated to 100 items
func (c *Client) GetIndexes(ctx context.Context, opts *IndexesParams) (json.RawMessage, error) {
	params := Params{}
	if opts != nil {
		if opts.PerPage > 0 {
			params["per_page"] = opts.PerPage
		}
		if opts.Page > 0 {
			params["page"] = opts.Page
		}
	}

	return c.Call(ctx, EndpointIndexes, params)
}

// GetIndexesList lists all market index ids and names
func (c *Client) GetIndexesList(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointIndexesList, nil)
}

// GetIndexByMarketID gets one market index by market id and index id
func (c *Client) GetIndexByMarketID(ctx context.Context, marketID, id string) (json.RawMessage, error) {
	return c.Call(ctx, EndpointIndexByMarketID, Params{"market_id": marketID, "id": id})
}

// GetAssetPlatforms lists all asset platforms
func (c *Client) GetAssetPlatforms(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointAssetPlatforms, nil)
}

// GetSearchTrending gets the top trending coins as searched in the last 24h
func (c *Client) GetSearchTrending(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointSearchTrending, nil)
}

// GetGlobal gets cryptocurrency global data
func (c *Client) GetGlobal(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointGlobal, nil)
}

// GetGlobalDefi gets global decentralized finance data
func (c *Client) GetGlobalDefi(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointGlobalDefi, nil)
}

// GetDerivatives lists all derivative tickers
func (c *Client) GetDerivatives(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointDerivatives, nil)
}

// GetDerivativesExchanges lists all derivative exchanges
func (c *Client) GetDerivativesExchanges(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointDerivativesExchanges, nil)
}

// GetDerivativesExchange shows derivative exchange data. includeTickers is
// "all", "unexpired" or empty to leave tickers out.
func (c *Client) GetDerivativesExchange(ctx context.Context, id, includeTickers string) (json.RawMessage, error) {
	params := Params{"id": id}
	if includeTickers != "" {
		params["include_tickers"] = includeTickers
	}

	return c.Call(ctx, EndpointDerivativesExchangeByID, params)
}

// GetDerivativesExchangesList lists all derivative exchange names and identifiers
func (c *Client) GetDerivativesExchangesList(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, EndpointDerivativesExchangesList, nil)
}

// GetCompaniesPublicTreasury gets public companies' bitcoin or ethereum holdings
func (c *Client) GetCompaniesPublicTreasury(ctx context.Context, coinID string) (json.RawMessage, error) {
	return c.Call(ctx, EndpointCompaniesTreasury, Params{"coin_id": coinID})
}
