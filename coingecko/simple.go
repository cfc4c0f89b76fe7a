package coingecko

import "context"

// PriceParams holds the optional switches of the simple price endpoints.
// Zero-value fields are omitted from the request.
type PriceParams struct {
	IncludeMarketCap     bool
	Include24hrVol       bool
	Include24hrChange    bool
	IncludeLastUpdatedAt bool
	// Precision is the number of decimal places, "full" for full precision
	Precision string
}

func (p *PriceParams) apply(params Params) {
	if p == nil {
		return
	}
	if p.IncludeMarketCap {
		params["include_market_cap"] = true
	}
	if p.Include24hrVol {
		params["include_24hr_vol"] = true
	}
	if p.Include24hrChange {
		params["include_24hr_change"] = true
	}
	if p.IncludeLastUpdatedAt {
		params["include_last_updated_at"] = true
	}
	if p.Precision != "" {
		params["precision"] = p.Precision
	}
}

// Ping checks API server status
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	var result PingResponse
	if err := c.callInto(ctx, EndpointPing, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSimplePrice gets the current price of coins in the given currencies
func (c *Client) GetSimplePrice(ctx context.Context, ids, vsCurrencies []string, opts *PriceParams) (SimplePrice, error) {
	params := Params{
		"ids":           ids,
		"vs_currencies": vsCurrencies,
	}
	opts.apply(params)

	var result SimplePrice
	if err := c.callInto(ctx, EndpointSimplePrice, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSimpleTokenPrice gets current prices of tokens on a platform by contract address
func (c *Client) GetSimpleTokenPrice(ctx context.Context, id string, contractAddresses, vsCurrencies []string, opts *PriceParams) (SimplePrice, error) {
	params := Params{
		"id":                 id,
		"contract_addresses": contractAddresses,
		"vs_currencies":      vsCurrencies,
	}
	opts.apply(params)

	var result SimplePrice
	if err := c.callInto(ctx, EndpointSimpleTokenPrice, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSupportedVsCurrencies gets the list of supported vs currencies
func (c *Client) GetSupportedVsCurrencies(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.callInto(ctx, EndpointSupportedVsCurrencies, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
