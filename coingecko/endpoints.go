package coingecko

import "net/http"

// Endpoint names accepted by Client.Call. Each convenience method delegates
// to Call with one of these.
const (
	EndpointPing                         = "ping"
	EndpointSimplePrice                  = "simple_price"
	EndpointSimpleTokenPrice             = "simple_token_price"
	EndpointSupportedVsCurrencies        = "simple_supported_vs_currencies"
	EndpointCoinsList                    = "coins_list"
	EndpointCoinsMarkets                 = "coins_markets"
	EndpointCoinByID                     = "coin_by_id"
	EndpointCoinTickers                  = "coin_tickers"
	EndpointCoinHistory                  = "coin_history"
	EndpointCoinMarketChart              = "coin_market_chart"
	EndpointCoinMarketChartRange         = "coin_market_chart_range"
	EndpointCoinOHLC                     = "coin_ohlc"
	EndpointCoinContract                 = "coin_contract"
	EndpointCoinContractMarketChart      = "coin_contract_market_chart"
	EndpointCoinContractMarketChartRange = "coin_contract_market_chart_range"
	EndpointCoinCategoriesList           = "coin_categories_list"
	EndpointCoinCategories               = "coin_categories"
	EndpointExchanges                    = "exchanges"
	EndpointExchangesList                = "exchanges_list"
	EndpointExchangeByID                 = "exchange_by_id"
	EndpointExchangeTickers              = "exchange_tickers"
	EndpointExchangeVolumeChart          = "exchange_volume_chart"
	EndpointExchangeRates                = "exchange_rates"
	EndpointIndexes                      = "indexes"
	EndpointIndexesList                  = "indexes_list"
	EndpointIndexByMarketID              = "index_by_market_id"
	EndpointAssetPlatforms               = "asset_platforms"
	EndpointSearchTrending               = "search_trending"
	EndpointGlobal                       = "global"
	EndpointGlobalDefi                   = "global_defi"
	EndpointDerivatives                  = "derivatives"
	EndpointDerivativesExchanges         = "derivatives_exchanges"
	EndpointDerivativesExchangeByID      = "derivatives_exchange_by_id"
	EndpointDerivativesExchangesList     = "derivatives_exchanges_list"
	EndpointCompaniesTreasury            = "companies_public_treasury"
)

// Endpoint describes one REST route: its path template, HTTP verb and the
// parameter names it accepts. Path templates may contain {placeholder}
// segments that are filled from same-named required parameters; a parameter
// consumed by the path never appears in the query string.
type Endpoint struct {
	Name     string
	Path     string
	Method   string
	Required []string
	Optional []string
}

// endpoints is the static descriptor table, built once and never mutated.
// Every route the client supports is enumerated here; Call refuses names
// that are not in this table.
var endpoints = buildEndpointTable(
	Endpoint{Name: EndpointPing, Path: "/ping"},
	Endpoint{
		Name:     EndpointSimplePrice,
		Path:     "/simple/price",
		Required: []string{"ids", "vs_currencies"},
		Optional: []string{"include_market_cap", "include_24hr_vol", "include_24hr_change", "include_last_updated_at", "precision"},
	},
	Endpoint{
		Name:     EndpointSimpleTokenPrice,
		Path:     "/simple/token_price/{id}",
		Required: []string{"id", "contract_addresses", "vs_currencies"},
		Optional: []string{"include_market_cap", "include_24hr_vol", "include_24hr_change", "include_last_updated_at", "precision"},
	},
	Endpoint{Name: EndpointSupportedVsCurrencies, Path: "/simple/supported_vs_currencies"},
	Endpoint{
		Name:     EndpointCoinsList,
		Path:     "/coins/list",
		Optional: []string{"include_platform"},
	},
	Endpoint{
		Name:     EndpointCoinsMarkets,
		Path:     "/coins/markets",
		Required: []string{"vs_currency"},
		Optional: []string{"ids", "category", "order", "per_page", "page", "sparkline", "price_change_percentage"},
	},
	Endpoint{
		Name:     EndpointCoinByID,
		Path:     "/coins/{id}",
		Required: []string{"id"},
		Optional: []string{"localization", "tickers", "market_data", "community_data", "developer_data", "sparkline"},
	},
	Endpoint{
		Name:     EndpointCoinTickers,
		Path:     "/coins/{id}/tickers",
		Required: []string{"id"},
		Optional: []string{"exchange_ids", "include_exchange_logo", "page", "order", "depth"},
	},
	Endpoint{
		Name:     EndpointCoinHistory,
		Path:     "/coins/{id}/history",
		Required: []string{"id", "date"},
		Optional: []string{"localization"},
	},
	Endpoint{
		Name:     EndpointCoinMarketChart,
		Path:     "/coins/{id}/market_chart",
		Required: []string{"id", "vs_currency", "days"},
		Optional: []string{"interval", "precision"},
	},
	Endpoint{
		Name:     EndpointCoinMarketChartRange,
		Path:     "/coins/{id}/market_chart/range",
		Required: []string{"id", "vs_currency", "from", "to"},
		Optional: []string{"precision"},
	},
	Endpoint{
		Name:     EndpointCoinOHLC,
		Path:     "/coins/{id}/ohlc",
		Required: []string{"id", "vs_currency", "days"},
	},
	Endpoint{
		Name:     EndpointCoinContract,
		Path:     "/coins/{id}/contract/{contract_address}",
		Required: []string{"id", "contract_address"},
	},
	Endpoint{
		Name:     EndpointCoinContractMarketChart,
		Path:     "/coins/{id}/contract/{contract_address}/market_chart",
		Required: []string{"id", "contract_address", "vs_currency", "days"},
	},
	Endpoint{
		Name:     EndpointCoinContractMarketChartRange,
		Path:     "/coins/{id}/contract/{contract_address}/market_chart/range",
		Required: []string{"id", "contract_address", "vs_currency", "from", "to"},
		Optional: []string{"precision"},
	},
	Endpoint{Name: EndpointCoinCategoriesList, Path: "/coins/categories/list"},
	Endpoint{Name: EndpointCoinCategories, Path: "/coins/categories"},
	Endpoint{
		Name:     EndpointExchanges,
		Path:     "/exchanges",
		Optional: []string{"per_page", "page"},
	},
	Endpoint{Name: EndpointExchangesList, Path: "/exchanges/list"},
	Endpoint{
		Name:     EndpointExchangeByID,
		Path:     "/exchanges/{id}",
		Required: []string{"id"},
	},
	Endpoint{
		Name:     EndpointExchangeTickers,
		Path:     "/exchanges/{id}/tickers",
		Required: []string{"id"},
		Optional: []string{"coin_ids", "include_exchange_logo", "page", "depth", "order"},
	},
	Endpoint{
		Name:     EndpointExchangeVolumeChart,
		Path:     "/exchanges/{id}/volume_chart",
		Required: []string{"id", "days"},
	},
	Endpoint{Name: EndpointExchangeRates, Path: "/exchange_rates"},
	Endpoint{
		Name:     EndpointIndexes,
		Path:     "/indexes",
		Optional: []string{"per_page", "page"},
	},
	Endpoint{Name: EndpointIndexesList, Path: "/indexes/list"},
	Endpoint{
		Name:     EndpointIndexByMarketID,
		Path:     "/indexes/{market_id}/{id}",
		Required: []string{"market_id", "id"},
	},
	Endpoint{Name: EndpointAssetPlatforms, Path: "/asset_platforms"},
	Endpoint{Name: EndpointSearchTrending, Path: "/search/trending"},
	Endpoint{Name: EndpointGlobal, Path: "/global"},
	Endpoint{Name: EndpointGlobalDefi, Path: "/global/decentralized_finance_defi"},
	Endpoint{Name: EndpointDerivatives, Path: "/derivatives"},
	Endpoint{Name: EndpointDerivativesExchanges, Path: "/derivatives/exchanges"},
	Endpoint{
		Name:     EndpointDerivativesExchangeByID,
		Path:     "/derivatives/exchanges/{id}",
		Required: []string{"id"},
		Optional: []string{"include_tickers"},
	},
	Endpoint{Name: EndpointDerivativesExchangesList, Path: "/derivatives/exchanges/list"},
	Endpoint{
		Name:     EndpointCompaniesTreasury,
		Path:     "/companies/public_treasury/{coin_id}",
		Required: []string{"coin_id"},
	},
)

func buildEndpointTable(entries ...Endpoint) map[string]Endpoint {
	table := make(map[string]Endpoint, len(entries))
	for _, e := range entries {
		if e.Method == "" {
			e.Method = http.MethodGet
		}
		table[e.Name] = e
	}
	return table
}

// LookupEndpoint returns the descriptor registered under name
func LookupEndpoint(name string) (Endpoint, bool) {
	e, ok := endpoints[name]
	return e, ok
}

// Endpoints returns the names of all registered endpoints
func Endpoints() []string {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	return names
}

// allows reports whether the endpoint accepts a parameter with this name
func (e Endpoint) allows(name string) bool {
	for _, p := range e.Required {
		if p == name {
			return true
		}
	}
	for _, p := range e.Optional {
		if p == name {
			return true
		}
	}
	return false
}
