package models

// MarketPair is a display-formatted price plus its signed 24h change for one
// tracked trading pair.
type MarketPair struct {
	Price     string  `json:"price"`
	Change24h float64 `json:"change_24h"`
}

// MarketSnapshot holds the latest known values for the three tracked pairs.
// It is replaced wholesale on every successful refresh and retained verbatim
// on failure, so consumers never observe a blank price.
type MarketSnapshot struct {
	USDT MarketPair `json:"usdt"`
	BTC  MarketPair `json:"btc"`
	ETH  MarketPair `json:"eth"`
}
