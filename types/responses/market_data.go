package responses

// MarketDataResponse is the wire shape of the upstream market endpoint.
type MarketDataResponse struct {
	Success bool                  `json:"success"`
	Data    []*MarketPairResponse `json:"data"`
}

type MarketPairResponse struct {
	Pair      string `json:"pair"`
	Price     string `json:"price"`
	Change24h string `json:"change_24h"`
}
