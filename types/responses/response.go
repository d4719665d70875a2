package responses

type Response[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}
