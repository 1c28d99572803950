package response

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type DataResponse struct {
	Data interface{} `json:"data"`
}

type PingResponse struct {
	Pong string `json:"pong"`
}
