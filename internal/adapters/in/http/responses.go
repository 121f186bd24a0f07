package http

import (
	"encoding/json"

	"pickpoint/internal/core/application/usecases/queries"
)

// orderResponse is the wire shape of an order. Cost is emitted as a bare
// JSON number, not a quoted string, while keeping decimal precision.
type orderResponse struct {
	Number      int         `json:"number"`
	Status      int         `json:"status"`
	Composition []string    `json:"composition"`
	Cost        json.Number `json:"cost"`
	Postautomat string      `json:"postautomat"`
	Phone       string      `json:"phone"`
	Recipient   string      `json:"recipient"`
}

func orderResponseFrom(resp queries.GetOrderQueryResponse) orderResponse {
	return orderResponse{
		Number:      resp.Number,
		Status:      resp.Status,
		Composition: resp.Composition,
		Cost:        json.Number(resp.Cost.String()),
		Postautomat: resp.Postautomat,
		Phone:       resp.Phone,
		Recipient:   resp.Recipient,
	}
}

// postautomatResponse is the wire shape of a locker; "status" carries the
// availability flag.
type postautomatResponse struct {
	Number  string `json:"number"`
	Address string `json:"address"`
	Status  bool   `json:"status"`
}

func postautomatResponseFrom(resp queries.GetPostautomatQueryResponse) postautomatResponse {
	return postautomatResponse{
		Number:  resp.Number,
		Address: resp.Address,
		Status:  resp.IsOpen,
	}
}

// problemResponse is the body of a 500 "problem" reply. The message carries
// the underlying error text for operator diagnosis.
type problemResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
