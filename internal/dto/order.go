package dto

import (
	"net/url"
	"strconv"

	"orderdesk/internal/domain"
)

type CreateOrderRequest struct {
	CustomerName       string `json:"customerName"`
	CustomerEmail      string `json:"customerEmail"`
	ProductName        string `json:"productName"`
	ProductWeight      string `json:"productWeight"`
	DestinationCity    string `json:"destinationCity"`
	DestinationPostal  string `json:"destinationPostal"`
	DestinationAddress string `json:"destinationAddress"`
	Status             string `json:"status"`
	Amount             string `json:"amount"`
}

// UpdateOrderRequest is a partial patch; nil fields are left untouched.
// id, orderId and createdAt are deliberately absent: they cannot be patched.
type UpdateOrderRequest struct {
	CustomerName       *string `json:"customerName"`
	CustomerEmail      *string `json:"customerEmail"`
	ProductName        *string `json:"productName"`
	ProductWeight      *string `json:"productWeight"`
	DestinationCity    *string `json:"destinationCity"`
	DestinationPostal  *string `json:"destinationPostal"`
	DestinationAddress *string `json:"destinationAddress"`
	Status             *string `json:"status"`
	Amount             *string `json:"amount"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// StatusAll is the sentinel status that disables the status filter.
const StatusAll = "all"

type ListOrdersQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ParseListOrdersQuery builds a validated query from raw URL parameters.
// Non-numeric or out-of-range page/limit values coerce to the defaults
// rather than failing the request.
func ParseListOrdersQuery(values url.Values) ListOrdersQuery {
	q := ListOrdersQuery{
		Status: values.Get("status"),
		Search: values.Get("search"),
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit >= 1 {
		q.Limit = limit
		if q.Limit > MaxLimit {
			q.Limit = MaxLimit
		}
	}

	return q
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type OrderListResponse struct {
	Orders     []domain.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}
