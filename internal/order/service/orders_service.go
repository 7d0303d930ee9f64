package service

import (
	"context"
	"strings"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	apperrors "orderdesk/internal/errors"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Insert(ctx context.Context, order domain.Order) (domain.Order, error)
	Update(ctx context.Context, id int, apply func(*domain.Order)) (domain.Order, error)
	Delete(ctx context.Context, id int) error
}

type OrdersService struct {
	repo Repository
}

func NewOrdersService(repo Repository) *OrdersService {
	return &OrdersService{repo: repo}
}

func (s *OrdersService) List(ctx context.Context, q dto.ListOrdersQuery) (*dto.OrderListResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByStatus(orders, q.Status)
	filtered = filterBySearch(filtered, q.Search)
	sortByCreatedAtDesc(filtered)

	total := len(filtered)
	page := paginate(filtered, q.Page, q.Limit)

	return &dto.OrderListResponse{
		Orders: page,
		Pagination: dto.Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: (total + q.Limit - 1) / q.Limit,
		},
	}, nil
}

func (s *OrdersService) Create(ctx context.Context, req dto.CreateOrderRequest) (domain.Order, error) {
	required := []struct {
		field string
		value string
	}{
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"productName", req.ProductName},
	}

	var details []apperrors.ValidationDetail
	for _, rf := range required {
		if strings.TrimSpace(rf.value) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   rf.field,
				Message: rf.field + " is required",
			})
		}
	}
	if len(details) > 0 {
		return domain.Order{}, apperrors.NewValidationError("Missing required fields", details...)
	}

	order := domain.Order{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		ProductName:        req.ProductName,
		ProductWeight:      defaultString(req.ProductWeight, "0.00"),
		DestinationCity:    req.DestinationCity,
		DestinationPostal:  req.DestinationPostal,
		DestinationAddress: req.DestinationAddress,
		Status:             defaultString(req.Status, domain.OrderStatusPending),
		Amount:             defaultString(req.Amount, "0.00"),
	}

	return s.repo.Insert(ctx, order)
}

// Update shallow-merges the supplied fields over the stored record. Identity
// fields and createdAt stay as they were.
func (s *OrdersService) Update(ctx context.Context, id int, req dto.UpdateOrderRequest) (domain.Order, error) {
	return s.repo.Update(ctx, id, func(o *domain.Order) {
		setString(&o.CustomerName, req.CustomerName)
		setString(&o.CustomerEmail, req.CustomerEmail)
		setString(&o.ProductName, req.ProductName)
		setString(&o.ProductWeight, req.ProductWeight)
		setString(&o.DestinationCity, req.DestinationCity)
		setString(&o.DestinationPostal, req.DestinationPostal)
		setString(&o.DestinationAddress, req.DestinationAddress)
		setString(&o.Status, req.Status)
		setString(&o.Amount, req.Amount)
	})
}

func (s *OrdersService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
