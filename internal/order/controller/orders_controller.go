package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	apperrors "orderdesk/internal/errors"
)

type OrdersService interface {
	List(ctx context.Context, q dto.ListOrdersQuery) (*dto.OrderListResponse, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (domain.Order, error)
	Update(ctx context.Context, id int, req dto.UpdateOrderRequest) (domain.Order, error)
	Delete(ctx context.Context, id int) error
}

type OrdersController struct {
	service OrdersService
	logger  *zap.Logger
}

func NewOrdersController(service OrdersService, logger *zap.Logger) *OrdersController {
	return &OrdersController{
		service: service,
		logger:  logger,
	}
}

func (c *OrdersController) List(w http.ResponseWriter, r *http.Request) {
	q := dto.ParseListOrdersQuery(r.URL.Query())

	resp, err := c.service.List(r.Context(), q)
	if err != nil {
		c.logger.Error("listing orders", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrdersController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := c.service.Create(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeError(w, http.StatusBadRequest, ve.Message)
			return
		}
		c.logger.Error("creating order", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func (c *OrdersController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(r)
	if !ok {
		c.writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		c.logger.Error("updating order", zap.Int("id", id), zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrdersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(r)
	if !ok {
		c.writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		c.logger.Error("deleting order", zap.Int("id", id), zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// orderID parses the id path parameter. A non-numeric id is treated the same
// as an unknown one.
func (c *OrdersController) orderID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (c *OrdersController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"error": message})
}

func (c *OrdersController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
