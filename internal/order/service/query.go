package service

import (
	"sort"
	"strings"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
)

// filterByStatus keeps orders whose status matches exactly. The sentinel
// "all" and the empty string disable the filter.
func filterByStatus(orders []domain.Order, status string) []domain.Order {
	if status == "" || status == dto.StatusAll {
		return orders
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// filterBySearch keeps orders where the order code, customer name, customer
// email or product name contains the search term, case-insensitively.
func filterBySearch(orders []domain.Order, search string) []domain.Order {
	if search == "" {
		return orders
	}

	term := strings.ToLower(search)
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.OrderID), term) ||
			strings.Contains(strings.ToLower(o.CustomerName), term) ||
			strings.Contains(strings.ToLower(o.CustomerEmail), term) ||
			strings.Contains(strings.ToLower(o.ProductName), term) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// sortByCreatedAtDesc orders most recent first; ties keep their original
// position.
func sortByCreatedAtDesc(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func paginate(orders []domain.Order, page, limit int) []domain.Order {
	offset := (page - 1) * limit
	if offset >= len(orders) {
		return []domain.Order{}
	}

	end := offset + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[offset:end]
}
