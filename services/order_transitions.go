// services/order_transitions.go
package services

import (
	"errors"
	"fmt"

	"canteen-backend/entity"
	"canteen-backend/utils"

	"gorm.io/gorm"
)

// UpdateStatus moves an order along the status state machine:
// Pending -> In Progress -> Ready -> Completed, with Cancelled reachable
// from any non-terminal state. Completed and Cancelled accept nothing.
func (s *OrderService) UpdateStatus(code, status string) (*entity.Order, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	norm := utils.NormalizeOrderCode(code)
	o, err := s.Repo.FindByCode(norm)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !entity.CanTransition(o.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, status)
	}

	// guard on the expected current status; a concurrent transition makes
	// this a no-op instead of a silent overwrite
	affected, err := s.Repo.UpdateStatusGuard(o.ID, o.Status, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, status)
	}

	fresh, err := s.Repo.FindByCode(norm)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrderStatusUpdated(fresh.Code, fresh.Status, fresh)
	}
	return fresh, nil
}
