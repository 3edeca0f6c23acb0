package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"canteen-backend/entity"
	"canteen-backend/pkg/qr"
	"canteen-backend/repository"
	"canteen-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrNoItems           = errors.New("no items in order")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrItemUnavailable   = errors.New("item not available")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Collisions on the 3-digit random suffix are possible within a day;
// the unique index rejects them and we retry with fresh randomness.
const maxCodeAttempts = 5

// extra minutes added on top of the summed preparation times
const readyTimeBufferMinutes = 5

// Notifier receives order lifecycle events for real-time fan-out.
type Notifier interface {
	OrderCreated(o *entity.Order)
	OrderStatusUpdated(code, status string, o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Notifier Notifier

	// base URL of the customer tracking page encoded into order QR codes
	TrackingBaseURL string
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, notifier Notifier, trackingBaseURL string) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		MenuRepo: menuRepo,
		Notifier: notifier,

		TrackingBaseURL: strings.TrimRight(trackingBaseURL, "/"),
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	Items         []OrderItemIn `json:"items"`
	StudentName   string        `json:"studentName"`
	MobileNumber  string        `json:"mobileNumber"`
	PaymentMethod string        `json:"paymentMethod" binding:"omitempty,oneof=UPI Cash"`
	Notes         string        `json:"notes"`
}

// ----- Create -----

// Create validates the cart against the catalog, snapshots names/prices
// into line items, mints the order code, and persists everything plus the
// tracking QR in one transaction. The created order is broadcast afterwards.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	var total float64
	var prepMinutes int
	lines := make([]entity.OrderItem, 0, len(req.Items))

	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity for menu item %d", it.MenuItemID)
		}
		m, err := s.MenuRepo.FindByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrMenuItemNotFound, it.MenuItemID)
			}
			return nil, err
		}
		if !m.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, m.Name)
		}

		subtotal := m.Price * float64(it.Quantity)
		total += subtotal
		prepMinutes += m.PreparationTime

		lines = append(lines, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   it.Quantity,
			Subtotal:   subtotal,
		})
	}

	student := strings.TrimSpace(req.StudentName)
	if student == "" {
		student = "Anonymous"
	}
	method := req.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodUPI
	}

	order := &entity.Order{
		StudentName:   student,
		MobileNumber:  req.MobileNumber,
		Items:         lines,
		TotalAmount:   total,
		Status:        entity.StatusPending,
		PaymentStatus: entity.PaymentPending,
		PaymentMethod: method,
		EstimatedTime: time.Now().Add(time.Duration(prepMinutes+readyTimeBufferMinutes) * time.Minute),
		Notes:         req.Notes,
	}

	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		order.Code = utils.NewOrderCode(time.Now())

		dataURL, err := qr.DataURL(s.TrackingBaseURL + "/order/" + order.Code)
		if err != nil {
			return nil, err
		}
		order.QRCode = dataURL

		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.Create(tx, order)
		})
		if err == nil {
			if s.Notifier != nil {
				s.Notifier.OrderCreated(order)
			}
			return order, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		lastErr = err

		// rolled back; clear assigned keys before the next attempt
		order.ID = 0
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = 0
		}
	}
	return nil, lastErr
}

// ----- Lookup & List -----

func (s *OrderService) Get(code string) (*entity.Order, error) {
	o, err := s.Repo.FindByCode(utils.NormalizeOrderCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(status string, limit int) ([]entity.Order, error) {
	return s.Repo.List(status, limit)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
