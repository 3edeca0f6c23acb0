package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusReady      = "Ready"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

const (
	PaymentMethodUPI  = "UPI"
	PaymentMethodCash = "Cash"
)

// statusTransitions is the allowed next-status set per current status.
// Completed and Cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusReady, StatusCancelled},
	StatusReady:      {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model

	// public order code shown to the customer; immutable after creation
	Code string `gorm:"uniqueIndex;size:8" json:"orderId"`

	StudentName  string `json:"studentName"`
	MobileNumber string `json:"mobileNumber"`

	// name/price snapshot lines; later catalog edits never touch these
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`

	EstimatedTime time.Time `json:"estimatedTime"`

	// PNG data URL encoding the tracking page for this order
	QRCode string `json:"qrCode"`

	Notes string `json:"notes"`
}
