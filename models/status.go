package models

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// stageOrder is the progression shown on the customer's progress bar.
// Cancelled orders sit outside it.
var stageOrder = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusCompleted}

// Stage returns the 1-based position of the status in the
// pending→preparing→ready→completed progression, or 0 for cancelled and
// unknown statuses.
func (s OrderStatus) Stage() int {
	for i, st := range stageOrder {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// Terminal reports whether the upstream will never change this status again.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
