package orders

import "errors"

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrNotFound           = errors.New("order not found")
)
