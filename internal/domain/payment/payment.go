package payment

import (
	"context"
	"errors"
)

// Method is an externally configured way to pay (GCash, Maya, bank transfer).
// The account details and QR code are displayed to the customer; no capture
// or verification happens server-side.
type Method struct {
	ID            string
	Name          string
	AccountNumber string
	AccountName   string
	QRCodeURL     string
}

var (
	ErrMethodNotFound = errors.New("payment method not found")
	ErrInvalidMethod  = errors.New("invalid payment method")
)

type Repository interface {
	List(ctx context.Context) ([]*Method, error)
	GetByID(ctx context.Context, id string) (*Method, error)
	Create(ctx context.Context, m *Method) (*Method, error)
	Update(ctx context.Context, m *Method) (*Method, error)
	Delete(ctx context.Context, id string) error
}
