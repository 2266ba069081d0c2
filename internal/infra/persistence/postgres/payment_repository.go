package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dompayment "example.com/iskina-storefront/internal/domain/payment"
)

type PaymentMethodRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepository {
	return &PaymentMethodRepository{pool: pool}
}

// List returns methods in configured order; the checkout flow treats the
// first row as the default offered to customers.
func (r *PaymentMethodRepository) List(ctx context.Context) ([]*dompayment.Method, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, account_number, account_name, qr_code_url
        FROM payment_methods
        ORDER BY sort_order, created_at
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []*dompayment.Method{}
	for rows.Next() {
		var m dompayment.Method
		if err := rows.Scan(&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL); err != nil {
			return nil, err
		}
		methods = append(methods, &m)
	}
	return methods, rows.Err()
}

func (r *PaymentMethodRepository) GetByID(ctx context.Context, id string) (*dompayment.Method, error) {
	var m dompayment.Method
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, account_number, account_name, qr_code_url
        FROM payment_methods
        WHERE id = $1
    `, id).Scan(&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, dompayment.ErrMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, m *dompayment.Method) (*dompayment.Method, error) {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO payment_methods (id, name, account_number, account_name, qr_code_url, sort_order)
        VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM payment_methods))
    `, m.ID, m.Name, m.AccountNumber, m.AccountName, m.QRCodeURL)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, m *dompayment.Method) (*dompayment.Method, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE payment_methods
        SET name = $1, account_number = $2, account_name = $3, qr_code_url = $4
        WHERE id = $5
    `, m.Name, m.AccountNumber, m.AccountName, m.QRCodeURL, m.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, dompayment.ErrMethodNotFound
	}
	return m, nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dompayment.ErrMethodNotFound
	}
	return nil
}
