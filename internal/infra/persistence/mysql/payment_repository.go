package mysql

import (
	"context"
	"database/sql"

	dompayment "example.com/iskina-storefront/internal/domain/payment"
)

type PaymentMethodRepository struct {
	db *sql.DB
}

func NewPaymentMethodRepository(db *sql.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// List returns methods in configured order; the checkout flow treats the
// first row as the default offered to customers.
func (r *PaymentMethodRepository) List(ctx context.Context) ([]*dompayment.Method, error) {
	rows, err := r.db.QueryContext(ctx, `
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
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, account_number, account_name, qr_code_url
        FROM payment_methods
        WHERE id = ?
    `, id).Scan(&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL)
	if err == sql.ErrNoRows {
		return nil, dompayment.ErrMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, m *dompayment.Method) (*dompayment.Method, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO payment_methods (id, name, account_number, account_name, qr_code_url, sort_order)
        VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(p.sort_order), 0) + 1 FROM payment_methods p))
    `, m.ID, m.Name, m.AccountNumber, m.AccountName, m.QRCodeURL)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, m *dompayment.Method) (*dompayment.Method, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE payment_methods
        SET name = ?, account_number = ?, account_name = ?, qr_code_url = ?
        WHERE id = ?
    `, m.Name, m.AccountNumber, m.AccountName, m.QRCodeURL, m.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, dompayment.ErrMethodNotFound
	}
	return m, nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return dompayment.ErrMethodNotFound
	}
	return nil
}
