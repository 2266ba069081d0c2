package mysql

import (
	"context"
	"database/sql"
	"strings"

	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListItems(ctx context.Context, filter domcatalog.ListFilter) ([]*domcatalog.MenuItem, error) {
	query := `
        SELECT id, name, description, base_price, category_id, image_url, available
        FROM menu_items
    `
	var args []any
	if filter.CategoryID != "" {
		query += ` WHERE category_id = ?`
		args = append(args, filter.CategoryID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domcatalog.MenuItem
	byID := make(map[string]*domcatalog.MenuItem)
	for rows.Next() {
		var item domcatalog.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
			&item.CategoryID, &item.ImageURL, &item.Available); err != nil {
			return nil, err
		}
		items = append(items, &item)
		byID[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*domcatalog.MenuItem{}, nil
	}

	if err := r.loadChildren(ctx, byID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) loadChildren(ctx context.Context, byID map[string]*domcatalog.MenuItem) error {
	ids := make([]any, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx, `
        SELECT item_id, id, name, price_delta
        FROM menu_item_variations
        WHERE item_id IN (`+placeholders+`)
        ORDER BY item_id, name
    `, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var v domcatalog.Variation
		if err := rows.Scan(&itemID, &v.ID, &v.Name, &v.PriceDelta); err != nil {
			return err
		}
		if item, ok := byID[itemID]; ok {
			item.Variations = append(item.Variations, v)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx, `
        SELECT item_id, id, name, price_delta
        FROM menu_item_add_ons
        WHERE item_id IN (`+placeholders+`)
        ORDER BY item_id, name
    `, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var a domcatalog.AddOn
		if err := rows.Scan(&itemID, &a.ID, &a.Name, &a.PriceDelta); err != nil {
			return err
		}
		if item, ok := byID[itemID]; ok {
			item.AddOns = append(item.AddOns, a)
		}
	}
	return rows.Err()
}

func (r *CatalogRepository) GetItem(ctx context.Context, id string) (*domcatalog.MenuItem, error) {
	var item domcatalog.MenuItem
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, description, base_price, category_id, image_url, available
        FROM menu_items
        WHERE id = ?
    `, id).Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
		&item.CategoryID, &item.ImageURL, &item.Available)
	if err == sql.ErrNoRows {
		return nil, domcatalog.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	byID := map[string]*domcatalog.MenuItem{item.ID: &item}
	if err := r.loadChildren(ctx, byID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item *domcatalog.MenuItem) (*domcatalog.MenuItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO menu_items (id, name, description, base_price, category_id, image_url, available)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, item.ID, item.Name, item.Description, item.BasePrice, item.CategoryID, item.ImageURL, item.Available)
	if err != nil {
		return nil, err
	}
	if err := insertChildren(ctx, tx, item); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CatalogRepository) UpdateItem(ctx context.Context, item *domcatalog.MenuItem) (*domcatalog.MenuItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        UPDATE menu_items
        SET name = ?, description = ?, base_price = ?, category_id = ?, image_url = ?, available = ?
        WHERE id = ?
    `, item.Name, item.Description, item.BasePrice, item.CategoryID, item.ImageURL, item.Available, item.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domcatalog.ErrItemNotFound
	}

	// Variations and add-ons are replaced wholesale.
	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_item_variations WHERE item_id = ?`, item.ID); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_item_add_ons WHERE item_id = ?`, item.ID); err != nil {
		return nil, err
	}
	if err := insertChildren(ctx, tx, item); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return item, nil
}

func insertChildren(ctx context.Context, tx *sql.Tx, item *domcatalog.MenuItem) error {
	for _, v := range item.Variations {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO menu_item_variations (id, item_id, name, price_delta)
            VALUES (?, ?, ?, ?)
        `, v.ID, item.ID, v.Name, v.PriceDelta); err != nil {
			return err
		}
	}
	for _, a := range item.AddOns {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO menu_item_add_ons (id, item_id, name, price_delta)
            VALUES (?, ?, ?, ?)
        `, a.ID, item.ID, a.Name, a.PriceDelta); err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_item_variations WHERE item_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_item_add_ons WHERE item_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domcatalog.ErrItemNotFound
	}
	return tx.Commit()
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*domcatalog.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, sort_order
        FROM categories
        ORDER BY sort_order, name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domcatalog.Category{}
	for rows.Next() {
		var c domcatalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *domcatalog.Category) (*domcatalog.Category, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO categories (id, name, sort_order)
        VALUES (?, ?, ?)
    `, c.ID, c.Name, c.SortOrder)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, c *domcatalog.Category) (*domcatalog.Category, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE categories SET name = ?, sort_order = ? WHERE id = ?
    `, c.Name, c.SortOrder, c.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domcatalog.ErrCategoryNotFound
	}
	return c, nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domcatalog.ErrCategoryNotFound
	}
	return nil
}
