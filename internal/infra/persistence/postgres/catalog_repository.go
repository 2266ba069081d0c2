package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListItems(ctx context.Context, filter domcatalog.ListFilter) ([]*domcatalog.MenuItem, error) {
	query := `
        SELECT id, name, description, base_price, category_id, image_url, available
        FROM menu_items
    `
	var args []any
	if filter.CategoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, filter.CategoryID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
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
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT item_id, id, name, price_delta
        FROM menu_item_variations
        WHERE item_id = ANY($1)
        ORDER BY item_id, name
    `, ids)
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

	rows, err = r.pool.Query(ctx, `
        SELECT item_id, id, name, price_delta
        FROM menu_item_add_ons
        WHERE item_id = ANY($1)
        ORDER BY item_id, name
    `, ids)
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
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, description, base_price, category_id, image_url, available
        FROM menu_items
        WHERE id = $1
    `, id).Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
		&item.CategoryID, &item.ImageURL, &item.Available)
	if errors.Is(err, pgx.ErrNoRows) {
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
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO menu_items (id, name, description, base_price, category_id, image_url, available)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, item.ID, item.Name, item.Description, item.BasePrice, item.CategoryID, item.ImageURL, item.Available)
	if err != nil {
		return nil, err
	}
	if err := insertChildren(ctx, tx, item); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CatalogRepository) UpdateItem(ctx context.Context, item *domcatalog.MenuItem) (*domcatalog.MenuItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
        UPDATE menu_items
        SET name = $1, description = $2, base_price = $3, category_id = $4, image_url = $5, available = $6
        WHERE id = $7
    `, item.Name, item.Description, item.BasePrice, item.CategoryID, item.ImageURL, item.Available, item.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domcatalog.ErrItemNotFound
	}

	// Variations and add-ons are replaced wholesale.
	if _, err := tx.Exec(ctx, `DELETE FROM menu_item_variations WHERE item_id = $1`, item.ID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM menu_item_add_ons WHERE item_id = $1`, item.ID); err != nil {
		return nil, err
	}
	if err := insertChildren(ctx, tx, item); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func insertChildren(ctx context.Context, tx pgx.Tx, item *domcatalog.MenuItem) error {
	for _, v := range item.Variations {
		if _, err := tx.Exec(ctx, `
            INSERT INTO menu_item_variations (id, item_id, name, price_delta)
            VALUES ($1, $2, $3, $4)
        `, v.ID, item.ID, v.Name, v.PriceDelta); err != nil {
			return err
		}
	}
	for _, a := range item.AddOns {
		if _, err := tx.Exec(ctx, `
            INSERT INTO menu_item_add_ons (id, item_id, name, price_delta)
            VALUES ($1, $2, $3, $4)
        `, a.ID, item.ID, a.Name, a.PriceDelta); err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menu_item_variations WHERE item_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM menu_item_add_ons WHERE item_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domcatalog.ErrItemNotFound
	}
	return tx.Commit(ctx)
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*domcatalog.Category, error) {
	rows, err := r.pool.Query(ctx, `
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
	_, err := r.pool.Exec(ctx, `
        INSERT INTO categories (id, name, sort_order)
        VALUES ($1, $2, $3)
    `, c.ID, c.Name, c.SortOrder)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, c *domcatalog.Category) (*domcatalog.Category, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE categories SET name = $1, sort_order = $2 WHERE id = $3
    `, c.Name, c.SortOrder, c.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domcatalog.ErrCategoryNotFound
	}
	return c, nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domcatalog.ErrCategoryNotFound
	}
	return nil
}
