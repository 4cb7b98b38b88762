package store

import (
	"context"
	"sort"

	"github.com/gocql/gocql"

	"oudora_back_end/internal/database"
	"oudora_back_end/internal/models"
)

// Taxonomy names are unique. Uniqueness is enforced with a lightweight
// transaction on a name-keyed claim table; the claim is released again
// on delete or rename.

type CategoryStore struct{}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT category_id, name, description, image, created_at FROM categories`).
		WithContext(ctx).Iter()

	var (
		categories []models.Category
		c          models.Category
	)
	for iter.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt) {
		categories = append(categories, c)
		c = models.Category{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Insert(ctx context.Context, c *models.Category) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	applied, err := session.Query(`INSERT INTO categories_by_name (name, category_id) VALUES (?, ?) IF NOT EXISTS`,
		c.Name, c.ID).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return err
	}
	if !applied {
		return ErrDuplicate
	}

	return session.Query(`INSERT INTO categories (category_id, name, description, image, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.Image, c.CreatedAt).WithContext(ctx).Exec()
}

func (s *CategoryStore) GetByID(ctx context.Context, id gocql.UUID) (*models.Category, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var c models.Category
	err = session.Query(`SELECT category_id, name, description, image, created_at FROM categories WHERE category_id = ?`, id).
		WithContext(ctx).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Name != existing.Name {
		applied, err := session.Query(`INSERT INTO categories_by_name (name, category_id) VALUES (?, ?) IF NOT EXISTS`,
			c.Name, c.ID).WithContext(ctx).MapScanCAS(map[string]interface{}{})
		if err != nil {
			return err
		}
		if !applied {
			return ErrDuplicate
		}
		if err := session.Query(`DELETE FROM categories_by_name WHERE name = ?`, existing.Name).
			WithContext(ctx).Exec(); err != nil {
			return err
		}
	}

	return session.Query(`UPDATE categories SET name = ?, description = ?, image = ? WHERE category_id = ?`,
		c.Name, c.Description, c.Image, c.ID).WithContext(ctx).Exec()
}

func (s *CategoryStore) DeleteByName(ctx context.Context, name string) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	var id gocql.UUID
	err = session.Query(`SELECT category_id FROM categories_by_name WHERE name = ?`, name).
		WithContext(ctx).Scan(&id)
	if err == gocql.ErrNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := session.Query(`DELETE FROM categories WHERE category_id = ?`, id).WithContext(ctx).Exec(); err != nil {
		return err
	}
	return session.Query(`DELETE FROM categories_by_name WHERE name = ?`, name).WithContext(ctx).Exec()
}

type FragranceTypeStore struct{}

func NewFragranceTypeStore() *FragranceTypeStore {
	return &FragranceTypeStore{}
}

// List returns every fragrance type sorted by name.
func (s *FragranceTypeStore) List(ctx context.Context) ([]models.FragranceType, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT type_id, name, description, created_at FROM fragrance_types`).
		WithContext(ctx).Iter()

	var (
		types []models.FragranceType
		t     models.FragranceType
	)
	for iter.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt) {
		types = append(types, t)
		t = models.FragranceType{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}

func (s *FragranceTypeStore) Insert(ctx context.Context, t *models.FragranceType) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	applied, err := session.Query(`INSERT INTO fragrance_types_by_name (name, type_id) VALUES (?, ?) IF NOT EXISTS`,
		t.Name, t.ID).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return err
	}
	if !applied {
		return ErrDuplicate
	}

	return session.Query(`INSERT INTO fragrance_types (type_id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name, t.Description, t.CreatedAt).WithContext(ctx).Exec()
}

func (s *FragranceTypeStore) GetByID(ctx context.Context, id gocql.UUID) (*models.FragranceType, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var t models.FragranceType
	err = session.Query(`SELECT type_id, name, description, created_at FROM fragrance_types WHERE type_id = ?`, id).
		WithContext(ctx).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *FragranceTypeStore) Update(ctx context.Context, t *models.FragranceType) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}

	if t.Name != existing.Name {
		applied, err := session.Query(`INSERT INTO fragrance_types_by_name (name, type_id) VALUES (?, ?) IF NOT EXISTS`,
			t.Name, t.ID).WithContext(ctx).MapScanCAS(map[string]interface{}{})
		if err != nil {
			return err
		}
		if !applied {
			return ErrDuplicate
		}
		if err := session.Query(`DELETE FROM fragrance_types_by_name WHERE name = ?`, existing.Name).
			WithContext(ctx).Exec(); err != nil {
			return err
		}
	}

	return session.Query(`UPDATE fragrance_types SET name = ?, description = ? WHERE type_id = ?`,
		t.Name, t.Description, t.ID).WithContext(ctx).Exec()
}

func (s *FragranceTypeStore) Delete(ctx context.Context, id gocql.UUID) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	if err := session.Query(`DELETE FROM fragrance_types WHERE type_id = ?`, id).WithContext(ctx).Exec(); err != nil {
		return err
	}
	return session.Query(`DELETE FROM fragrance_types_by_name WHERE name = ?`, existing.Name).
		WithContext(ctx).Exec()
}
