package product

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"climastore.GO/model/entity"
)

type ProductRepository struct {
	db *gorm.DB
}

var (
	reposMu sync.Mutex
	repos   = map[*gorm.DB]*ProductRepository{}
)

// GetProductRepository returns one shared repository per *gorm.DB.
func GetProductRepository(db *gorm.DB) *ProductRepository {
	reposMu.Lock()
	defer reposMu.Unlock()
	if r, ok := repos[db]; ok {
		return r
	}
	r := NewProductRepository(db)
	repos[db] = r
	return r
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// attributes are preloaded in display order so callers see a stable slice
func withAttributes(db *gorm.DB) *gorm.DB {
	return db.Preload("Attributes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("display_order ASC, id ASC")
	})
}

// FetchCatalog loads every product with its attributes. onlyActive hides
// deactivated products from storefront surfaces.
func (r *ProductRepository) FetchCatalog(ctx context.Context, onlyActive bool) ([]entity.Product, error) {
	var products []entity.Product
	q := withAttributes(r.db.WithContext(ctx))
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return products, nil
}

// FetchByIDs loads the given products; missing ids are skipped.
func (r *ProductRepository) FetchByIDs(ctx context.Context, ids []uint, onlyActive bool) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	q := withAttributes(r.db.WithContext(ctx)).Where("id IN ?", ids)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetch products by id: %w", err)
	}
	return products, nil
}

// FindByID returns gorm.ErrRecordNotFound when there is no such product.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := withAttributes(r.db.WithContext(ctx)).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var p entity.Product
	if err := withAttributes(r.db.WithContext(ctx)).Where("sku = ?", sku).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts p together with its attributes.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// UpsertBySKU creates p, or overwrites the product with the same SKU and
// replaces its attribute set. It reports whether a new row was created.
func (r *ProductRepository) UpsertBySKU(ctx context.Context, p *entity.Product) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Product
		err := tx.Where("sku = ?", p.SKU).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(p).Error
		}
		if err != nil {
			return err
		}

		attrs := p.Attributes
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", p.ID).Delete(&entity.ProductAttribute{}).Error; err != nil {
			return err
		}
		if len(attrs) == 0 {
			return nil
		}
		for i := range attrs {
			attrs[i].ID = 0
			attrs[i].ProductID = p.ID
		}
		return tx.Create(&attrs).Error
	})
	if err != nil {
		return false, fmt.Errorf("upsert product %q: %w", p.SKU, err)
	}
	return created, nil
}

// Delete removes a product and its attributes.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&entity.ProductAttribute{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Product{}, id).Error
	})
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&n).Error
	return n, err
}
