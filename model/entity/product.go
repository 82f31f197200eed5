package entity

import "time"

// Product represents the products table. Fixed columns only; everything
// model-specific lives in Attributes.
type Product struct {
	ID            uint               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SKU           string             `gorm:"column:sku;type:varchar(64);uniqueIndex" json:"sku"`
	Name          string             `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description   string             `gorm:"column:description;type:text" json:"description"`
	Image         string             `gorm:"column:image;type:varchar(512)" json:"image"`
	Price         float64            `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	OldPrice      *float64           `gorm:"column:old_price;type:decimal(12,2)" json:"old_price,omitempty"`
	StockQuantity int                `gorm:"column:stock_quantity;not null" json:"stock_quantity"`
	IsActive      bool               `gorm:"column:is_active;index" json:"is_active"`
	IsFeatured    bool               `gorm:"column:is_featured" json:"is_featured"`
	IsOnSale      bool               `gorm:"column:is_on_sale" json:"is_on_sale"`
	IsNew         bool               `gorm:"column:is_new" json:"is_new"`
	BrandID       uint               `gorm:"column:brand_id;index" json:"brand_id"`
	ProductTypeID uint               `gorm:"column:product_type_id;index" json:"product_type_id"`
	BTUID         *uint              `gorm:"column:btu_id;index" json:"btu_id,omitempty"`
	EnergyClassID *uint              `gorm:"column:energy_class_id;index" json:"energy_class_id,omitempty"`
	CreatedAt     time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"column:updated_at" json:"updated_at"`
	Attributes    []ProductAttribute `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
