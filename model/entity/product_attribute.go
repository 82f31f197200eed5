package entity

// ProductAttribute is one key/value row of a product's dynamic specification.
// (product_id, attribute_key) is not unique.
type ProductAttribute struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID      uint   `gorm:"column:product_id;index;not null" json:"product_id"`
	AttributeKey   string `gorm:"column:attribute_key;type:varchar(255);index;not null" json:"attribute_key"`
	AttributeValue string `gorm:"column:attribute_value;type:text" json:"attribute_value"`
	GroupName      string `gorm:"column:group_name;type:varchar(255)" json:"group_name"`
	DisplayOrder   int    `gorm:"column:display_order;not null" json:"display_order"`
	IsVisible      bool   `gorm:"column:is_visible" json:"is_visible"`
}

func (ProductAttribute) TableName() string {
	return "product_attributes"
}
