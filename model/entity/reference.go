package entity

// Brand represents the brands reference table.
type Brand struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

func (Brand) TableName() string { return "brands" }

// ProductType represents the product_types reference table. Heat pumps show
// nominal capacity on cards, everything else the maximum.
type ProductType struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	IsHeatPump bool   `gorm:"column:is_heat_pump" json:"is_heat_pump"`
}

func (ProductType) TableName() string { return "product_types" }

// BTU represents the btus reference table (label like "12000 BTU").
type BTU struct {
	ID    uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Label string `gorm:"column:label;type:varchar(64);not null" json:"label"`
}

func (BTU) TableName() string { return "btus" }

// EnergyClass represents the energy_classes reference table (label like "A++").
type EnergyClass struct {
	ID    uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Label string `gorm:"column:label;type:varchar(16);not null" json:"label"`
}

func (EnergyClass) TableName() string { return "energy_classes" }

// ReferenceSet is a full snapshot of the lookup tables.
type ReferenceSet struct {
	Brands        []Brand       `json:"brands"`
	ProductTypes  []ProductType `json:"product_types"`
	BTUs          []BTU         `json:"btus"`
	EnergyClasses []EnergyClass `json:"energy_classes"`
}

// AllModels lists every table of the catalog schema, for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&Brand{}, &ProductType{}, &BTU{}, &EnergyClass{},
		&Product{}, &ProductAttribute{},
	}
}
