package catalog

import (
	"time"

	"climastore.GO/model/entity"
)

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func testRefs() *ReferenceData {
	return NewReferenceData(entity.ReferenceSet{
		Brands:        []entity.Brand{{ID: 1, Name: "Daikin"}, {ID: 2, Name: "Mitsubishi"}, {ID: 3, Name: "Gree"}},
		ProductTypes:  []entity.ProductType{{ID: 1, Name: "Стенен климатик"}, {ID: 2, Name: "Термопомпа", IsHeatPump: true}},
		BTUs:          []entity.BTU{{ID: 1, Label: "9000 BTU"}, {ID: 2, Label: "12000 BTU"}, {ID: 3, Label: "18000 BTU"}},
		EnergyClasses: []entity.EnergyClass{{ID: 1, Label: "A++"}, {ID: 2, Label: "A+++"}},
	})
}

func attr(id uint, key, value string, order int) entity.ProductAttribute {
	return entity.ProductAttribute{ID: id, AttributeKey: key, AttributeValue: value, DisplayOrder: order, IsVisible: true}
}

func testEngine() *Engine {
	return NewEngine(NewProjector(1.95583, "EUR", ""), 100)
}

// abcProducts is the three-product price scenario.
func abcProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "A", Price: 100, IsNew: true, IsActive: true, BrandID: 1, ProductTypeID: 1},
		{ID: 2, Name: "B", Price: 200, IsOnSale: true, IsActive: true, BrandID: 2, ProductTypeID: 1},
		{ID: 3, Name: "C", Price: 150, IsActive: true, BrandID: 3, ProductTypeID: 1},
	}
}

// catalogProducts is a richer set covering every filter.
func catalogProducts() []entity.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entity.Product{
		{
			ID: 1, SKU: "DK-FTXM25", Name: "Daikin Perfera FTXM25", Price: 1899, StockQuantity: 4,
			IsActive: true, IsFeatured: true, BrandID: 1, ProductTypeID: 1,
			BTUID: uintPtr(1), EnergyClassID: uintPtr(2), CreatedAt: base,
			Attributes: []entity.ProductAttribute{
				attr(1, "Мощност на охлаждане", "1.3/2.5/3.2 kW", 1),
				attr(2, "Мощност на отопление", "1.3/2.8/4.7 kW", 2),
				attr(3, "Wi-Fi модул в комплекта", "Да", 3),
			},
		},
		{
			ID: 2, SKU: "MT-MSZ35", Name: "Mitsubishi MSZ-LN35", Description: "Инверторен климатик", Price: 2450,
			IsActive: true, IsOnSale: true, BrandID: 2, ProductTypeID: 1,
			BTUID: uintPtr(2), EnergyClassID: uintPtr(2), CreatedAt: base.Add(time.Hour),
			Attributes: []entity.ProductAttribute{
				attr(4, "Мощност", "3.5 kW", 1),
				attr(5, "Акценти", "<ul><li>Wi-Fi управление</li></ul>", 2),
			},
		},
		{
			ID: 3, SKU: "GR-PULAR18", Name: "Gree Pular 18", Price: 1299, StockQuantity: 10,
			IsActive: true, IsNew: true, BrandID: 3, ProductTypeID: 1,
			BTUID: uintPtr(3), EnergyClassID: uintPtr(1), CreatedAt: base.Add(2 * time.Hour),
			Attributes: []entity.ProductAttribute{
				attr(6, "Мощност на охлаждане", "5,2 kW", 1),
				attr(7, "Wi-Fi модул в комплекта", "Не", 2),
			},
		},
		{
			ID: 4, SKU: "DK-HP08", Name: "Daikin Altherma 8", Price: 8900, StockQuantity: 1,
			IsActive: true, BrandID: 1, ProductTypeID: 2, CreatedAt: base.Add(3 * time.Hour),
			Attributes: []entity.ProductAttribute{
				attr(8, "BTU", "27000", 1),
				attr(9, "Мощност", "2.0/8.0/9.5 kW", 2),
				attr(10, "Енергиен клас", "A+++", 3),
			},
		},
	}
}
