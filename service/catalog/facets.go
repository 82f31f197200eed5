package catalog

import (
	"math"
	"sort"

	"climastore.GO/model/entity"
)

// FacetOption is one selectable value of a filter panel.
type FacetOption struct {
	ID    uint   `json:"id,omitempty"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Facets describes the filter panel for a product set.
type Facets struct {
	Brands          []FacetOption `json:"brands"`
	ProductTypes    []FacetOption `json:"productTypes"`
	EnergyClasses   []FacetOption `json:"energyClasses"`
	BTUs            []FacetOption `json:"btus"`
	RoomSizes       []FacetOption `json:"roomSizes"`
	PowerThresholds []float64     `json:"powerThresholds"`
	PriceMin        float64       `json:"priceMin"`
	PriceMax        float64       `json:"priceMax"`
	TotalCount      int           `json:"totalCount"`
}

// Facets counts products per reference row, room bucket and distinct power
// value. Reference rows without products are listed with a zero count.
func (e *Engine) Facets(products []entity.Product, refs *ReferenceData) Facets {
	brands := map[uint]int{}
	types := map[uint]int{}
	btus := map[uint]int{}
	classes := map[uint]int{}
	rooms := map[string]int{}
	powers := map[float64]bool{}

	f := Facets{TotalCount: len(products)}
	for i, it := range e.Items(products, refs) {
		p := it.Product
		brands[p.BrandID]++
		types[p.ProductTypeID]++
		if p.BTUID != nil {
			btus[*p.BTUID]++
		}
		if p.EnergyClassID != nil {
			classes[*p.EnergyClassID]++
		}
		if btu, ok := it.BTU(); ok {
			rooms[BucketOf(btu)]++
		}
		if kw, ok := it.PowerMax(); ok {
			powers[math.Round(kw*100)/100] = true
		}
		if i == 0 || p.Price < f.PriceMin {
			f.PriceMin = p.Price
		}
		if i == 0 || p.Price > f.PriceMax {
			f.PriceMax = p.Price
		}
	}

	set := refs.Set()
	for _, b := range set.Brands {
		f.Brands = append(f.Brands, FacetOption{ID: b.ID, Label: b.Name, Count: brands[b.ID]})
	}
	sort.SliceStable(f.Brands, func(i, j int) bool { return f.Brands[i].Label < f.Brands[j].Label })
	for _, t := range set.ProductTypes {
		f.ProductTypes = append(f.ProductTypes, FacetOption{ID: t.ID, Label: t.Name, Count: types[t.ID]})
	}
	for _, c := range set.EnergyClasses {
		f.EnergyClasses = append(f.EnergyClasses, FacetOption{ID: c.ID, Label: c.Label, Count: classes[c.ID]})
	}
	for _, b := range set.BTUs {
		f.BTUs = append(f.BTUs, FacetOption{ID: b.ID, Label: b.Label, Count: btus[b.ID]})
	}
	for _, b := range RoomBuckets {
		f.RoomSizes = append(f.RoomSizes, FacetOption{Label: b.Name, Count: rooms[b.Name]})
	}
	f.PowerThresholds = make([]float64, 0, len(powers))
	for kw := range powers {
		f.PowerThresholds = append(f.PowerThresholds, kw)
	}
	sort.Float64s(f.PowerThresholds)
	return f
}
