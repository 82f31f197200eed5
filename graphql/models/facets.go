package models

import "climastore.GO/service/catalog"

type FacetOption struct {
	ID    int32
	Label string
	Count int32
}

// Facets is the GraphQL view of catalog.Facets. Lists are never null.
type Facets struct {
	Brands          []*FacetOption
	ProductTypes    []*FacetOption
	EnergyClasses   []*FacetOption
	BTUs            []*FacetOption
	RoomSizes       []*FacetOption
	PowerThresholds []float64
	PriceMin        float64
	PriceMax        float64
	TotalCount      int32
}

func NewFacets(f catalog.Facets) *Facets {
	out := &Facets{
		Brands:          options(f.Brands),
		ProductTypes:    options(f.ProductTypes),
		EnergyClasses:   options(f.EnergyClasses),
		BTUs:            options(f.BTUs),
		RoomSizes:       options(f.RoomSizes),
		PowerThresholds: f.PowerThresholds,
		PriceMin:        f.PriceMin,
		PriceMax:        f.PriceMax,
		TotalCount:      int32(f.TotalCount),
	}
	if out.PowerThresholds == nil {
		out.PowerThresholds = []float64{}
	}
	return out
}

func options(in []catalog.FacetOption) []*FacetOption {
	out := make([]*FacetOption, 0, len(in))
	for _, o := range in {
		out = append(out, &FacetOption{ID: int32(o.ID), Label: o.Label, Count: int32(o.Count)})
	}
	return out
}
