package catalog

import "climastore.GO/model/entity"

// ReferenceData is an immutable lookup view over one snapshot of the
// reference tables. All methods are safe on a nil receiver.
type ReferenceData struct {
	set     entity.ReferenceSet
	brands  map[uint]entity.Brand
	types   map[uint]entity.ProductType
	btus    map[uint]entity.BTU
	classes map[uint]entity.EnergyClass
}

func NewReferenceData(set entity.ReferenceSet) *ReferenceData {
	r := &ReferenceData{
		set:     set,
		brands:  make(map[uint]entity.Brand, len(set.Brands)),
		types:   make(map[uint]entity.ProductType, len(set.ProductTypes)),
		btus:    make(map[uint]entity.BTU, len(set.BTUs)),
		classes: make(map[uint]entity.EnergyClass, len(set.EnergyClasses)),
	}
	for _, b := range set.Brands {
		r.brands[b.ID] = b
	}
	for _, t := range set.ProductTypes {
		r.types[t.ID] = t
	}
	for _, b := range set.BTUs {
		r.btus[b.ID] = b
	}
	for _, c := range set.EnergyClasses {
		r.classes[c.ID] = c
	}
	return r
}

// Set returns the snapshot r was built from.
func (r *ReferenceData) Set() entity.ReferenceSet {
	if r == nil {
		return entity.ReferenceSet{}
	}
	return r.set
}

func (r *ReferenceData) BrandName(id uint) string {
	if r == nil {
		return ""
	}
	return r.brands[id].Name
}

func (r *ReferenceData) TypeName(id uint) string {
	if r == nil {
		return ""
	}
	return r.types[id].Name
}

func (r *ReferenceData) IsHeatPump(typeID uint) bool {
	if r == nil {
		return false
	}
	return r.types[typeID].IsHeatPump
}

func (r *ReferenceData) BTULabel(id *uint) string {
	if r == nil || id == nil {
		return ""
	}
	return r.btus[*id].Label
}

func (r *ReferenceData) EnergyClassLabel(id *uint) string {
	if r == nil || id == nil {
		return ""
	}
	return r.classes[*id].Label
}
