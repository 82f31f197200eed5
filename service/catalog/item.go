package catalog

import (
	"climastore.GO/model/entity"
	"climastore.GO/service/spec"
)

// RawObserver is told about attribute values that did not match their rule.
type RawObserver func(field spec.Field, raw string)

// Item is a product paired with its normalized values for the duration of
// one query. Values are computed on first use.
type Item struct {
	Product *entity.Product

	source spec.Source
	norm   *spec.Normalizer
	onRaw  RawObserver
	values map[spec.Field]spec.Value
}

func newItem(p *entity.Product, refs *ReferenceData, n *spec.Normalizer, onRaw RawObserver) *Item {
	return &Item{
		Product: p,
		source: spec.Source{
			Attributes:       Attributes(p.Attributes).Visible(),
			BTULabel:         refs.BTULabel(p.BTUID),
			EnergyClassLabel: refs.EnergyClassLabel(p.EnergyClassID),
		},
		norm:   n,
		onRaw:  onRaw,
		values: make(map[spec.Field]spec.Value, 4),
	}
}

// Attributes converts stored attribute rows to the normalizer's form.
func Attributes(rows []entity.ProductAttribute) spec.Attributes {
	out := make(spec.Attributes, len(rows))
	for i, a := range rows {
		out[i] = spec.Attribute{
			ID:           a.ID,
			Key:          a.AttributeKey,
			Value:        a.AttributeValue,
			Group:        a.GroupName,
			DisplayOrder: a.DisplayOrder,
			Visible:      a.IsVisible,
		}
	}
	return out
}

func (it *Item) Value(f spec.Field) spec.Value {
	if v, ok := it.values[f]; ok {
		return v
	}
	v := it.norm.Normalize(f, it.source)
	if v.IsRaw() && !v.Missing() && it.onRaw != nil {
		it.onRaw(f, v.Text)
	}
	it.values[f] = v
	return v
}

// PowerMax is the ceiling power reading, taken from the cooling capacity
// when the product has no power attribute at all.
func (it *Item) PowerMax() (float64, bool) {
	v := it.Value(spec.FieldPower)
	if v.Missing() {
		v = it.Value(spec.FieldCoolingCapacity)
	}
	return v.Float(spec.PickMax)
}

// BTU is the normalized BTU number.
func (it *Item) BTU() (float64, bool) {
	return it.Value(spec.FieldBTU).Float(spec.PickNominal)
}

func (it *Item) HasWiFi() bool {
	return it.Value(spec.FieldWiFi).Flag
}
