package catalog

import (
	"math"
	"strings"

	"climastore.GO/service/spec"
)

// PowerTolerance is the absolute kW difference under which a product's
// power counts as equal to a requested threshold.
const PowerTolerance = 0.05

// float noise from parsing "2.55" and friends
const epsilon = 1e-9

// Predicate reports whether an item passes a filter.
type Predicate func(*Item) bool

// RoomBucket maps a BTU number to a room-size bucket name.
type RoomBucket struct {
	Name   string
	MaxBTU float64
	MaxM2  int
}

// RoomBuckets are ordered by MaxBTU. A product falls in the first bucket
// whose MaxBTU is not below its BTU.
var RoomBuckets = []RoomBucket{
	{Name: "small", MaxBTU: 9000, MaxM2: 25},
	{Name: "medium", MaxBTU: 12000, MaxM2: 35},
	{Name: "large", MaxBTU: 18000, MaxM2: 50},
	{Name: "xlarge", MaxBTU: math.Inf(1)},
}

// BucketOf returns the room-size bucket for btu.
func BucketOf(btu float64) string {
	for _, b := range RoomBuckets {
		if btu <= b.MaxBTU {
			return b.Name
		}
	}
	return ""
}

// Compile AND-combines every criterion set on req. Multi-valued criteria
// match when any of their values match. Unset criteria accept everything,
// and ids that name nothing simply match nothing.
func Compile(req FilterRequest) Predicate {
	var preds []Predicate

	if req.CandidateIDs != nil {
		ids := idSet(req.CandidateIDs)
		preds = append(preds, func(it *Item) bool { return ids[it.Product.ID] })
	}
	if len(req.BrandIDs) > 0 {
		ids := idSet(req.BrandIDs)
		preds = append(preds, func(it *Item) bool { return ids[it.Product.BrandID] })
	}
	if req.ProductTypeID != nil {
		typeID := *req.ProductTypeID
		preds = append(preds, func(it *Item) bool { return it.Product.ProductTypeID == typeID })
	}
	if req.PriceMin != nil {
		lo := *req.PriceMin
		preds = append(preds, func(it *Item) bool { return it.Product.Price >= lo })
	}
	if req.PriceMax != nil {
		hi := *req.PriceMax
		preds = append(preds, func(it *Item) bool { return it.Product.Price <= hi })
	}
	if len(req.EnergyClassIDs) > 0 {
		ids := idSet(req.EnergyClassIDs)
		preds = append(preds, func(it *Item) bool {
			return it.Product.EnergyClassID != nil && ids[*it.Product.EnergyClassID]
		})
	}
	if len(req.BTUIDs) > 0 {
		ids := idSet(req.BTUIDs)
		preds = append(preds, func(it *Item) bool {
			return it.Product.BTUID != nil && ids[*it.Product.BTUID]
		})
	}
	if len(req.PowerThresholds) > 0 {
		thresholds := req.PowerThresholds
		preds = append(preds, func(it *Item) bool {
			power, ok := it.PowerMax()
			if !ok {
				return false
			}
			for _, t := range thresholds {
				if math.Abs(power-t) <= PowerTolerance+epsilon {
					return true
				}
			}
			return false
		})
	}
	if bucket := strings.ToLower(strings.TrimSpace(req.RoomSize)); bucket != "" {
		preds = append(preds, func(it *Item) bool {
			btu, ok := it.BTU()
			return ok && BucketOf(btu) == bucket
		})
	}
	if term := spec.Fold(req.SearchTerm); term != "" {
		preds = append(preds, func(it *Item) bool {
			p := it.Product
			return strings.Contains(spec.Fold(p.Name), term) ||
				strings.Contains(spec.Fold(p.Description), term) ||
				strings.Contains(spec.Fold(p.SKU), term)
		})
	}
	if req.IsFeatured != nil {
		want := *req.IsFeatured
		preds = append(preds, func(it *Item) bool { return it.Product.IsFeatured == want })
	}
	if req.IsOnSale != nil {
		want := *req.IsOnSale
		preds = append(preds, func(it *Item) bool { return it.Product.IsOnSale == want })
	}
	if req.IsNew != nil {
		want := *req.IsNew
		preds = append(preds, func(it *Item) bool { return it.Product.IsNew == want })
	}
	if req.InStock != nil {
		want := *req.InStock
		preds = append(preds, func(it *Item) bool { return (it.Product.StockQuantity > 0) == want })
	}

	return func(it *Item) bool {
		for _, p := range preds {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

// Filter keeps the items pred accepts, preserving order.
func Filter(items []*Item, pred Predicate) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func idSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
