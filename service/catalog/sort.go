package catalog

import (
	"cmp"
	"sort"
	"strings"

	"climastore.GO/service/spec"
)

// SortKey is a recognised sort column.
type SortKey string

const (
	SortByID      SortKey = "id"
	SortByName    SortKey = "name"
	SortByPrice   SortKey = "price"
	SortByStock   SortKey = "stock"
	SortByBrand   SortKey = "brand"
	SortByType    SortKey = "type"
	SortByCreated SortKey = "created"
)

var sortAliases = map[string]SortKey{
	"id":            SortByID,
	"name":          SortByName,
	"price":         SortByPrice,
	"stock":         SortByStock,
	"stockquantity": SortByStock,
	"brand":         SortByBrand,
	"brandname":     SortByBrand,
	"brand-name":    SortByBrand,
	"type":          SortByType,
	"producttype":   SortByType,
	"product-type":  SortByType,
	"created":       SortByCreated,
	"createdat":     SortByCreated,
}

// ParseSortKey maps client sort names to a SortKey. Unknown names sort by id.
func ParseSortKey(s string) SortKey {
	if k, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return SortByID
}

// Descending reports whether order asks for a reversed sort.
func Descending(order string) bool {
	return strings.EqualFold(strings.TrimSpace(order), "desc")
}

// Sort orders items by key. desc reverses only the primary comparison; ties
// are always broken by ascending product id so pages stay stable.
func Sort(items []*Item, key SortKey, desc bool, refs *ReferenceData) {
	primary := comparator(key, refs)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Product, items[j].Product
		c := primary(items[i], items[j])
		if desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

func comparator(key SortKey, refs *ReferenceData) func(a, b *Item) int {
	switch key {
	case SortByName:
		return func(a, b *Item) int {
			return strings.Compare(spec.Fold(a.Product.Name), spec.Fold(b.Product.Name))
		}
	case SortByPrice:
		return func(a, b *Item) int { return cmp.Compare(a.Product.Price, b.Product.Price) }
	case SortByStock:
		return func(a, b *Item) int { return cmp.Compare(a.Product.StockQuantity, b.Product.StockQuantity) }
	case SortByBrand:
		return func(a, b *Item) int {
			return strings.Compare(spec.Fold(refs.BrandName(a.Product.BrandID)), spec.Fold(refs.BrandName(b.Product.BrandID)))
		}
	case SortByType:
		return func(a, b *Item) int {
			return strings.Compare(spec.Fold(refs.TypeName(a.Product.ProductTypeID)), spec.Fold(refs.TypeName(b.Product.ProductTypeID)))
		}
	case SortByCreated:
		return func(a, b *Item) int { return a.Product.CreatedAt.Compare(b.Product.CreatedAt) }
	default:
		return func(a, b *Item) int { return cmp.Compare(a.Product.ID, b.Product.ID) }
	}
}
