package product

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"climastore.GO/model/entity"
)

// productRow holds the fixed columns of one import record.
type productRow struct {
	SKU           string   `mapstructure:"sku"`
	Name          string   `mapstructure:"name"`
	Description   string   `mapstructure:"description"`
	Image         string   `mapstructure:"image"`
	Price         float64  `mapstructure:"price"`
	OldPrice      *float64 `mapstructure:"old_price"`
	StockQuantity int      `mapstructure:"stock_quantity"`
	IsActive      bool     `mapstructure:"is_active"`
	IsFeatured    bool     `mapstructure:"is_featured"`
	IsOnSale      bool     `mapstructure:"is_on_sale"`
	IsNew         bool     `mapstructure:"is_new"`
	Brand         string   `mapstructure:"brand"`
	ProductType   string   `mapstructure:"product_type"`
	BTU           string   `mapstructure:"btu"`
	EnergyClass   string   `mapstructure:"energy_class"`
}

var fixedColumns = map[string]bool{
	"sku": true, "name": true, "description": true, "image": true,
	"price": true, "old_price": true, "stock_quantity": true,
	"is_active": true, "is_featured": true, "is_on_sale": true, "is_new": true,
	"brand": true, "product_type": true, "btu": true, "energy_class": true,
}

// yesNoHook accepts the Bulgarian yes/no spellings used in supplier sheets.
func yesNoHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Bool || f.Kind() != reflect.String {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "да", "yes", "y":
			return true, nil
		case "не", "no", "n", "":
			return false, nil
		}
		return data, nil
	}
}

// decimalCommaHook turns "1 299,90" into "1299.90" before float decoding.
func decimalCommaHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Float64 && !(t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Float64) {
			return data, nil
		}
		s := strings.ReplaceAll(strings.TrimSpace(data.(string)), " ", "")
		s = strings.Replace(s, ",", ".", 1)
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return data, nil
		}
		return s, nil
	}
}

var rowDecodeHook = mapstructure.ComposeDecodeHookFunc(
	yesNoHook(),
	decimalCommaHook(),
)

// decodeRow decodes fields into a productRow. Missing keys keep their
// defaults: products are active unless the record says otherwise.
func decodeRow(fields map[string]interface{}) (productRow, error) {
	row := productRow{IsActive: true}
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       rowDecodeHook,
		Result:           &row,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return row, err
	}
	if err := dec.Decode(fields); err != nil {
		return row, err
	}
	row.SKU = strings.TrimSpace(row.SKU)
	return row, nil
}

func (r productRow) entity() entity.Product {
	return entity.Product{
		SKU:           r.SKU,
		Name:          r.Name,
		Description:   r.Description,
		Image:         r.Image,
		Price:         r.Price,
		OldPrice:      r.OldPrice,
		StockQuantity: r.StockQuantity,
		IsActive:      r.IsActive,
		IsFeatured:    r.IsFeatured,
		IsOnSale:      r.IsOnSale,
		IsNew:         r.IsNew,
	}
}

// attributeColumn parses "attr:<group>:<key>" and "hidden:<group>:<key>"
// headers. The group part may be empty ("attr::BTU").
func attributeColumn(header string) (group, key string, visible, ok bool) {
	prefix, rest, found := strings.Cut(header, ":")
	if !found {
		return "", "", false, false
	}
	switch prefix {
	case "attr":
		visible = true
	case "hidden":
		visible = false
	default:
		return "", "", false, false
	}
	group, key, found = strings.Cut(rest, ":")
	if !found {
		group, key = "", rest
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false, false
	}
	return strings.TrimSpace(group), key, visible, true
}
