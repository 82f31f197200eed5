package catalog

import (
	"math"
	"strings"

	"climastore.GO/service/spec"
)

const (
	BadgeNew    = "НОВО"
	BadgeOnSale = "ПРОМО"
	BadgeWiFi   = "WiFi"
)

// Card is the compact product view shared by every listing surface.
type Card struct {
	ID                uint     `json:"id"`
	SKU               string   `json:"sku"`
	Title             string   `json:"title"`
	Brand             string   `json:"brand,omitempty"`
	Image             string   `json:"image"`
	Price             float64  `json:"price"`
	PriceSecondary    float64  `json:"priceSecondary"`
	SecondaryCurrency string   `json:"secondaryCurrency"`
	OldPrice          *float64 `json:"oldPrice,omitempty"`
	InStock           bool     `json:"inStock"`
	// BTU is the normalized BTU number and BTUThousands its compact form
	// (9000 -> 9). Both are zero when the product has no readable BTU.
	BTU          float64    `json:"btu,omitempty"`
	BTUThousands int        `json:"btuK,omitempty"`
	Badges       []string   `json:"badges"`
	Specs        []CardSpec `json:"specs"`
}

// CardSpec is one headline specification line.
type CardSpec struct {
	Field spec.Field `json:"field"`
	Label string     `json:"label"`
	Value string     `json:"value"`
	Unit  string     `json:"unit,omitempty"`
}

// headline specs in display order
var cardSpecs = []struct {
	field spec.Field
	label string
	unit  string
}{
	{spec.FieldPower, "Мощност", "kW"},
	{spec.FieldEnergyClass, "Енергиен клас", ""},
	{spec.FieldCoolingCapacity, "Охлаждане", "kW"},
	{spec.FieldHeatingCapacity, "Отопление", "kW"},
}

// Projector builds cards. It is the only code that turns attributes into
// display text.
type Projector struct {
	Rate              float64
	SecondaryCurrency string
	MediaURL          string
	// DecimalComma renders "2,5" instead of "2.5".
	DecimalComma bool
}

func NewProjector(rate float64, currency, mediaURL string) *Projector {
	return &Projector{Rate: rate, SecondaryCurrency: currency, MediaURL: mediaURL}
}

// Project builds the card for it. Heat pumps show nominal capacities, other
// product types the maximum. A spec that does not normalize is left out.
func (p *Projector) Project(it *Item, refs *ReferenceData) Card {
	prod := it.Product
	card := Card{
		ID:                prod.ID,
		SKU:               prod.SKU,
		Title:             prod.Name,
		Brand:             refs.BrandName(prod.BrandID),
		Image:             p.imageURL(prod.Image),
		Price:             prod.Price,
		PriceSecondary:    p.secondary(prod.Price),
		SecondaryCurrency: p.SecondaryCurrency,
		OldPrice:          prod.OldPrice,
		InStock:           prod.StockQuantity > 0,
		Badges:            make([]string, 0, 3),
		Specs:             make([]CardSpec, 0, len(cardSpecs)),
	}

	if btu, ok := it.BTU(); ok {
		card.BTU = btu
		card.BTUThousands, _ = it.Value(spec.FieldBTU).Thousands()
	}

	if prod.IsNew {
		card.Badges = append(card.Badges, BadgeNew)
	}
	if prod.IsOnSale {
		card.Badges = append(card.Badges, BadgeOnSale)
	}
	if it.HasWiFi() {
		card.Badges = append(card.Badges, BadgeWiFi)
	}

	pick := spec.PickMax
	if refs.IsHeatPump(prod.ProductTypeID) {
		pick = spec.PickNominal
	}
	for _, s := range cardSpecs {
		v := it.Value(s.field)
		var text string
		switch v.Kind {
		case spec.KindClass:
			text = v.Text
		case spec.KindNumber, spec.KindTriple:
			n, _ := v.Float(pick)
			text = p.number(n)
		default:
			continue
		}
		card.Specs = append(card.Specs, CardSpec{Field: s.field, Label: s.label, Value: text, Unit: s.unit})
	}
	return card
}

func (p *Projector) secondary(price float64) float64 {
	if p.Rate <= 0 {
		return price
	}
	return math.Round(price/p.Rate*100) / 100
}

func (p *Projector) number(n float64) string {
	s := spec.FormatNumber(n)
	if p.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

func (p *Projector) imageURL(image string) string {
	if image == "" || p.MediaURL == "" {
		return image
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") || strings.HasPrefix(image, "/") {
		return image
	}
	return strings.TrimRight(p.MediaURL, "/") + "/" + image
}
