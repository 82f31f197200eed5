package models

import (
	"strconv"

	"github.com/graph-gophers/graphql-go"

	"climastore.GO/service/catalog"
)

// Card is the GraphQL view of catalog.Card.
type Card struct {
	ID                graphql.ID
	SKU               string
	Title             string
	Brand             string
	Image             string
	Price             float64
	PriceSecondary    float64
	SecondaryCurrency string
	OldPrice          *float64
	InStock           bool
	Btu               *float64
	BtuK              *int32
	Badges            []string
	Specs             []*CardSpec
}

type CardSpec struct {
	Field string
	Label string
	Value string
	Unit  string
}

// CardPage is one page of cards.
type CardPage struct {
	Items       []*Card
	TotalCount  int32
	CurrentPage int32
	PageSize    int32
	TotalPages  int32
}

func NewCard(c catalog.Card) *Card {
	out := &Card{
		ID:                graphql.ID(strconv.FormatUint(uint64(c.ID), 10)),
		SKU:               c.SKU,
		Title:             c.Title,
		Brand:             c.Brand,
		Image:             c.Image,
		Price:             c.Price,
		PriceSecondary:    c.PriceSecondary,
		SecondaryCurrency: c.SecondaryCurrency,
		OldPrice:          c.OldPrice,
		InStock:           c.InStock,
		Badges:            c.Badges,
		Specs:             make([]*CardSpec, 0, len(c.Specs)),
	}
	if c.BTU > 0 {
		btu, k := c.BTU, int32(c.BTUThousands)
		out.Btu, out.BtuK = &btu, &k
	}
	if out.Badges == nil {
		out.Badges = []string{}
	}
	for _, s := range c.Specs {
		out.Specs = append(out.Specs, &CardSpec{Field: string(s.Field), Label: s.Label, Value: s.Value, Unit: s.Unit})
	}
	return out
}

func NewCardPage(p catalog.PageResult) *CardPage {
	out := &CardPage{
		Items:       make([]*Card, 0, len(p.Items)),
		TotalCount:  int32(p.TotalCount),
		CurrentPage: int32(p.CurrentPage),
		PageSize:    int32(p.PageSize),
		TotalPages:  int32(p.TotalPages),
	}
	for _, c := range p.Items {
		out.Items = append(out.Items, NewCard(c))
	}
	return out
}
