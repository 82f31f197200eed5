package catalog

import "errors"

var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("pageSize must be > 0")
)

// FilterRequest is one storefront query. Nil pointers and empty slices are
// "no filter".
type FilterRequest struct {
	BrandIDs        []uint
	ProductTypeID   *uint
	PriceMin        *float64
	PriceMax        *float64
	EnergyClassIDs  []uint
	BTUIDs          []uint
	PowerThresholds []float64
	RoomSize        string
	SearchTerm      string
	IsFeatured      *bool
	IsOnSale        *bool
	IsNew           *bool
	InStock         *bool

	// CandidateIDs restricts the result to products found by the search
	// index. Nil means unrestricted, an empty non-nil slice matches nothing.
	CandidateIDs []uint

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Validate rejects pagination the transport must answer with a client error.
func (r FilterRequest) Validate() error {
	if r.Page < 1 {
		return ErrInvalidPage
	}
	if r.PageSize <= 0 {
		return ErrInvalidPageSize
	}
	return nil
}
