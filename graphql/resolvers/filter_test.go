package resolvers

import "testing"

func TestProductsArgsRequest(t *testing.T) {
	typeID := int32(2)
	minPrice := 1000.0
	room := "medium"
	onSale := true
	sortBy := "price"
	args := ProductsArgs{
		Filter: &ProductFilter{
			BrandIds:        &[]int32{1, 3, 0},
			ProductTypeId:   &typeID,
			MinPrice:        &minPrice,
			PowerThresholds: &[]float64{2.5},
			RoomSize:        &room,
			OnSale:          &onSale,
		},
		Page:     2,
		PageSize: 6,
		SortBy:   &sortBy,
	}
	req := args.request()

	if len(req.BrandIDs) != 3 || req.BrandIDs[0] != 1 || req.BrandIDs[1] != 3 || req.BrandIDs[2] != 0 {
		t.Errorf("BrandIDs = %v, want [1 3 0]", req.BrandIDs)
	}
	if req.ProductTypeID == nil || *req.ProductTypeID != 2 {
		t.Errorf("ProductTypeID = %v", req.ProductTypeID)
	}
	if req.PriceMin == nil || *req.PriceMin != 1000 || req.PriceMax != nil {
		t.Errorf("price range = %v..%v", req.PriceMin, req.PriceMax)
	}
	if len(req.PowerThresholds) != 1 || req.RoomSize != "medium" {
		t.Errorf("power/room = %v/%q", req.PowerThresholds, req.RoomSize)
	}
	if req.IsOnSale == nil || !*req.IsOnSale || req.IsNew != nil {
		t.Errorf("flags: onSale=%v new=%v", req.IsOnSale, req.IsNew)
	}
	if req.Page != 2 || req.PageSize != 6 || req.SortBy != "price" || req.SortOrder != "" {
		t.Errorf("paging/sort = %d/%d %q %q", req.Page, req.PageSize, req.SortBy, req.SortOrder)
	}
	if req.CandidateIDs != nil {
		t.Error("CandidateIDs must stay unrestricted")
	}
}

func TestNilFilter(t *testing.T) {
	req := ProductsArgs{Page: 1, PageSize: 12}.request()
	if req.BrandIDs != nil || req.ProductTypeID != nil || req.SearchTerm != "" {
		t.Errorf("nil filter produced criteria: %+v", req)
	}
}

func TestNonPositiveIDsStaySet(t *testing.T) {
	typeID := int32(-4)
	req := (&ProductFilter{
		BrandIds:       &[]int32{-1},
		EnergyClassIds: &[]int32{0},
		ProductTypeId:  &typeID,
	}).request()
	if len(req.BrandIDs) != 1 || req.BrandIDs[0] != 0 {
		t.Errorf("BrandIDs = %v, want [0]", req.BrandIDs)
	}
	if len(req.EnergyClassIDs) != 1 || req.EnergyClassIDs[0] != 0 {
		t.Errorf("EnergyClassIDs = %v, want [0]", req.EnergyClassIDs)
	}
	if req.ProductTypeID == nil || *req.ProductTypeID != 0 {
		t.Errorf("ProductTypeID = %v, want 0", req.ProductTypeID)
	}
}
