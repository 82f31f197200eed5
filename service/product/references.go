package product

import (
	"context"
	"fmt"

	"climastore.GO/model/entity"
	"climastore.GO/model/repository/reference"
	"climastore.GO/service/spec"
)

// refResolver maps reference labels from import records to row ids,
// optionally creating rows for labels it has not seen.
type refResolver struct {
	repo    *reference.ReferenceRepository
	create  bool
	dryRun  bool
	brands  map[string]uint
	types   map[string]uint
	btus    map[string]uint
	classes map[string]uint
	created int
}

func newRefResolver(ctx context.Context, repo *reference.ReferenceRepository, create, dryRun bool) (*refResolver, error) {
	set, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	r := &refResolver{
		repo:    repo,
		create:  create,
		dryRun:  dryRun,
		brands:  map[string]uint{},
		types:   map[string]uint{},
		btus:    map[string]uint{},
		classes: map[string]uint{},
	}
	for _, b := range set.Brands {
		r.brands[spec.Fold(b.Name)] = b.ID
	}
	for _, t := range set.ProductTypes {
		r.types[spec.Fold(t.Name)] = t.ID
	}
	for _, b := range set.BTUs {
		r.btus[spec.Fold(b.Label)] = b.ID
	}
	for _, c := range set.EnergyClasses {
		r.classes[spec.Fold(c.Label)] = c.ID
	}
	return r, nil
}

func (r *refResolver) brand(ctx context.Context, name string) (uint, error) {
	return r.resolve(ctx, r.brands, name, func() (uint, error) {
		b := &entity.Brand{Name: name}
		err := r.repo.SaveBrand(ctx, b)
		return b.ID, err
	})
}

func (r *refResolver) productType(ctx context.Context, name string) (uint, error) {
	return r.resolve(ctx, r.types, name, func() (uint, error) {
		t := &entity.ProductType{Name: name}
		err := r.repo.SaveProductType(ctx, t)
		return t.ID, err
	})
}

func (r *refResolver) btu(ctx context.Context, label string) (uint, error) {
	return r.resolve(ctx, r.btus, label, func() (uint, error) {
		b := &entity.BTU{Label: label}
		err := r.repo.SaveBTU(ctx, b)
		return b.ID, err
	})
}

func (r *refResolver) energyClass(ctx context.Context, label string) (uint, error) {
	return r.resolve(ctx, r.classes, label, func() (uint, error) {
		c := &entity.EnergyClass{Label: label}
		err := r.repo.SaveEnergyClass(ctx, c)
		return c.ID, err
	})
}

// resolve returns 0 for an empty label and an error for an unknown label
// when creation is disabled. A dry run counts the rows it would create.
func (r *refResolver) resolve(ctx context.Context, known map[string]uint, label string, create func() (uint, error)) (uint, error) {
	key := spec.Fold(label)
	if key == "" {
		return 0, nil
	}
	if id, ok := known[key]; ok {
		return id, nil
	}
	if !r.create {
		return 0, fmt.Errorf("unknown reference %q", label)
	}
	if r.dryRun {
		known[key] = 0
		r.created++
		return 0, nil
	}
	id, err := create()
	if err != nil {
		return 0, err
	}
	known[key] = id
	r.created++
	return id, nil
}
