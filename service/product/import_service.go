package product

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"climastore.GO/core/logger"
	"climastore.GO/model/entity"
	productRepo "climastore.GO/model/repository/product"
	"climastore.GO/model/repository/reference"
)

// ImportOptions configures a product import run.
type ImportOptions struct {
	// CreateReferences adds brands, types, BTU and energy class rows for
	// labels that do not exist yet. Without it such records are skipped.
	CreateReferences bool
	DryRun           bool
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows         int
	Created           int
	Updated           int
	Skipped           int
	Attributes        int
	ReferencesCreated int
	Warnings          []string
	TotalTime         time.Duration
}

// Record is one product to import: fixed columns keyed by column name plus
// its attribute rows.
type Record struct {
	Fields     map[string]interface{}    `json:"fields"`
	Attributes []entity.ProductAttribute `json:"attributes"`
}

// ImportCSV reads CSV data from r and upserts products by SKU. Columns are
// the fixed product columns (sku, name, price, brand, ...) plus attribute
// columns named attr:<group>:<key> or hidden:<group>:<key>.
func ImportCSV(ctx context.Context, db *gorm.DB, refs *reference.ReferenceRepository, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(headers[i], "\ufeff"))
	}

	hasSKU := false
	var warnings []string
	for _, h := range headers {
		if h == "sku" {
			hasSKU = true
			continue
		}
		if fixedColumns[h] {
			continue
		}
		if _, _, _, ok := attributeColumn(h); !ok {
			warnings = append(warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}
	if !hasSKU {
		return nil, fmt.Errorf("CSV must contain a 'sku' column")
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{Fields: make(map[string]interface{}, len(headers))}
		order := 0
		for i, h := range headers {
			if i >= len(row) {
				break
			}
			v := strings.TrimSpace(row[i])
			if v == "" {
				continue
			}
			if fixedColumns[h] {
				rec.Fields[h] = v
				continue
			}
			group, key, visible, ok := attributeColumn(h)
			if !ok {
				continue
			}
			order++
			rec.Attributes = append(rec.Attributes, entity.ProductAttribute{
				AttributeKey:   key,
				AttributeValue: v,
				GroupName:      group,
				DisplayOrder:   order,
				IsVisible:      visible,
			})
		}
		records = append(records, rec)
	}

	res, err := ImportRecords(ctx, db, refs, records, opts)
	if err != nil {
		return nil, err
	}
	res.Warnings = append(warnings, res.Warnings...)
	return res, nil
}

// ImportRecords upserts records one by one. A bad record is skipped with a
// warning; only database failures abort the run.
func ImportRecords(ctx context.Context, db *gorm.DB, refs *reference.ReferenceRepository, records []Record, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	result := &ImportResult{TotalRows: len(records)}

	resolver, err := newRefResolver(ctx, refs, opts.CreateReferences, opts.DryRun)
	if err != nil {
		return nil, err
	}
	repo := productRepo.GetProductRepository(db)

	for i, rec := range records {
		line := i + 1
		row, err := decodeRow(rec.Fields)
		if err != nil {
			result.skip(fmt.Sprintf("record %d: %v", line, err))
			continue
		}
		if row.SKU == "" {
			result.skip(fmt.Sprintf("record %d: empty sku", line))
			continue
		}
		if row.Price < 0 {
			result.skip(fmt.Sprintf("sku=%s: negative price %v", row.SKU, row.Price))
			continue
		}

		p := row.entity()
		if err := resolveReferences(ctx, resolver, row, &p); err != nil {
			result.skip(fmt.Sprintf("sku=%s: %v", row.SKU, err))
			continue
		}
		p.Attributes = rec.Attributes
		result.Attributes += len(rec.Attributes)

		if opts.DryRun {
			continue
		}
		created, err := repo.UpsertBySKU(ctx, &p)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	result.ReferencesCreated = resolver.created
	result.TotalTime = time.Since(start)
	logger.L().Info("product import finished",
		zap.Int("rows", result.TotalRows),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Bool("dry_run", opts.DryRun),
		zap.Duration("took", result.TotalTime),
	)
	return result, nil
}

func (r *ImportResult) skip(warning string) {
	r.Skipped++
	r.Warnings = append(r.Warnings, warning)
}

func resolveReferences(ctx context.Context, r *refResolver, row productRow, p *entity.Product) error {
	id, err := r.brand(ctx, row.Brand)
	if err != nil {
		return fmt.Errorf("brand: %w", err)
	}
	p.BrandID = id

	if id, err = r.productType(ctx, row.ProductType); err != nil {
		return fmt.Errorf("product type: %w", err)
	}
	p.ProductTypeID = id

	if id, err = r.btu(ctx, row.BTU); err != nil {
		return fmt.Errorf("btu: %w", err)
	}
	if id != 0 {
		p.BTUID = &id
	}

	classID, err := r.energyClass(ctx, row.EnergyClass)
	if err != nil {
		return fmt.Errorf("energy class: %w", err)
	}
	if classID != 0 {
		p.EnergyClassID = &classID
	}
	return nil
}
