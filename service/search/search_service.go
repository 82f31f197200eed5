package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	"climastore.GO/config"
	"climastore.GO/model/entity"
)

// ErrNotConfigured is returned when ELASTICSEARCH_HOST is unset.
var ErrNotConfigured = errors.New("elasticsearch not configured")

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns the process-wide SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService(
			config.GetEnv("ELASTICSEARCH_HOST", ""),
			config.GetEnv("ELASTICSEARCH_INDEX_PREFIX", "climastore"),
		)
	})
	return searchServiceInstance
}

type SearchService struct {
	client *elasticsearch.Client
	index  string
}

// NewSearchService returns an unconfigured service when host is empty.
func NewSearchService(host, prefix string) *SearchService {
	s := &SearchService{index: prefix + "_catalog_product"}
	if host == "" {
		return s
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{host}})
	if err != nil {
		return s
	}
	s.client = client
	return s
}

func (s *SearchService) Configured() bool { return s != nil && s.client != nil }

func (s *SearchService) Index() string { return s.index }

// Document is the indexed form of a product.
type Document struct {
	ID          uint    `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Attributes  string  `json:"attributes"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

// NewDocument flattens visible attributes into one searchable text field.
func NewDocument(p *entity.Product, brand string) Document {
	var sb strings.Builder
	for _, a := range p.Attributes {
		if !a.IsVisible {
			continue
		}
		sb.WriteString(a.AttributeKey)
		sb.WriteString(": ")
		sb.WriteString(a.AttributeValue)
		sb.WriteString("\n")
	}
	return Document{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Brand:       brand,
		Attributes:  sb.String(),
		Price:       p.Price,
		Active:      p.IsActive,
	}
}

// SearchIDs returns the ids of active products matching query, best first.
func (s *SearchService) SearchIDs(ctx context.Context, query string, limit int) ([]uint, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if limit <= 0 {
		limit = 1000
	}

	body := map[string]interface{}{
		"size":    limit,
		"_source": []string{"id"},
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":     query,
							"fields":    []string{"name^3", "sku^2", "brand^2", "description", "attributes"},
							"fuzziness": "AUTO",
						},
					},
				},
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"active": true}},
				},
			},
		},
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID uint `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	ids := make([]uint, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}

// Reindex drops the index and bulk-loads docs into a fresh one.
func (s *SearchService) Reindex(ctx context.Context, docs []Document) (int, error) {
	if !s.Configured() {
		return 0, ErrNotConfigured
	}

	del, err := s.client.Indices.Delete([]string{s.index},
		s.client.Indices.Delete.WithContext(ctx),
		s.client.Indices.Delete.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return 0, fmt.Errorf("delete index %s: %w", s.index, err)
	}
	del.Body.Close()

	if len(docs) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, d := range docs {
		meta := map[string]interface{}{"index": map[string]interface{}{"_id": strconv.FormatUint(uint64(d.ID), 10)}}
		if err := enc.Encode(meta); err != nil {
			return 0, err
		}
		if err := enc.Encode(d); err != nil {
			return 0, err
		}
	}

	res, err := s.client.Bulk(bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
		s.client.Bulk.WithIndex(s.index),
		s.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, fmt.Errorf("elasticsearch bulk error: %s", res.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		return 0, fmt.Errorf("decode bulk response: %w", err)
	}
	indexed := 0
	for _, item := range bulkResp.Items {
		for _, r := range item {
			if r.Status >= 200 && r.Status < 300 {
				indexed++
			}
		}
	}
	if bulkResp.Errors {
		return indexed, fmt.Errorf("bulk index: %d of %d documents failed", len(docs)-indexed, len(docs))
	}
	return indexed, nil
}
