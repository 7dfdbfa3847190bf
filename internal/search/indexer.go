package search

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/mohamedgewely/showroom-hub/internal/catalog"
)

// Indexer manages the search index over the vehicle catalog.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer creates a new search indexer with an in-memory Bleve index.
// The catalog is small and immutable, so the index is rebuilt at startup
// rather than persisted.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping for vehicle documents.
func buildIndexMapping() mapping.IndexMapping {
	vehicleMapping := bleve.NewDocumentMapping()

	// Name, category and features: searchable text.
	vehicleMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	vehicleMapping.AddFieldMappingsAt("category", bleve.NewTextFieldMapping())
	vehicleMapping.AddFieldMappingsAt("features", bleve.NewTextFieldMapping())

	// Price: stored for retrieval, not full-text indexed.
	priceMapping := bleve.NewNumericFieldMapping()
	priceMapping.IncludeInAll = false
	vehicleMapping.AddFieldMappingsAt("price", priceMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", vehicleMapping)

	return indexMapping
}

// IndexCatalog indexes every vehicle in the catalog.
func (i *Indexer) IndexCatalog(vehicles []catalog.Vehicle) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, v := range vehicles {
		doc := map[string]interface{}{
			"name":     v.Name,
			"category": string(v.Category),
			"features": strings.Join(v.Features, " "),
			"price":    float64(v.Price),
		}

		if err := batch.Index(v.ID, doc); err != nil {
			log.Printf("Warning: failed to index vehicle %s: %v", v.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index vehicles: %w", err)
	}

	return nil
}

// Count returns the total number of indexed vehicles.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
