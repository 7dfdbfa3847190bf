package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// Search performs BM25 keyword search over the vehicle catalog.
func (i *Indexer) Search(queryText string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	searchQuery := bleve.NewMatchQuery(queryText)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	searchRequest.Fields = []string{"name", "category", "price"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// SearchByCategory performs BM25 search scoped to a single category.
func (i *Indexer) SearchByCategory(queryText, category string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	// Conjunction query: (match query) AND (category filter)
	matchQuery := bleve.NewMatchQuery(queryText)
	categoryQuery := bleve.NewMatchPhraseQuery(category)
	categoryQuery.SetField("category")

	conjunctionQuery := bleve.NewConjunctionQuery(matchQuery, categoryQuery)

	searchRequest := bleve.NewSearchRequestOptions(conjunctionQuery, limit, 0, false)
	searchRequest.Fields = []string{"name", "category", "price"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// All retrieves every indexed vehicle (up to limit).
func (i *Indexer) All(limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	query := bleve.NewMatchAllQuery()
	searchRequest := bleve.NewSearchRequestOptions(query, limit, 0, false)
	searchRequest.Fields = []string{"name", "category", "price"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// convertBleveResults converts Bleve search results to our Result format.
func convertBleveResults(results *bleve.SearchResult) []Result {
	searchResults := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		category, _ := hit.Fields["category"].(string)
		price, _ := hit.Fields["price"].(float64)

		searchResults = append(searchResults, Result{
			Name:     name,
			Category: category,
			Price:    int(price),
			Score:    hit.Score,
		})
	}

	return searchResults
}
