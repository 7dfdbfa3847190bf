/*
Package search implements keyword search across the vehicle catalog.

This package provides a BM25-based Bleve index over vehicle names,
categories and features, used by the showroom's browse/filter surfaces.
*/
package search

// Result represents a single vehicle search hit with relevance score.
type Result struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    int     `json:"price"`
	Score    float64 `json:"score"`
}
