package api

import "fmt"

// SearchRequest is the JSON body for POST /search.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// Document is a PubMed record as returned by the backend. All fields
// are opaque text and are passed through verbatim.
type Document struct {
	PMID       string `json:"pmid"`
	Title      string `json:"title"`
	Abstract   string `json:"abstract"`
	Date       string `json:"date"`
	SourceFile string `json:"source_file"`
}

// URL returns the canonical PubMed record page for the document.
func (d Document) URL() string {
	return fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", d.PMID)
}

// DisplayDate returns the document date formatted as YYYY-MM-DD.
// The backend normally normalizes dates itself; raw YYYYMMDD values
// are normalized here so both forms display the same way.
func (d Document) DisplayDate() string {
	return FormatDate(d.Date)
}

// FormatDate converts a YYYYMMDD date to YYYY-MM-DD. Anything that
// doesn't look like a compact date is returned unchanged.
func FormatDate(v string) string {
	if len(v) != 8 {
		return v
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return v
		}
	}
	return v[:4] + "-" + v[4:6] + "-" + v[6:8]
}

// SearchResult is one ranked hit.
type SearchResult struct {
	ID       string   `json:"id"`
	Score    float64  `json:"score"`
	Document Document `json:"document"`
}

// SearchResponse is the body of a successful POST /search.
type SearchResponse struct {
	Query         string         `json:"query"`
	Results       []SearchResult `json:"results"`
	TotalTime     float64        `json:"total_time"`
	EmbeddingTime float64        `json:"embedding_time"`
	SearchTime    float64        `json:"search_time"`
	ResultsCount  int            `json:"results_count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status          string `json:"status"`
	ModelLoaded     bool   `json:"model_loaded"`
	TokenizerLoaded bool   `json:"tokenizer_loaded"`
	QdrantConnected bool   `json:"qdrant_connected"`
}
