package repositories

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// SearchClients runs a ranked query over the client index: exact matches
// first, then phrase, fuzzy and prefix matches.
func (r *BleveRepository) SearchClients(queryString string) (*bleve.SearchResult, error) {
	return r.searchIndex("clients", queryString,
		[]string{"name", "pan", "mail_id", "mobile_number"},
		[]string{"name", "category"},
	)
}

// SearchEmployees runs the same ranked query over the employee index.
func (r *BleveRepository) SearchEmployees(queryString string) (*bleve.SearchResult, error) {
	return r.searchIndex("employees", queryString,
		[]string{"name", "email"},
		[]string{"name", "role"},
	)
}

func (r *BleveRepository) searchIndex(indexName, queryString string, exactFields, textFields []string) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()

	// Standardize the query string (trim and lowercase)
	queryString = strings.TrimSpace(strings.ToLower(queryString))

	// 1. Exact Matches (Highest Priority)
	exactMatch := bleve.NewBooleanQuery()
	for _, field := range exactFields {
		termQuery := bleve.NewTermQuery(queryString)
		termQuery.SetField(field)
		termQuery.SetBoost(6.0)
		exactMatch.AddShould(termQuery)
	}

	// 2. Phrase Matches (High Priority)
	phraseMatch := bleve.NewBooleanQuery()
	for _, field := range textFields {
		phraseQuery := bleve.NewMatchPhraseQuery(queryString)
		phraseQuery.SetField(field)
		phraseQuery.SetBoost(5.0)
		phraseMatch.AddShould(phraseQuery)
	}

	// 3. Fuzzy Matching (Medium Priority)
	fuzzyMatch := bleve.NewBooleanQuery()
	for _, field := range textFields {
		fuzzyQuery := bleve.NewFuzzyQuery(queryString)
		fuzzyQuery.SetField(field)
		fuzzyQuery.SetFuzziness(2)
		fuzzyQuery.SetBoost(3.0)
		fuzzyMatch.AddShould(fuzzyQuery)
	}

	// 4. Prefix Matching (Low Priority)
	prefixMatch := bleve.NewBooleanQuery()
	for _, field := range textFields {
		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		prefixMatch.AddShould(prefixQuery)
	}

	booleanQuery.AddShould(exactMatch)
	booleanQuery.AddShould(phraseMatch)
	booleanQuery.AddShould(fuzzyMatch)
	booleanQuery.AddShould(prefixMatch)

	result, err := r.indexer.SearchIndex(indexName, booleanQuery, 25)
	if err != nil {
		return nil, fmt.Errorf("bleve search on %s failed: %w", indexName, err)
	}
	return result, nil
}

// GetDocumentFields returns the stored fields of a search hit for direct
// display without a round trip to Postgres.
func (r *BleveRepository) GetDocumentFields(result *bleve.SearchResult) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(result.Hits))
	for _, hit := range result.Hits {
		docs = append(docs, hit.Fields)
	}
	return docs
}
