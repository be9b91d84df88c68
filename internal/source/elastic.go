package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olivere/elastic/v7"

	"github.com/alyonazakharova/excel-constructor/pkg/sheetbuilder"
)

const defaultSearchSize = 500

// ElasticSource exports documents from an Elasticsearch index. The ordered
// field list defines the columns; document fields outside it are dropped.
type ElasticSource struct {
	client *elastic.Client
	index  string
	fields []string
	query  elastic.Query
	size   int
}

func NewElasticSource(client *elastic.Client, index string, fields []string) *ElasticSource {
	return &ElasticSource{
		client: client,
		index:  index,
		fields: fields,
		size:   defaultSearchSize,
	}
}

// WithQuery restricts the export to documents matching q. Without it the
// whole index (up to the size limit) is exported.
func (s *ElasticSource) WithQuery(q elastic.Query) *ElasticSource {
	s.query = q
	return s
}

// WithSize caps the number of exported documents.
func (s *ElasticSource) WithSize(n int) *ElasticSource {
	s.size = n
	return s
}

func (s *ElasticSource) Fetch(ctx context.Context) (sheetbuilder.Header, []sheetbuilder.Row, error) {
	search := s.client.Search().Index(s.index).Size(s.size)
	if s.query != nil {
		search = search.Query(s.query)
	}

	result, err := search.Do(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("searching index %s: %w", s.index, err)
	}

	rows := make([]sheetbuilder.Row, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc map[string]interface{}
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, nil, fmt.Errorf("unmarshaling document %s: %w", hit.Id, err)
		}

		row := make(sheetbuilder.Row, len(s.fields))
		for _, field := range s.fields {
			if v, ok := doc[field]; ok && v != nil {
				row[field] = v
			}
		}
		rows = append(rows, row)
	}

	return headerFromColumns(s.fields), rows, nil
}
