package database

import (
	"fmt"

	"github.com/olivere/elastic/v7"
)

// NewElasticClient creates an Elasticsearch 7.x client. Sniffing is disabled
// so the client works against Docker and cloud deployments.
func NewElasticClient(url string) (*elastic.Client, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false),
	)
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}
	return client, nil
}
