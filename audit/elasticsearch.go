// audit/elasticsearch.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ElasticsearchIndexer mirrors recorded actions into a search index.
type ElasticsearchIndexer struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchIndexer creates an indexer with a given Elasticsearch URL.
func NewElasticsearchIndexer(esURL, index string) (*ElasticsearchIndexer, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchIndexer{esClient: esClient, index: index}, nil
}

// IndexAction stores a copy of the record under its own id, so replays are idempotent.
func (r *ElasticsearchIndexer) IndexAction(ctx context.Context, record ActionHistory) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: record.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}
