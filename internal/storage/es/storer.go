package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

type Storer struct {
	client       *elasticsearch.TypedClient
	indexName    string
	resultWindow int
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	storer := &Storer{
		client:       client,
		indexName:    config.IndexName,
		resultWindow: config.resultWindow(),
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

// SaveBulk indexes users and refreshes the index so they are searchable on return.
// Users without an id are numbered after the highest indexed id.
func (e *Storer) SaveBulk(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}

	nextID, err := e.maxID(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		nextID = max(nextID, u.ID)
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, u := range users {
		if u.ID == 0 {
			nextID++
			u.ID = nextID
		}
		doc := toDocument(u)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.docID(),
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(users),
		"index", e.indexName)

	if failed.Load() > 0 {
		return fmt.Errorf("failed to index %d out of %d users", failed.Load(), len(users))
	}

	return nil
}

func (e *Storer) maxID(ctx context.Context) (int64, error) {
	res, err := e.client.Search().
		Index(e.indexName).
		Size(0).
		Aggregations(map[string]types.Aggregations{
			"max_id": {Max: &types.MaxAggregation{Field: strPtr("id")}},
		}).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read max user id: %w", err)
	}

	agg, ok := res.Aggregations["max_id"].(*types.MaxAggregate)
	if !ok || agg.Value == nil {
		return 0, nil
	}
	return int64(*agg.Value), nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":    types.NewLongNumberProperty(),
			"name":  types.NewKeywordProperty(),
			"email": types.NewKeywordProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Settings(&types.IndexSettings{MaxResultWindow: &e.resultWindow}).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func strPtr(s string) *string {
	return &s
}
