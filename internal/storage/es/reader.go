package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type Reader struct {
	client       *elasticsearch.TypedClient
	indexName    string
	resultWindow int
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:       client,
		indexName:    config.IndexName,
		resultWindow: config.resultWindow(),
	}, nil
}

func (r *Reader) Count(ctx context.Context, filter domain.UserFilter) (int64, error) {
	res, err := r.client.Count().
		Index(r.indexName).
		Query(filterQuery(filter)).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch count failed", "error", err, "search", filter.NameContains)
		return 0, fmt.Errorf("failed to execute count: %w", err)
	}

	return res.Count, nil
}

// Fetch pages with from/size inside the result window. Deeper pages walk the
// id sort with search_after, since Elasticsearch rejects from+size past the window.
func (r *Reader) Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, error) {
	slog.Debug("Executing es user fetch", "search", filter.NameContains, "limit", limit, "offset", offset)

	if offset+limit <= r.resultWindow {
		return r.search(ctx, filter, offset, limit, nil)
	}

	after, ok, err := r.seek(ctx, filter, offset)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.User{}, nil
	}
	return r.search(ctx, filter, 0, limit, after)
}

// seek returns the sort values of the hit at position offset-1, or false when
// fewer than offset users match.
func (r *Reader) seek(ctx context.Context, filter domain.UserFilter, offset int) ([]types.FieldValue, bool, error) {
	var after []types.FieldValue
	for remaining := offset; remaining > 0; {
		step := min(remaining, r.resultWindow)

		req := r.searchRequest(filter, 0, step, after).Source_(false)
		res, err := req.Do(ctx)
		if err != nil {
			slog.Error("Elasticsearch seek failed", "error", err, "search", filter.NameContains, "offset", offset)
			return nil, false, fmt.Errorf("failed to seek to offset %d: %w", offset, err)
		}

		hits := res.Hits.Hits
		if len(hits) < step {
			return nil, false, nil
		}
		after = hits[len(hits)-1].Sort
		remaining -= step
	}
	return after, true, nil
}

func (r *Reader) search(ctx context.Context, filter domain.UserFilter, from, size int, after []types.FieldValue) ([]domain.User, error) {
	res, err := r.searchRequest(filter, from, size, after).Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "search", filter.NameContains)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	users := make([]domain.User, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		users = append(users, doc.toDomain())
	}

	return users, nil
}

func (r *Reader) searchRequest(filter domain.UserFilter, from, size int, after []types.FieldValue) *search.Search {
	asc := sortorder.Asc
	req := r.client.Search().
		Index(r.indexName).
		Query(filterQuery(filter)).
		Size(size).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &asc},
			},
		})

	if len(after) > 0 {
		return req.SearchAfter(after...)
	}
	return req.From(from)
}
