package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/viovio/internal/domain"
	"github.com/heartmarshall/viovio/internal/wire"
)

// HistorySnapshot is the caller's history as last reported by the server.
type HistorySnapshot struct {
	Records []domain.HistoryRecord
	// Synced is false when the server answered for an anonymous caller.
	Synced bool
}

// Lookup resolves query. A blank query yields nil, nil.
func (c *Client) Lookup(ctx context.Context, query string) (*domain.VocabEntry, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.Lookup: %w", err)
	}

	var out wire.Entry
	status, err := c.do(ctx, http.MethodPost, "/api/lookup", token, wire.LookupRequest{Query: query}, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	entry := out.Domain()
	return &entry, nil
}

// History lists the caller's records, newest first.
func (c *Client) History(ctx context.Context) (*HistorySnapshot, error) {
	return c.historyCall(ctx, http.MethodGet, "/api/history")
}

// DeleteHistory removes one record and returns the new snapshot.
func (c *Client) DeleteHistory(ctx context.Context, id uuid.UUID) (*HistorySnapshot, error) {
	return c.historyCall(ctx, http.MethodDelete, "/api/history/"+id.String())
}

func (c *Client) historyCall(ctx context.Context, method, path string) (*HistorySnapshot, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("client: history: %w", err)
	}

	var out wire.HistoryResponse
	if _, err := c.do(ctx, method, path, token, nil, &out); err != nil {
		return nil, err
	}

	snap := &HistorySnapshot{Records: make([]domain.HistoryRecord, 0, len(out.Records)), Synced: out.Synced}
	for _, r := range out.Records {
		snap.Records = append(snap.Records, r.Domain())
	}
	return snap, nil
}
