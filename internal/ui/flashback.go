package ui

import (
	"math/rand/v2"

	"github.com/heartmarshall/viovio/internal/domain"
)

// PickFlashback returns a uniformly random record, or nil for an empty list.
func PickFlashback(rng *rand.Rand, records []domain.HistoryRecord) *domain.HistoryRecord {
	if len(records) == 0 {
		return nil
	}
	r := records[rng.IntN(len(records))]
	return &r
}
