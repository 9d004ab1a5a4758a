// Package history implements the lookup history repository using PostgreSQL.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/viovio/internal/adapter/postgres"
	"github.com/heartmarshall/viovio/internal/domain"
)

const (
	table  = "user_history"
	entity = "history_record"
)

var (
	minimalColumns = []string{
		"word", "meaning", "type", "explanation", "example", "example_cn", "tags", "phonetic",
	}
	optionalColumns = []string{"audio_url", "image_url", "is_ai"}
	metaColumns     = []string{"id", "user_id", "created_at", "updated_at"}
)

func columns(fields domain.HistoryFieldSet) []string {
	if fields == domain.HistoryFieldsMinimal {
		return minimalColumns
	}
	return append(append([]string{}, minimalColumns...), optionalColumns...)
}

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row is the scan target for user_history. Optional columns stay zero when
// the minimal column set is selected.
type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Word        string    `db:"word"`
	Meaning     string    `db:"meaning"`
	Type        string    `db:"type"`
	Explanation string    `db:"explanation"`
	Example     string    `db:"example"`
	ExampleCn   string    `db:"example_cn"`
	Tags        []string  `db:"tags"`
	Phonetic    string    `db:"phonetic"`
	AudioURL    *string   `db:"audio_url"`
	ImageURL    *string   `db:"image_url"`
	IsAI        bool      `db:"is_ai"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ListByUser returns the user's records, newest first. If the table lacks
// the optional columns the minimal set is read instead.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.HistoryRecord, error) {
	records, err := r.list(ctx, userID, domain.HistoryFieldsFull)
	if errors.Is(err, domain.ErrSchemaMismatch) {
		records, err = r.list(ctx, userID, domain.HistoryFieldsMinimal)
	}
	return records, err
}

func (r *Repo) list(ctx context.Context, userID uuid.UUID, fields domain.HistoryFieldSet) ([]domain.HistoryRecord, error) {
	query, args, err := postgres.Builder().
		Select(append(append([]string{}, metaColumns...), columns(fields)...)...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	records := make([]domain.HistoryRecord, 0, len(rows))
	for _, rw := range rows {
		records = append(records, toDomain(rw))
	}
	return records, nil
}

// Insert stores a new record and returns its id. A second record with the
// same word for the same user fails with domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, userID uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) (uuid.UUID, error) {
	cols := append([]string{"user_id"}, columns(fields)...)
	vals := append([]any{userID}, values(entry, fields)...)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert query: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return id, nil
}

// Update overwrites the record id owned by userID and bumps updated_at.
// created_at is kept. Returns domain.ErrNotFound if no such record exists.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, entry domain.VocabEntry, fields domain.HistoryFieldSet) error {
	set := make(map[string]any, len(minimalColumns)+len(optionalColumns)+1)
	vals := values(entry, fields)
	for i, col := range columns(fields) {
		set[col] = vals[i]
	}
	set["updated_at"] = squirrel.Expr("now()")

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the record id owned by userID.
// Returns domain.ErrNotFound if no such record exists.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// values returns the column values of entry in the order of columns(fields).
func values(entry domain.VocabEntry, fields domain.HistoryFieldSet) []any {
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	vals := []any{
		entry.Word, entry.Meaning, entry.PartOfSpeech, entry.Explanation,
		entry.Example, entry.ExampleTranslation, tags, entry.Phonetic,
	}
	if fields == domain.HistoryFieldsMinimal {
		return vals
	}
	return append(vals, entry.AudioURL, entry.ImageURL, entry.Provenance.IsAI())
}

func toDomain(rw row) domain.HistoryRecord {
	tags := rw.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.HistoryRecord{
		ID:     rw.ID,
		UserID: rw.UserID,
		VocabEntry: domain.VocabEntry{
			Word:               rw.Word,
			Phonetic:           rw.Phonetic,
			Meaning:            rw.Meaning,
			PartOfSpeech:       rw.Type,
			Explanation:        rw.Explanation,
			Example:            rw.Example,
			ExampleTranslation: rw.ExampleCn,
			Tags:               tags,
			AudioURL:           rw.AudioURL,
			ImageURL:           rw.ImageURL,
			Provenance:         domain.ProvenanceFromFlag(rw.IsAI),
			SearchedAt:         rw.UpdatedAt,
		},
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}
}
