package sqlite

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/awalczyk/biascope"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ biascope.HistoryService = (*HistoryService)(nil)

// HistoryService implements biascope.HistoryService using SQLite.
// Records are append-only; there is no update path.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// HashText computes xxHash of analyzed text and returns a hex string.
// Stored on each record so identical inputs can be recognized later.
func HashText(text string) string {
	h := xxhash.Sum64String(text)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRecord appends a new history record.
func (s *HistoryService) CreateRecord(ctx context.Context, rec *biascope.HistoryRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.TextHash = HashText(rec.Text)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO links (id, username, url, analyzer_kind, model,
			result_left, result_right, result_message, result_explanation,
			text_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Username, rec.URL, string(rec.Kind), rec.Model,
		rec.Result.Left, rec.Result.Right, rec.Result.Message, rec.Result.Explanation,
		rec.TextHash, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecordsByUser retrieves a user's records, newest first.
func (s *HistoryService) FindRecordsByUser(ctx context.Context, username string, filter biascope.HistoryFilter) ([]*biascope.HistoryRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, username, url, analyzer_kind, model,
			result_left, result_right, result_message, result_explanation,
			text_hash, created_at
		FROM links
		WHERE username = ?
		ORDER BY created_at DESC, id
	`)
	args = append(args, username)

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*biascope.HistoryRecord
	for rows.Next() {
		var rec biascope.HistoryRecord
		var kind, createdAt string

		if err := rows.Scan(&rec.ID, &rec.Username, &rec.URL, &kind, &rec.Model,
			&rec.Result.Left, &rec.Result.Right, &rec.Result.Message, &rec.Result.Explanation,
			&rec.TextHash, &createdAt); err != nil {
			return nil, err
		}

		rec.Kind = biascope.AnalyzerKind(kind)
		if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
