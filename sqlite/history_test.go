package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/awalczyk/biascope"
	"github.com/awalczyk/biascope/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(username, url string) *biascope.HistoryRecord {
	return &biascope.HistoryRecord{
		Username: username,
		URL:      url,
		Kind:     biascope.KindLexicon,
		Result: biascope.AnalysisResult{
			Left:        60,
			Right:       40,
			Message:     "ok",
			Explanation: "ok",
		},
		Text: "the analyzed article text",
	}
}

func TestHistoryService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("creates record with generated ID, timestamp and text hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		rec := testRecord("alice", "http://example.com/article")
		err := svc.CreateRecord(ctx, rec)
		require.NoError(t, err)

		assert.NotEmpty(t, rec.ID, "ID should be generated")
		assert.False(t, rec.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.Equal(t, sqlite.HashText("the analyzed article text"), rec.TextHash)
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		err := svc.CreateRecord(context.Background(), &biascope.HistoryRecord{})
		require.Error(t, err)
		assert.Equal(t, biascope.EINVALID, biascope.ErrorCode(err))
	})
}

func TestHistoryService_FindRecordsByUser(t *testing.T) {
	t.Parallel()

	t.Run("returns only the user's records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateRecord(ctx, testRecord("alice", "http://example.com/a")))
		require.NoError(t, svc.CreateRecord(ctx, testRecord("bob", "http://example.com/b")))

		recs, err := svc.FindRecordsByUser(ctx, "alice", biascope.HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "http://example.com/a", recs[0].URL)
		assert.Equal(t, 60.0, recs[0].Result.Left)
	})

	t.Run("returns identical lists on repeated calls", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			rec := testRecord("alice", fmt.Sprintf("http://example.com/%d", i))
			require.NoError(t, svc.CreateRecord(ctx, rec))
		}

		first, err := svc.FindRecordsByUser(ctx, "alice", biascope.HistoryFilter{})
		require.NoError(t, err)
		second, err := svc.FindRecordsByUser(ctx, "alice", biascope.HistoryFilter{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("respects the limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			rec := testRecord("alice", fmt.Sprintf("http://example.com/%d", i))
			require.NoError(t, svc.CreateRecord(ctx, rec))
		}

		recs, err := svc.FindRecordsByUser(ctx, "alice", biascope.HistoryFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("empty history yields no records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		recs, err := svc.FindRecordsByUser(context.Background(), "alice", biascope.HistoryFilter{})
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestHashText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sqlite.HashText("abc"), sqlite.HashText("abc"))
	assert.NotEqual(t, sqlite.HashText("abc"), sqlite.HashText("abd"))
	assert.Len(t, sqlite.HashText("abc"), 16)
}
