package sqlbuild

import (
	"errors"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataapi/internal/domain/collection"
)

func schema(t *testing.T, name collection.Name) collection.Schema {
	t.Helper()
	s, err := collection.Lookup(name)
	require.NoError(t, err)
	return s
}

func TestBuilder_Scan(t *testing.T) {
	users := schema(t, collection.Users)

	query, args, err := New(sq.Question).Scan(users, "username")
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "id", "username", "password_hash", "timestamp" FROM "users" ORDER BY "username" ASC, "id" ASC`,
		query)
	assert.Empty(t, args)

	_, _, err = New(sq.Question).Scan(users, "password_hash; DROP TABLE users")
	assert.Error(t, err)
}

func TestBuilder_Count(t *testing.T) {
	query, _, err := New(sq.Dollar).Count(schema(t, collection.Messages))
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM "messages"`, query)
}

func TestBuilder_Insert(t *testing.T) {
	messages := schema(t, collection.Messages)
	at := time.Date(2013, 2, 4, 22, 44, 30, 652000000, time.UTC)

	query, args, err := New(sq.Dollar).Insert(messages, collection.NewRecord{
		Fields:    map[string]string{"text": "hi'); DROP TABLE users; --", "author_id": "1"},
		Timestamp: "2013-02-04T22:44:30.652Z",
		At:        at,
	})
	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO "messages" ("text","author_id","timestamp","timestamp_key") VALUES ($1,$2,$3,$4) RETURNING "id"`,
		query)
	assert.Equal(t, []any{"hi'); DROP TABLE users; --", "1", "2013-02-04T22:44:30.652Z", "2013-02-04T22:44:30.652000000Z"}, args)

	_, _, err = New(sq.Dollar).Insert(messages, collection.NewRecord{Fields: map[string]string{"text": "x"}})
	assert.Error(t, err)
}

func TestBuilder_FindBy(t *testing.T) {
	users := schema(t, collection.Users)

	query, args, err := New(sq.Question).FindBy(users, "username", "alice")
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "id", "username", "password_hash", "timestamp" FROM "users" WHERE "username" = ? ORDER BY "id" ASC LIMIT 1`,
		query)
	assert.Equal(t, []any{"alice"}, args)

	_, _, err = New(sq.Question).FindBy(users, "id = 1 OR 1", "x")
	assert.Error(t, err)
}

func TestScanRecord(t *testing.T) {
	users := schema(t, collection.Users)

	rec, err := ScanRecord(users, func(dest ...any) error {
		require.Len(t, dest, 4)
		*dest[0].(*int64) = 3
		*dest[1].(*string) = "carol"
		*dest[2].(*string) = "hash"
		*dest[3].(*string) = "2013-02-04T22:44:30Z"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, collection.Record{
		ID:        3,
		Fields:    map[string]string{"username": "carol", "password_hash": "hash"},
		Timestamp: "2013-02-04T22:44:30Z",
	}, rec)

	_, err = ScanRecord(users, func(dest ...any) error { return errors.New("closed") })
	assert.Error(t, err)
}
