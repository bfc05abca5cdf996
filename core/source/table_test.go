package source

import (
	"context"
	"encoding/json"
	"testing"

	"json-diff/core/database"
	"json-diff/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	stmts := []string{
		"CREATE TABLE users_v2 (id INTEGER PRIMARY KEY, name TEXT, score REAL)",
		"CREATE TABLE users_v1 (id INTEGER PRIMARY KEY, name TEXT, score REAL)",
		"CREATE TABLE empty_table (id INTEGER)",
		"CREATE TABLE big_ids (id BIGINT, v TEXT)",
		"INSERT INTO big_ids (id, v) VALUES (9007199254740992, 'a'), (9007199254740993, 'b')",
		"INSERT INTO users_v1 (id, name, score) VALUES (1, 'ann', 1.5), (2, 'bob', NULL)",
		"INSERT INTO users_v2 (id, name, score) VALUES (1, 'ann', 2.5), (3, 'cid', 0)",
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestTable_List(t *testing.T) {
	src := NewTable(setupSQLite(t))

	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"big_ids", "empty_table", "users_v1", "users_v2"}, names)
	assert.Equal(t, KindTable, src.Kind())
}

func TestTable_Load(t *testing.T) {
	src := NewTable(setupSQLite(t))
	ctx := context.Background()

	col, err := src.Load(ctx, "users_v1")
	require.NoError(t, err)
	assert.Equal(t, reconcile.Schema{"id", "name", "score"}, col.Schema())
	require.Equal(t, 2, col.Len())

	first := col.Records()[0]
	id, _ := first.Value("id")
	name, _ := first.Value("name")
	score, _ := first.Value("score")
	assert.Equal(t, json.Number("1"), id)
	assert.Equal(t, "ann", name)
	assert.Equal(t, json.Number("1.5"), score)

	missing, ok := col.Records()[1].Value("score")
	assert.True(t, ok)
	assert.Nil(t, missing)
}

func TestTable_LoadBigIntIdentifiers(t *testing.T) {
	src := NewTable(setupSQLite(t))

	col, err := src.Load(context.Background(), "big_ids")
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())

	id, _ := col.Records()[1].Value("id")
	assert.Equal(t, json.Number("9007199254740993"), id)

	unique, err := col.IsUnique("id")
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestTable_LoadErrors(t *testing.T) {
	src := NewTable(setupSQLite(t))
	ctx := context.Background()

	_, err := src.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = src.Load(ctx, "users; DROP TABLE users_v1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = src.Load(ctx, "empty_table")
	assert.ErrorIs(t, err, reconcile.ErrMalformedStructure)
}

func TestTable_DiffAcrossTables(t *testing.T) {
	src := NewTable(setupSQLite(t))
	ctx := context.Background()

	a, err := src.Load(ctx, "users_v1")
	require.NoError(t, err)
	b, err := src.Load(ctx, "users_v2")
	require.NoError(t, err)

	res, err := reconcile.Diff(a, b, "id")
	require.NoError(t, err)
	assert.Equal(t, "2", res.OnlyInA[0].String())
	assert.Equal(t, "3", res.OnlyInB[0].String())
	require.Len(t, res.Discrepancies, 1)
	assert.Equal(t, []string{"score"}, res.Discrepancies[0].Fields)
}
