package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
)

func TestProbe_LegacySchema(t *testing.T) {
	db := newTestDB(t, legacySchema)
	intro := repository.NewIntrospector(db, zap.NewNop())

	f := repository.Probe(context.Background(), intro, zap.NewNop())
	assert.Equal(t, repository.Features{AnswerEmoji: true}, f)
}

func TestProbe_FullSchema(t *testing.T) {
	db := newTestDB(t, fullSchema)
	intro := repository.NewIntrospector(db, zap.NewNop())

	f := repository.Probe(context.Background(), intro, zap.NewNop())
	assert.Equal(t, repository.FullFeatures(), f)
}

func TestProbe_MissingTableCountsAsLegacy(t *testing.T) {
	db := newTestDB(t, fullSchema[:2])
	intro := repository.NewIntrospector(db, zap.NewNop())

	f := repository.Probe(context.Background(), intro, zap.NewNop())
	assert.True(t, f.DepartmentSlug)
	assert.False(t, f.QuestionIsActive)
	assert.False(t, f.AnswerEmojiID)
}

func TestHasColumn(t *testing.T) {
	db := newTestDB(t, legacySchema)
	intro := repository.NewIntrospector(db, zap.NewNop())
	ctx := context.Background()

	assert.True(t, intro.HasColumn(ctx, repository.TableDepartments, "Name"))
	assert.False(t, intro.HasColumn(ctx, repository.TableDepartments, "Slug"))
	assert.False(t, intro.HasColumn(ctx, "NoSuchTable", "Name"))
}

func TestEnsureEmojiIDColumn(t *testing.T) {
	db := newTestDB(t, legacySchema)
	intro := repository.NewIntrospector(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repository.EnsureEmojiIDColumn(ctx, db, intro, zap.NewNop()))
	assert.True(t, intro.HasColumn(ctx, repository.TableAnswers, "EmojiID"))

	// second run is a no-op
	require.NoError(t, repository.EnsureEmojiIDColumn(ctx, db, intro, zap.NewNop()))
}

func TestDescribe(t *testing.T) {
	db := newTestDB(t, legacySchema)
	intro := repository.NewIntrospector(db, zap.NewNop())

	schema, err := intro.Describe(context.Background())
	require.NoError(t, err)

	require.Len(t, schema, 4)
	require.Contains(t, schema, repository.TableDepartments)

	var name *repository.ColumnInfo
	for i, c := range schema[repository.TableDepartments] {
		if c.Name == "Name" {
			name = &schema[repository.TableDepartments][i]
		}
	}
	require.NotNil(t, name)
	assert.Equal(t, "text", name.DataType)
	assert.Equal(t, "NO", name.IsNullable)
}

func TestPing(t *testing.T) {
	db := newTestDB(t, legacySchema)
	intro := repository.NewIntrospector(db, zap.NewNop())

	assert.NoError(t, intro.Ping(context.Background()))
}
