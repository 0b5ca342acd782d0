package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nepem-ufsc/nepemcert/internal/database"
	"github.com/nepem-ufsc/nepemcert/internal/model"
)

func newTestCodeRepository(t *testing.T) CodeRepository {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	return NewCodeRepository(db)
}

func testCode(code string) *model.VerificationCode {
	return &model.VerificationCode{
		Code:            code,
		ParticipantName: "Alice Silva",
		EventName:       "Workshop de Go",
		EventDate:       "15/03/2026",
		EventPlace:      "Florianópolis",
		Workload:        "8 horas",
		VerificationURL: "https://nepemufsc.com/verificar-certificados?codigo=" + code,
		IssuedAt:        time.Now().UTC(),
	}
}

func TestCodeRepository_InsertAndFind(t *testing.T) {
	repo := newTestCodeRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testCode("aaaa1111")))

	found, err := repo.FindByCode(ctx, "aaaa1111")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice Silva", found.ParticipantName)
	assert.Equal(t, "Workshop de Go", found.EventName)
}

func TestCodeRepository_FindMissingReturnsNilNil(t *testing.T) {
	repo := newTestCodeRepository(t)

	found, err := repo.FindByCode(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCodeRepository_Exists(t *testing.T) {
	repo := newTestCodeRepository(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "bbbb2222")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Insert(ctx, testCode("bbbb2222")))

	exists, err = repo.Exists(ctx, "bbbb2222")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCodeRepository_DuplicateCodeRejected(t *testing.T) {
	repo := newTestCodeRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testCode("cccc3333")))
	assert.Error(t, repo.Insert(ctx, testCode("cccc3333")))
}
