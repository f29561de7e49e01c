//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")[:40]
}

func TestUserSqliteRepository_CreateAndLookups(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	byID, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)

	byUsername, err := ctx.UserRepo.GetByUsername(context.Background(), user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := ctx.UserRepo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserSqliteRepository_Create_DuplicateUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	clone := CreateTestUser(t)
	clone.Username = user.Username

	err := ctx.UserRepo.Create(context.Background(), clone)
	assert.ErrorIs(t, err, accounts.ErrDuplicate)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user, err := ctx.UserRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestTokenSqliteRepository_CreateAndGetByKey(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	token := &accounts.Token{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Key:       testTokenKey(),
		UserID:    user.ID,
	}
	require.NoError(t, ctx.TokenRepo.Create(context.Background(), token))

	fetched, err := ctx.TokenRepo.GetByKey(context.Background(), token.Key)
	require.NoError(t, err)
	assert.Equal(t, token.ID, fetched.ID)
	assert.Equal(t, user.ID, fetched.UserID)
}

func TestTokenSqliteRepository_GetByKey_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	token, err := ctx.TokenRepo.GetByKey(context.Background(), testTokenKey())
	assert.Nil(t, token)
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestTokenSqliteRepository_Create_DuplicateKey(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	key := testTokenKey()
	first := &accounts.Token{ID: uuid.NewString(), CreatedAt: time.Now(), Key: key, UserID: user.ID}
	require.NoError(t, ctx.TokenRepo.Create(context.Background(), first))

	second := &accounts.Token{ID: uuid.NewString(), CreatedAt: time.Now(), Key: key, UserID: user.ID}
	err := ctx.TokenRepo.Create(context.Background(), second)
	assert.ErrorIs(t, err, accounts.ErrDuplicate)
}
