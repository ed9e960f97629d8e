package postgres

import (
	"context"
	"testing"
	"time"

	"fleet-edi-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToken() *domain.PartnerToken {
	return &domain.PartnerToken{
		ID:         uuid.New(),
		MerchantID: 42,
		Name:       "warehouse integration",
		Prefix:     "a1b2c3d4",
		SecretHash: "$argon2id$v=19$m=65536,t=1,p=4$salt$hash",
		Active:     true,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func tokenColumns() []string {
	return []string{"id", "merchant_id", "name", "prefix", "secret_hash", "active", "created_at", "revoked_at"}
}

func tokenRow(t *domain.PartnerToken) *pgxmock.Rows {
	return pgxmock.NewRows(tokenColumns()).AddRow(
		t.ID, t.MerchantID, t.Name, t.Prefix, t.SecretHash,
		t.Active, t.CreatedAt, t.RevokedAt,
	)
}

func TestTokenRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	tok := newTestToken()

	mock.ExpectExec("INSERT INTO partner_tokens").
		WithArgs(tok.ID, tok.MerchantID, tok.Name, tok.Prefix, tok.SecretHash, tok.Active, tok.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), tok)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	tok := newTestToken()

	mock.ExpectQuery("SELECT (.+) FROM partner_tokens WHERE id").
		WithArgs(tok.ID).
		WillReturnRows(tokenRow(tok))

	got, err := repo.GetByID(context.Background(), tok.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tok.Prefix, got.Prefix)
	assert.Equal(t, tok.MerchantID, got.MerchantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM partner_tokens WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(tokenColumns()))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenRepo_GetByPrefix(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	tok := newTestToken()

	mock.ExpectQuery("SELECT (.+) FROM partner_tokens WHERE prefix").
		WithArgs(tok.Prefix).
		WillReturnRows(tokenRow(tok))

	got, err := repo.GetByPrefix(context.Background(), tok.Prefix)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tok.ID, got.ID)
}

func TestTokenRepo_GetByPrefix_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM partner_tokens WHERE prefix").
		WithArgs("nope0000").
		WillReturnRows(pgxmock.NewRows(tokenColumns()))

	got, err := repo.GetByPrefix(context.Background(), "nope0000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenRepo_ListByMerchant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	t1 := newTestToken()
	t2 := newTestToken()
	revokedAt := time.Now().UTC()
	t2.Active = false
	t2.RevokedAt = &revokedAt

	rows := pgxmock.NewRows(tokenColumns()).
		AddRow(t1.ID, t1.MerchantID, t1.Name, t1.Prefix, t1.SecretHash, t1.Active, t1.CreatedAt, t1.RevokedAt).
		AddRow(t2.ID, t2.MerchantID, t2.Name, t2.Prefix, t2.SecretHash, t2.Active, t2.CreatedAt, t2.RevokedAt)

	mock.ExpectQuery("SELECT (.+) FROM partner_tokens WHERE merchant_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	tokens, err := repo.ListByMerchant(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].IsActive())
	assert.False(t, tokens[1].IsActive())
}

func TestTokenRepo_Revoke(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	id := uuid.New()
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE partner_tokens SET active").
		WithArgs(at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Revoke(context.Background(), id, at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Revoke_AlreadyRevokedMatchesNoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)
	id := uuid.New()
	at := time.Now().UTC()

	// revoked_at IS NULL filter matched nothing; still not an error.
	mock.ExpectExec("UPDATE partner_tokens SET active").
		WithArgs(at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.Revoke(context.Background(), id, at))
}
