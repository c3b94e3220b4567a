package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var accountRowColumns = []string{"id", "email", "name", "password_hash", "created_at"}

// ── Create ──────────────────────────────────────────────────────────────────

func TestAccountRepository_Create_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO accounts \(id,email,name,password_hash\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING`).
		WithArgs("u-1", "ann@example.com", "Ann", "hash").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow("u-1", "ann@example.com", "Ann", "hash", now))

	created, err := repo.Create(context.Background(), models.Account{
		ID: "u-1", Email: "  Ann@Example.com ", Name: "Ann", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)
	assert.Equal(t, "ann@example.com", created.Email)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Account{ID: "u-1", Email: "ann@example.com"})
	require.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestAccountRepository_Create_OtherError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.Create(context.Background(), models.Account{ID: "u-1", Email: "ann@example.com"})
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestAccountRepository_TransientFailureIsReturnedOnce(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("u-1").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetByID(context.Background(), "u-1")
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.Equal(t, Retryable, repo.classify(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestAccountRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, name, password_hash, created_at FROM accounts WHERE email = \$1 LIMIT 1`).
					WithArgs("ann@example.com").
					WillReturnRows(sqlmock.NewRows(accountRowColumns).
						AddRow("u-1", "ann@example.com", "Ann", "hash", time.Now()))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM accounts").
					WithArgs("ann@example.com").
					WillReturnRows(sqlmock.NewRows(accountRowColumns))
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM accounts").
					WithArgs("ann@example.com").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)
			tt.setup(mock)

			account, err := repo.GetByEmail(context.Background(), "ANN@example.com")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", account.ID)
			assert.Equal(t, "Ann", account.Name)
		})
	}
}

func TestAccountRepository_GetByID(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(`FROM accounts WHERE id = \$1`).
		WithArgs("u-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "u-1")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// ── Error classification ───────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError("XX999")))

	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
