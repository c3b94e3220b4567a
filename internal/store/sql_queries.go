package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal-keeper/models"
)

const (
	accountsTable     = "accounts"
	localSessionTable = "local_session"

	// localSessionRowID pins the single row of the local session table.
	localSessionRowID = 1
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	accountColumns = []string{"id", "email", "name", "password_hash", "created_at"}
)

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert(accountsTable).
		Columns("id", "email", "name", "password_hash").
		Values(account.ID, account.Email, account.Name, account.PasswordHash).
		Suffix("RETURNING id, email, name, password_hash, created_at").
		ToSql()
}

func buildSelectAccountQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(accountColumns...).
		From(accountsTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildSelectLocalSessionQuery() (string, []any, error) {
	return sqlite.Select("secret").
		From(localSessionTable).
		Where(sq.Eq{"id": localSessionRowID}).
		ToSql()
}

func buildUpsertLocalSessionQuery(secret string) (string, []any, error) {
	return sqlite.Insert(localSessionTable).
		Columns("id", "secret", "saved_at").
		Values(localSessionRowID, secret, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(id) DO UPDATE SET secret = excluded.secret, saved_at = excluded.saved_at").
		ToSql()
}

func buildDeleteLocalSessionQuery() (string, []any, error) {
	return sqlite.Delete(localSessionTable).
		Where(sq.Eq{"id": localSessionRowID}).
		ToSql()
}
