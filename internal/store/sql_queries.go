package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/models"
)

var usersTable = models.User{}.TableName()

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

// sortColumns whitelists the columns a list may be ordered by.
var sortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchCondition matches search as a case-insensitive substring of name or
// email. An empty search matches every row.
func searchCondition(search string) sq.Sqlizer {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
	return sq.Or{
		sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(email) LIKE ? ESCAPE '\'`, pattern),
	}
}

func (db *DB) buildFindAllQuery(query models.ListQuery) (string, []any, error) {
	column, ok := sortColumns[query.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown sort column %q", ErrBuildingSQLQuery, query.SortBy)
	}

	order := "ASC"
	if query.SortOrder == models.SortDesc {
		order = "DESC"
	}

	builder := db.builder.
		Select(userColumns...).
		From(usersTable).
		// id keeps pages stable when the sort column has duplicates
		OrderBy(column+" "+order, "id "+order).
		Limit(uint64(query.PageSize)).
		Offset(uint64(query.Offset()))

	if cond := searchCondition(query.Search); cond != nil {
		builder = builder.Where(cond)
	}

	return builder.ToSql()
}

func (db *DB) buildCountQuery(search string) (string, []any, error) {
	builder := db.builder.Select("COUNT(*)").From(usersTable)
	if cond := searchCondition(search); cond != nil {
		builder = builder.Where(cond)
	}

	return builder.ToSql()
}

func (db *DB) buildFindByQuery(column, value string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (db *DB) buildInsertQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (db *DB) buildUpdateQuery(id string, fields map[string]any) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildDeleteQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
