// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/models"
)

// userColumns is the column list of every query returning whole users.
var userColumns = []string{"id", "name", "email"}

// returningUser makes INSERT and UPDATE statements yield the stored row.
const returningUser = "RETURNING id, name, email"

// psql builds statements with the "?" placeholders understood by go-sqlite3.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func usersTable() string {
	return models.User{}.TableName()
}

// buildCountUsersQuery builds the query counting all stored users.
func buildCountUsersQuery(_ context.Context) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(usersTable()).
		ToSql()
}

// buildListUsersQuery builds a query selecting one page of users ordered by
// id, which matches insertion order because ids are never reused.
func buildListUsersQuery(_ context.Context, offset, limit int) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable()).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

// buildFindUserByIDQuery builds a query selecting a single user by id.
func buildFindUserByIDQuery(_ context.Context, id int64) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildCreateUserQuery builds an INSERT returning the stored row. The id
// column is left to AUTOINCREMENT.
func buildCreateUserQuery(_ context.Context, user models.User) (string, []any, error) {
	return psql.
		Insert(usersTable()).
		Columns("name", "email").
		Values(user.Name, user.Email).
		Suffix(returningUser).
		ToSql()
}

// buildUpdateUserQuery builds an UPDATE of name and email returning the
// stored row. No row is returned when the id is unknown.
func buildUpdateUserQuery(_ context.Context, user models.User) (string, []any, error) {
	return psql.
		Update(usersTable()).
		Set("name", user.Name).
		Set("email", user.Email).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returningUser).
		ToSql()
}

// buildDeleteUserQuery builds a DELETE of a single user by id.
func buildDeleteUserQuery(_ context.Context, id int64) (string, []any, error) {
	return psql.
		Delete(usersTable()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
