// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/models"
)

func Test_buildCountUsersQuery(t *testing.T) {
	query, args, err := buildCountUsersQuery(context.Background())
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT COUNT(*) FROM users", query)
}

func Test_buildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery(context.Background(), 20, 10)
	require.NoError(t, err)

	assert.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select id, name, email")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "order by id asc")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 20")
}

func Test_buildFindUserByIDQuery(t *testing.T) {
	query, args, err := buildFindUserByIDQuery(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "SELECT id, name, email FROM users WHERE id = ?", query)
}

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{ID: 99, Name: "Al", Email: "al@x.com"}

	query, args, err := buildCreateUserQuery(context.Background(), user)
	require.NoError(t, err)

	// id is never inserted explicitly
	assert.Equal(t, []any{"Al", "al@x.com"}, args)
	assert.Equal(t, "INSERT INTO users (name,email) VALUES (?,?) RETURNING id, name, email", query)
}

func Test_buildUpdateUserQuery(t *testing.T) {
	user := models.User{ID: 3, Name: "Al", Email: "al@x.com"}

	query, args, err := buildUpdateUserQuery(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, []any{"Al", "al@x.com", int64(3)}, args)
	assert.Equal(t, "UPDATE users SET name = ?, email = ? WHERE id = ? RETURNING id, name, email", query)
}

func Test_buildDeleteUserQuery(t *testing.T) {
	query, args, err := buildDeleteUserQuery(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []any{int64(5)}, args)
	assert.Equal(t, "DELETE FROM users WHERE id = ?", query)
}
