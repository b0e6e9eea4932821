// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/account-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func sampleAccount() models.Account {
	return models.Account{
		ID:          7,
		Name:        "Ada",
		Email:       "ada@example.com",
		Address:     "London",
		PhoneNumber: "+44 20",
		DateJoined:  models.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func Test_buildInsertAccountQuery(t *testing.T) {
	acc := sampleAccount()

	query, args, err := buildInsertAccountQuery(dollar, acc)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into accounts"))
	assert.Contains(t, query, "$5")
	assert.NotContains(t, q, "(id,")
	assert.Contains(t, query, "RETURNING id, name, email, address, phone_number, date_joined")

	require.Len(t, args, 5)
	assert.Equal(t, acc.Name, args[0])
	assert.Equal(t, acc.PhoneNumber, args[3])
	assert.Equal(t, acc.DateJoined, args[4])
}

func Test_buildSelectAccountQuery(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres placeholders",
			builder: dollar,
			want:    "SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE id = $1",
		},
		{
			name:    "sqlite placeholders",
			builder: question,
			want:    "SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectAccountQuery(tt.builder, 42)

			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(42)}, args)
		})
	}
}

func Test_buildListAccountsQuery_OrderedByID(t *testing.T) {
	query, args, err := buildListAccountsQuery(dollar)

	require.NoError(t, err)
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY id"))
}

func Test_buildUpdateAccountQuery(t *testing.T) {
	t.Run("with date", func(t *testing.T) {
		acc := sampleAccount()

		query, args, err := buildUpdateAccountQuery(dollar, acc)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(query, "UPDATE accounts SET"))
		assert.Contains(t, query, "date_joined = $")
		assert.Contains(t, query, "WHERE id = $6")
		assert.Contains(t, query, "RETURNING id")
		require.Len(t, args, 6)
		assert.Equal(t, acc.ID, args[5])
	})

	t.Run("zero date keeps stored value", func(t *testing.T) {
		acc := sampleAccount()
		acc.DateJoined = models.Date{}

		query, args, err := buildUpdateAccountQuery(dollar, acc)
		require.NoError(t, err)

		assert.NotContains(t, query, "date_joined =")
		assert.Contains(t, query, "WHERE id = $5")
		require.Len(t, args, 5)
	})
}

func Test_buildDeleteAccountQuery(t *testing.T) {
	query, args, err := buildDeleteAccountQuery(dollar, 3)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM accounts WHERE id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)
}
