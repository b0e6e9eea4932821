package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/account-service/models"
)

const accountsTable = "accounts"

// accountColumns is the column order every account query selects or returns.
var accountColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}

var returningAccount = "RETURNING " + strings.Join(accountColumns, ", ")

func buildInsertAccountQuery(b sq.StatementBuilderType, acc models.Account) (string, []any, error) {
	return b.Insert(accountsTable).
		Columns("name", "email", "address", "phone_number", "date_joined").
		Values(acc.Name, acc.Email, acc.Address, acc.PhoneNumber, acc.DateJoined).
		Suffix(returningAccount).
		ToSql()
}

func buildSelectAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(accountColumns...).
		From(accountsTable).
		OrderBy("id").
		ToSql()
}

// buildUpdateAccountQuery replaces every mutable column. date_joined is left
// untouched when the incoming date is zero.
func buildUpdateAccountQuery(b sq.StatementBuilderType, acc models.Account) (string, []any, error) {
	set := map[string]any{
		"name":         acc.Name,
		"email":        acc.Email,
		"address":      acc.Address,
		"phone_number": acc.PhoneNumber,
	}
	if !acc.DateJoined.IsZero() {
		set["date_joined"] = acc.DateJoined
	}

	return b.Update(accountsTable).
		SetMap(set).
		Where(sq.Eq{"id": acc.ID}).
		Suffix(returningAccount).
		ToSql()
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
