package db

import "database/sql"

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// RequiredTables are the tables the API reads and writes.
var RequiredTables = []string{"users", "trips", "trip_destinations", "trip_expenses", "wishlist_items"}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		// no row and bad connection both read as missing
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables returns the entries of tables that do not exist, in order.
func MissingTables(q QueryRower, tables []string) []string {
	missing := []string{}
	for _, t := range tables {
		if !HasTable(q, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
