package repository

import (
	"errors"
	"regexp"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// violation is an integrity failure reported by the engine.
type violation int

const (
	noViolation violation = iota
	uniqueViolation
	foreignKeyViolation
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	mysqlDuplicateEntry   = 1062
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	mysqlRowIsReferenced1 = 1217
	mysqlNoReferencedRow1 = 1216
)

var mysqlConstraintName = regexp.MustCompile("CONSTRAINT `([^`]+)`")
var mysqlDuplicateKey = regexp.MustCompile(`for key '([^']+)'`)

// inspect classifies a raw driver error. constraint is the violated constraint name when the engine
// reports one; SQLite only reports it for unique failures ("table.column").
func inspect(err error) (violation, string) {
	if err == nil {
		return noViolation, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return uniqueViolation, pgErr.ConstraintName
		case pgForeignKeyViolation:
			return foreignKeyViolation, pgErr.ConstraintName
		}
		return noViolation, ""
	}

	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return uniqueViolation, submatch(mysqlDuplicateKey, myErr.Message)
		case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlRowIsReferenced1, mysqlNoReferencedRow1:
			return foreignKeyViolation, submatch(mysqlConstraintName, myErr.Message)
		}
		return noViolation, ""
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation, strings.TrimSpace(strings.TrimPrefix(liteErr.Error(), "UNIQUE constraint failed:"))
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyViolation, ""
		case sqlite3.ErrConstraintTrigger:
			// ON DELETE RESTRICT is enforced as a trigger and reported with this code
			if strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed") {
				return foreignKeyViolation, ""
			}
		}
		return noViolation, ""
	}

	return noViolation, ""
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
