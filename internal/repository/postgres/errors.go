package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
)

// SQLSTATE codes translated into storage errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver errors onto apperror storage sentinels. The pgx
// error stays in the chain for logging.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", apperror.ErrRecordMissing, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w (%s): %w", apperror.ErrDuplicate, pgErr.ConstraintName, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w (%s): %w", apperror.ErrRecordMissing, pgErr.ConstraintName, err)
		}
	}
	return err
}

// likePattern escapes LIKE metacharacters and wraps s for a contains match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// orderBy returns a safe ORDER BY clause. sortBy must be a key of allowed;
// anything else falls back to def.
func orderBy(allowed map[string]string, sortBy, sortOrder, def string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = allowed[def]
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id %s", col, dir, dir)
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends cond, where every %[1]d is replaced by the new argument's position.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) String() string {
	return strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) next() int {
	return len(w.args) + 1
}
