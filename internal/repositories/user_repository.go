package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	query, args, err := sq.Select("id", "name", "email", "password_hash", "created_at").
		From("users").
		Where(squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))}).
		ToSql()
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	err = r.db().QueryRow(query, args...).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r UserRepository) Create(u models.User) (int64, error) {
	res, err := execBuilder(r.db(), sq.Insert("users").
		Columns("name", "email", "password_hash", "created_at").
		Values(u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.CreatedAt))
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}
