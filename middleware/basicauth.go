package middleware

import (
	"database/sql"
	"errors"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"pongapi/models"
)

// BasicAuth returns an Echo middleware that validates HTTP Basic
// credentials against the users table. Passwords are stored as bcrypt
// hashes, written by cmd/adduser.
func BasicAuth(db *bun.DB) echo.MiddlewareFunc {
	return echomw.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		user := &models.User{}
		err := db.NewSelect().Model(user).
			Where("username = ?", username).
			Scan(c.Request().Context())
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return false, nil
			}
			return false, err
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return false, nil
		}
		return true, nil
	})
}
