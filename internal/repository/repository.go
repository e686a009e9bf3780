package repository

import "errors"

var ErrObjectNotFound = errors.New("not found")

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}
