package api

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// AddUser registers a user. The username is checked before the insert so a
// taken name fails without writing anything; the unique constraint backs the
// check up against concurrent registrations.
func (st *Store) AddUser(ctx context.Context, username, password, fullname string) (string, error) {
	if err := st.verifyNewUsername(ctx, username); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := newID("user")
	_, err = st.db.Exec(ctx,
		`INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)`,
		id, username, string(hash), fullname,
	)
	if isUniqueViolation(err) {
		return "", errInvariant("failed to add user: username is already taken")
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (st *Store) verifyNewUsername(ctx context.Context, username string) error {
	var taken string
	err := st.db.QueryRow(ctx,
		`SELECT username FROM users WHERE username = $1`, username,
	).Scan(&taken)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return errInvariant("failed to add user: username is already taken")
}

func (st *Store) GetUserByID(ctx context.Context, id string) (User, error) {
	var u User
	err := st.db.QueryRow(ctx,
		`SELECT id, username, fullname FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Fullname)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, errNotFound("user not found")
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (st *Store) FindUsersByUsername(ctx context.Context, username string) ([]User, error) {
	rows, err := st.db.Query(ctx,
		`SELECT id, username, fullname FROM users WHERE username LIKE $1`,
		"%"+username+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Fullname); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// VerifyUserCredential returns the user id when username and password match.
// Unknown usernames and wrong passwords fail identically.
func (st *Store) VerifyUserCredential(ctx context.Context, username, password string) (string, error) {
	var id, hash string
	err := st.db.QueryRow(ctx,
		`SELECT id, password FROM users WHERE username = $1`, username,
	).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errUnauthenticated("the credentials you provided are wrong")
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", errUnauthenticated("the credentials you provided are wrong")
	}
	return id, nil
}
