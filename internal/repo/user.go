package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/route-planner/backend/internal/domain"
)

// UserRepo defines the admin operations on user accounts: reports, the full
// listing and ban moderation. Registration, login and profile edits live in
// the identity service.
type UserRepo interface {
	// Search returns users matching f, ordered by id.
	Search(ctx context.Context, f domain.UserFilter) ([]domain.UserSummary, error)

	// List returns every account, ordered by id.
	List(ctx context.Context) ([]domain.User, error)

	// SetBanned sets the banned flag of a non-admin account.
	// Returns domain.ErrNotFound if id does not exist or belongs to an admin.
	SetBanned(ctx context.Context, id int64, banned bool) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) Search(ctx context.Context, f domain.UserFilter) ([]domain.UserSummary, error) {
	var (
		conds []string
		args  = pgx.NamedArgs{}
	)
	if f.ID != 0 {
		conds = append(conds, "id = @id")
		args["id"] = f.ID
	}
	if f.Username != "" {
		conds = append(conds, "strpos(username, @username) > 0")
		args["username"] = f.Username
	}
	if f.Email != "" {
		conds = append(conds, "strpos(email, @email) > 0")
		args["email"] = f.Email
	}
	if f.Role != "" {
		conds = append(conds, "role = @role")
		args["role"] = f.Role
	}

	q := `SELECT id, username, email, role FROM users` + where(conds) + ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, wrapErr("repo.UserRepo.Search", err)
	}
	defer rows.Close()

	users := []domain.UserSummary{}
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, wrapErr("repo.UserRepo.Search: scan", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("repo.UserRepo.Search: rows", err)
	}
	return users, nil
}

func (r *pgUserRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT id, username, email, first_name, middle_name, last_name,
		       age, address, role, preferences, banned
		FROM users
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, wrapErr("repo.UserRepo.List", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var (
			u           domain.User
			preferences []byte
		)
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.MiddleName, &u.LastName,
			&u.Age, &u.Address, &u.Role, &preferences, &u.Banned)
		if err != nil {
			return nil, wrapErr("repo.UserRepo.List: scan", err)
		}
		u.Preferences = preferences
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("repo.UserRepo.List: rows", err)
	}
	return users, nil
}

// SetBanned is one guarded UPDATE; admins are excluded in the WHERE clause so
// an admin can never be banned, even by another admin.
func (r *pgUserRepo) SetBanned(ctx context.Context, id int64, banned bool) error {
	const q = `
		UPDATE users
		SET banned = @banned
		WHERE id = @id AND role <> 'admin'`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "banned": banned})
	if err != nil {
		return wrapErr("repo.UserRepo.SetBanned", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("repo.UserRepo.SetBanned", domain.ErrNotFound)
	}
	return nil
}
