package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/route-planner/backend/internal/domain"
)

// POIRepo defines the read operations on the POI catalog.
// Feedback-aware reads are expressed as joins so filtering happens in SQL.
type POIRepo interface {
	// List returns the whole catalog ordered by id.
	List(ctx context.Context) ([]domain.POI, error)

	// ListExcludingDisliked returns every POI the user has not disliked.
	ListExcludingDisliked(ctx context.Context, userID int64) ([]domain.POI, error)

	// ListLiked returns every POI the user has liked.
	ListLiked(ctx context.Context, userID int64) ([]domain.POI, error)

	// ListMostLiked returns every POI with its like count, most liked first.
	ListMostLiked(ctx context.Context) ([]domain.POIPopularity, error)

	// Search returns POIs matching f, ordered by id.
	Search(ctx context.Context, f domain.POIFilter) ([]domain.POI, error)
}

// pgPOIRepo is the Postgres implementation of POIRepo.
type pgPOIRepo struct {
	db db
}

// NewPOIRepo constructs a POIRepo backed by the provided db connection.
func NewPOIRepo(db db) POIRepo {
	return &pgPOIRepo{db: db}
}

const poiColumns = `p.id, p.name, p.description, p.tags, p.lat, p.lng, p.image, p.visitors`

func (r *pgPOIRepo) List(ctx context.Context) ([]domain.POI, error) {
	q := `SELECT ` + poiColumns + ` FROM pois p ORDER BY p.id`
	return r.queryPOIs(ctx, "repo.POIRepo.List", q, pgx.NamedArgs{})
}

// ListExcludingDisliked is an anti-join against the caller's dislikes.
func (r *pgPOIRepo) ListExcludingDisliked(ctx context.Context, userID int64) ([]domain.POI, error) {
	q := `
		SELECT ` + poiColumns + `
		FROM pois p
		WHERE NOT EXISTS (
			SELECT 1 FROM user_feedback f
			WHERE f.poi_id = p.id AND f.user_id = @user_id AND NOT f.liked
		)
		ORDER BY p.id`
	return r.queryPOIs(ctx, "repo.POIRepo.ListExcludingDisliked", q, pgx.NamedArgs{"user_id": userID})
}

func (r *pgPOIRepo) ListLiked(ctx context.Context, userID int64) ([]domain.POI, error) {
	q := `
		SELECT ` + poiColumns + `
		FROM pois p
		JOIN user_feedback f ON f.poi_id = p.id
		WHERE f.user_id = @user_id AND f.liked
		ORDER BY p.id`
	return r.queryPOIs(ctx, "repo.POIRepo.ListLiked", q, pgx.NamedArgs{"user_id": userID})
}

func (r *pgPOIRepo) ListMostLiked(ctx context.Context) ([]domain.POIPopularity, error) {
	q := `
		SELECT ` + poiColumns + `, COUNT(f.poi_id) AS total_likes
		FROM pois p
		LEFT JOIN user_feedback f ON f.poi_id = p.id AND f.liked
		GROUP BY p.id
		ORDER BY total_likes DESC, p.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, wrapErr("repo.POIRepo.ListMostLiked", err)
	}
	defer rows.Close()

	out := []domain.POIPopularity{}
	for rows.Next() {
		var p domain.POIPopularity
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Tags, &p.Lat, &p.Lng, &p.Image, &p.Visitors, &p.TotalLikes); err != nil {
			return nil, wrapErr("repo.POIRepo.ListMostLiked: scan", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("repo.POIRepo.ListMostLiked: rows", err)
	}
	return out, nil
}

// Search builds its WHERE clause from the non-zero fields of f.
// Name uses strpos rather than LIKE so user input is never a pattern.
func (r *pgPOIRepo) Search(ctx context.Context, f domain.POIFilter) ([]domain.POI, error) {
	var (
		conds []string
		args  = pgx.NamedArgs{}
	)
	if f.ID != 0 {
		conds = append(conds, "p.id = @id")
		args["id"] = f.ID
	}
	if f.Name != "" {
		conds = append(conds, "strpos(p.name, @name) > 0")
		args["name"] = f.Name
	}
	if f.MinVisitors > 0 {
		conds = append(conds, "p.visitors >= @min_visitors")
		args["min_visitors"] = f.MinVisitors
	}

	q := `SELECT ` + poiColumns + ` FROM pois p` + where(conds) + ` ORDER BY p.id`
	return r.queryPOIs(ctx, "repo.POIRepo.Search", q, args)
}

func (r *pgPOIRepo) queryPOIs(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.POI, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	pois := []domain.POI{}
	for rows.Next() {
		p, err := scanPOI(rows)
		if err != nil {
			return nil, wrapErr(op+": scan", err)
		}
		pois = append(pois, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op+": rows", err)
	}
	return pois, nil
}

// scanPOI maps a single database row into a domain.POI.
func scanPOI(s scanner) (domain.POI, error) {
	var p domain.POI
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Tags, &p.Lat, &p.Lng, &p.Image, &p.Visitors); err != nil {
		return domain.POI{}, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

// where joins conditions with AND, or returns "" when there are none.
func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
