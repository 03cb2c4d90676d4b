package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/route-planner/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for Itineraries.
// Every read and write is scoped by ownerID: a row owned by someone else is
// reported as domain.ErrNotFound, exactly like a missing row.
type ItineraryRepo interface {
	// Create inserts a new itinerary and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// GetByID retrieves one itinerary owned by ownerID.
	// Returns domain.ErrNotFound if it does not exist or belongs to another user.
	GetByID(ctx context.Context, ownerID, id int64) (domain.Itinerary, error)

	// ListByOwner returns all itineraries owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error)

	// UpdateStatus sets the status of one itinerary owned by ownerID, but only
	// while its current status is one of from. Returns domain.ErrNotFound when
	// no row matched (missing, foreign-owned, or guarded by from).
	UpdateStatus(ctx context.Context, ownerID, id int64, to domain.ItineraryStatus, from []domain.ItineraryStatus) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts a new itinerary row and returns the full persisted record.
// route_data is sent as text and cast server-side so the stored JSON is
// exactly what the client supplied.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (user_id, name, route_data, status)
		VALUES (@user_id, @name, @route_data::jsonb, @status)
		RETURNING id, user_id, name, route_data, status, created_at`

	args := pgx.NamedArgs{
		"user_id":    it.OwnerID,
		"name":       it.Name,
		"route_data": string(it.RouteData),
		"status":     string(it.Status),
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, wrapErr("repo.ItineraryRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves an itinerary by primary key and owner.
func (r *pgItineraryRepo) GetByID(ctx context.Context, ownerID, id int64) (domain.Itinerary, error) {
	const q = `
		SELECT id, user_id, name, route_data, status, created_at
		FROM itineraries
		WHERE id = @id AND user_id = @user_id`

	result, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": ownerID}))
	if err != nil {
		return domain.Itinerary{}, wrapErr("repo.ItineraryRepo.GetByID", err)
	}
	return result, nil
}

// ListByOwner returns the owner's itineraries ordered by created_at descending.
// id breaks ties so rows inserted in the same transaction keep insertion order reversed.
func (r *pgItineraryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Itinerary, error) {
	const q = `
		SELECT id, user_id, name, route_data, status, created_at
		FROM itineraries
		WHERE user_id = @user_id
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": ownerID})
	if err != nil {
		return nil, wrapErr("repo.ItineraryRepo.ListByOwner", err)
	}
	defer rows.Close()

	itineraries := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, wrapErr("repo.ItineraryRepo.ListByOwner: scan", err)
		}
		itineraries = append(itineraries, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("repo.ItineraryRepo.ListByOwner: rows", err)
	}
	return itineraries, nil
}

// UpdateStatus is a single conditional UPDATE: ownership and the transition
// guard are checked by the same statement that writes.
func (r *pgItineraryRepo) UpdateStatus(ctx context.Context, ownerID, id int64, to domain.ItineraryStatus, from []domain.ItineraryStatus) error {
	const q = `
		UPDATE itineraries
		SET status = @status
		WHERE id = @id
		  AND user_id = @user_id
		  AND status = ANY(@from)`

	allowed := make([]string, len(from))
	for i, st := range from {
		allowed[i] = string(st)
	}

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"status":  string(to),
		"id":      id,
		"user_id": ownerID,
		"from":    allowed,
	})
	if err != nil {
		return wrapErr("repo.ItineraryRepo.UpdateStatus", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("repo.ItineraryRepo.UpdateStatus", domain.ErrNotFound)
	}
	return nil
}

// scanItinerary maps a single database row into a domain.Itinerary.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it        domain.Itinerary
		routeData []byte
		status    string
		createdAt time.Time
	)
	if err := s.Scan(&it.ID, &it.OwnerID, &it.Name, &routeData, &status, &createdAt); err != nil {
		return domain.Itinerary{}, err
	}
	it.RouteData = routeData
	it.Status = domain.ItineraryStatus(status)
	it.CreatedAt = createdAt
	return it, nil
}
