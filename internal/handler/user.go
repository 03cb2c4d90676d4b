package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// ListUsers handles GET /api/users (admin only).
// The response is a bare array, like GET /api/pois.
func (s *Server) ListUsers(ctx context.Context, _ gen.ListUsersRequestObject) (gen.ListUsersResponseObject, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListUsers200JSONResponse, len(users))
	for i, u := range users {
		out[i] = userToResponse(u)
	}
	return out, nil
}

// SetUserBan handles POST /api/users/{id}/ban (admin only).
// Admin accounts cannot be banned and are reported like a missing user.
func (s *Server) SetUserBan(ctx context.Context, req gen.SetUserBanRequestObject) (gen.SetUserBanResponseObject, error) {
	var raw json.RawMessage
	if req.Body != nil && req.Body.Ban != nil {
		raw = *req.Body.Ban
	}

	ban, err := domain.ParseBan(raw)
	if err != nil {
		return gen.SetUserBan400JSONResponse{BadRequestJSONResponse: badRequest(validationMessage(err))}, nil
	}

	if err := s.users.SetBanned(ctx, req.Id, ban); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.SetUserBan404JSONResponse{NotFoundJSONResponse: notFound(msgUserNotBannable)}, nil
		}
		return nil, err
	}

	verb := "unbanned"
	if ban {
		verb = "banned"
	}
	return gen.SetUserBan200JSONResponse{Success: true, Message: "User " + verb + " successfully"}, nil
}

// userToResponse converts a domain.User into the generated gen.User type.
func userToResponse(u domain.User) gen.User {
	prefs := u.Preferences
	if len(prefs) == 0 {
		prefs = json.RawMessage("[]")
	}
	return gen.User{
		Id:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    u.LastName,
		Age:         u.Age,
		Address:     u.Address,
		Role:        u.Role,
		Preferences: prefs,
		Banned:      u.Banned,
	}
}
