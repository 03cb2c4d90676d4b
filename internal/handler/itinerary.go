package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// CreateItinerary handles POST /api/itineraries.
func (s *Server) CreateItinerary(ctx context.Context, req gen.CreateItineraryRequestObject) (gen.CreateItineraryResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var name string
	var routeData json.RawMessage
	if req.Body != nil {
		if req.Body.Name != nil {
			name = *req.Body.Name
		}
		if req.Body.RouteData != nil {
			routeData = *req.Body.RouteData
		}
	}

	created, err := s.itineraries.Create(ctx, who.UserID, name, routeData)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateItinerary400JSONResponse{BadRequestJSONResponse: badRequest(validationMessage(err))}, nil
		}
		return nil, err
	}

	return gen.CreateItinerary201JSONResponse{
		Success:   true,
		Message:   "Itinerary saved successfully",
		Id:        created.ID,
		Itinerary: itineraryToResponse(created),
	}, nil
}

// ListItineraries handles GET /api/itineraries.
// Newest first; an owner with no itineraries gets an empty array.
func (s *Server) ListItineraries(ctx context.Context, _ gen.ListItinerariesRequestObject) (gen.ListItinerariesResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	its, err := s.itineraries.List(ctx, who.UserID)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Itinerary, len(its))
	for i, it := range its {
		data[i] = itineraryToResponse(it)
	}
	return gen.ListItineraries200JSONResponse{Success: true, Itineraries: data}, nil
}

// GetItinerary handles GET /api/itineraries/{id}.
// Itineraries owned by someone else are reported as not found.
func (s *Server) GetItinerary(ctx context.Context, req gen.GetItineraryRequestObject) (gen.GetItineraryResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	it, err := s.itineraries.GetByID(ctx, who.UserID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetItinerary404JSONResponse{NotFoundJSONResponse: notFound(msgItineraryNotFound)}, nil
		}
		return nil, err
	}

	return gen.GetItinerary200JSONResponse{
		Id:        it.ID,
		Name:      it.Name,
		Status:    gen.ItineraryStatus(it.Status),
		CreatedAt: it.CreatedAt,
		RouteData: routeDataOrEmpty(it.RouteData),
	}, nil
}

// UpdateItineraryStatus handles PUT /api/itineraries/{id}/status.
func (s *Server) UpdateItineraryStatus(ctx context.Context, req gen.UpdateItineraryStatusRequestObject) (gen.UpdateItineraryStatusResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var status string
	if req.Body != nil && req.Body.Status != nil {
		status = *req.Body.Status
	}

	err = s.itineraries.UpdateStatus(ctx, who.UserID, req.Id, status)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateItineraryStatus400JSONResponse{BadRequestJSONResponse: badRequest(validationMessage(err))}, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateItineraryStatus404JSONResponse{NotFoundJSONResponse: notFound(msgItineraryNotFound)}, nil
		}
		return nil, err
	}

	return gen.UpdateItineraryStatus200JSONResponse{Success: true, Message: "Status updated successfully"}, nil
}

// --- mapping helpers --------------------------------------------------------

// itineraryToResponse converts a domain.Itinerary into the generated gen.Itinerary type.
func itineraryToResponse(it domain.Itinerary) gen.Itinerary {
	return gen.Itinerary{
		Id:        it.ID,
		UserId:    it.OwnerID,
		Name:      it.Name,
		RouteData: routeDataOrEmpty(it.RouteData),
		Status:    gen.ItineraryStatus(it.Status),
		CreatedAt: it.CreatedAt,
	}
}

// routeDataOrEmpty guards the encoder against a nil RawMessage, which would
// otherwise be written as null.
func routeDataOrEmpty(raw json.RawMessage) gen.RouteData {
	if len(raw) == 0 {
		return gen.RouteData("[]")
	}
	return gen.RouteData(raw)
}
