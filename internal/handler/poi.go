package handler

import (
	"context"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// ListPOIs handles GET /api/pois. The response is a bare array.
func (s *Server) ListPOIs(ctx context.Context, _ gen.ListPOIsRequestObject) (gen.ListPOIsResponseObject, error) {
	pois, err := s.pois.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListPOIs200JSONResponse(poisToResponse(pois)), nil
}

// ListRecommendedPOIs handles GET /api/pois/recommended.
// POIs the caller disliked are left out.
func (s *Server) ListRecommendedPOIs(ctx context.Context, _ gen.ListRecommendedPOIsRequestObject) (gen.ListRecommendedPOIsResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	pois, err := s.pois.Recommended(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	return gen.ListRecommendedPOIs200JSONResponse{Success: true, Pois: poisToResponse(pois)}, nil
}

// ListLikedPOIs handles GET /api/pois/recommended/liked.
func (s *Server) ListLikedPOIs(ctx context.Context, _ gen.ListLikedPOIsRequestObject) (gen.ListLikedPOIsResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	pois, err := s.pois.Liked(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	return gen.ListLikedPOIs200JSONResponse{Success: true, Pois: poisToResponse(pois)}, nil
}

// ListMostLikedPOIs handles GET /api/pois/most-liked.
func (s *Server) ListMostLikedPOIs(ctx context.Context, _ gen.ListMostLikedPOIsRequestObject) (gen.ListMostLikedPOIsResponseObject, error) {
	ranked, err := s.pois.MostLiked(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]gen.PopularPOI, len(ranked))
	for i, p := range ranked {
		data[i] = gen.PopularPOI{
			Id:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Image:       p.Image,
			Visitors:    p.Visitors,
			TotalLikes:  p.TotalLikes,
		}
	}
	return gen.ListMostLikedPOIs200JSONResponse{Success: true, MostLiked: data}, nil
}

// --- mapping helpers --------------------------------------------------------

func poisToResponse(pois []domain.POI) []gen.POI {
	out := make([]gen.POI, len(pois))
	for i, p := range pois {
		out[i] = poiToResponse(p)
	}
	return out
}

func poiToResponse(p domain.POI) gen.POI {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.POI{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tags:        tags,
		Lat:         p.Lat,
		Lng:         p.Lng,
		Image:       p.Image,
		Visitors:    p.Visitors,
	}
}
