package handler

import (
	"context"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// GetReport handles GET /api/reports?type=users|pois.
// Admin only; the role check happens in middleware.NewBearerAuth.
func (s *Server) GetReport(ctx context.Context, req gen.GetReportRequestObject) (gen.GetReportResponseObject, error) {
	q := paramsToReportQuery(req.Params)
	if ferr := validateStruct(q); ferr != nil {
		msg := ferr.Message
		if ferr.Field == "type" {
			msg = msgInvalidReportType
		}
		return gen.GetReport400JSONResponse{BadRequestJSONResponse: badRequest(msg)}, nil
	}

	switch domain.ReportType(q.Type) {
	case domain.ReportUsers:
		report, err := s.reports.Users(ctx, domain.UserFilter{
			ID:       q.ID,
			Username: q.Username,
			Email:    q.Email,
			Role:     q.Role,
		})
		if err != nil {
			return nil, err
		}
		users := make([]gen.UserSummary, len(report.Users))
		for i, u := range report.Users {
			users[i] = gen.UserSummary{Id: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
		}
		return gen.GetReport200JSONResponse{TotalUsers: &report.TotalUsers, Users: &users}, nil

	default:
		report, err := s.reports.POIs(ctx, domain.POIFilter{
			ID:          q.ID,
			Name:        q.Name,
			MinVisitors: q.Visitors,
		})
		if err != nil {
			return nil, err
		}
		pois := poisToResponse(report.POIs)
		return gen.GetReport200JSONResponse{TotalPOIs: &report.TotalPOIs, Pois: &pois}, nil
	}
}

func paramsToReportQuery(p gen.GetReportParams) reportQuery {
	var q reportQuery
	if p.Type != nil {
		q.Type = string(*p.Type)
	}
	if p.Id != nil {
		q.ID = *p.Id
	}
	if p.Username != nil {
		q.Username = *p.Username
	}
	if p.Email != nil {
		q.Email = *p.Email
	}
	if p.Role != nil {
		q.Role = *p.Role
	}
	if p.Name != nil {
		q.Name = *p.Name
	}
	if p.Visitors != nil {
		q.Visitors = *p.Visitors
	}
	return q
}
