package service

import (
	"context"
	"fmt"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

// ReportService builds the admin reports over users and the POI catalog.
type ReportService struct {
	users repo.UserRepo
	pois  repo.POIRepo
}

// NewReportService constructs a ReportService backed by the provided repos.
func NewReportService(users repo.UserRepo, pois repo.POIRepo) *ReportService {
	return &ReportService{users: users, pois: pois}
}

// Users returns the users matching f. TotalUsers excludes admin accounts.
func (s *ReportService) Users(ctx context.Context, f domain.UserFilter) (domain.UserReport, error) {
	users, err := s.users.Search(ctx, f)
	if err != nil {
		return domain.UserReport{}, fmt.Errorf("service.ReportService.Users: %w", err)
	}
	if users == nil {
		users = []domain.UserSummary{}
	}

	report := domain.UserReport{Users: users}
	for _, u := range users {
		if u.Role != domain.RoleAdmin {
			report.TotalUsers++
		}
	}
	return report, nil
}

// POIs returns the catalog entries matching f.
func (s *ReportService) POIs(ctx context.Context, f domain.POIFilter) (domain.POIReport, error) {
	pois, err := s.pois.Search(ctx, f)
	if err != nil {
		return domain.POIReport{}, fmt.Errorf("service.ReportService.POIs: %w", err)
	}
	pois = nonNil(pois)
	return domain.POIReport{TotalPOIs: len(pois), POIs: pois}, nil
}
