package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/handler/gen"
)

// RecordFeedback handles POST /api/user_feedback.
// Every input problem, including an unknown POI, is answered with the same
// "Invalid parameters" message.
func (s *Server) RecordFeedback(ctx context.Context, req gen.RecordFeedbackRequestObject) (gen.RecordFeedbackResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	fb, err := requestToFeedback(who.UserID, req.Body)
	if err != nil {
		return gen.RecordFeedback400JSONResponse{BadRequestJSONResponse: badRequest(msgInvalidParameters)}, nil
	}

	if _, err := s.feedback.Record(ctx, fb); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.RecordFeedback400JSONResponse{BadRequestJSONResponse: badRequest(msgInvalidParameters)}, nil
		}
		return nil, err
	}

	return gen.RecordFeedback200JSONResponse{Success: true, Message: "Feedback saved successfully"}, nil
}

// ListFeedback handles GET /api/user_feedback.
func (s *Server) ListFeedback(ctx context.Context, _ gen.ListFeedbackRequestObject) (gen.ListFeedbackResponseObject, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.feedback.List(ctx, who.UserID)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Feedback, len(rows))
	for i, fb := range rows {
		data[i] = gen.Feedback{PoiId: fb.POIID, Liked: fb.Liked, UpdatedAt: fb.UpdatedAt}
	}
	return gen.ListFeedback200JSONResponse{Success: true, Feedback: data}, nil
}

// requestToFeedback coerces the loosely typed request body into a domain.Feedback.
func requestToFeedback(userID int64, body *gen.RecordFeedbackJSONRequestBody) (domain.Feedback, error) {
	if body == nil || body.PoiId == nil || body.Liked == nil {
		return domain.Feedback{}, domain.ErrValidation
	}
	poiID, err := domain.ParsePOIID(json.RawMessage(*body.PoiId))
	if err != nil {
		return domain.Feedback{}, err
	}
	liked, err := domain.ParseLiked(json.RawMessage(*body.Liked))
	if err != nil {
		return domain.Feedback{}, err
	}
	return domain.Feedback{UserID: userID, POIID: poiID, Liked: liked}, nil
}
