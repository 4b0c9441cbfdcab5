package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/pkg/database"
	"github.com/klfacil/erp-backend-go/internal/repository/postgresql"
)

// runInTransaction wraps repository calls that must share one transaction.
// Package variable so tests against in-memory repositories can stub it.
var runInTransaction = func(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

type PunchServiceImpl struct {
	db *database.DB
	punch.EventRepository
}

func NewPunchService(db *database.DB, eventRepo punch.EventRepository) punch.Service {
	return &PunchServiceImpl{
		db:              db,
		EventRepository: eventRepo,
	}
}

// userIDFromContext extracts the acting supervisor/admin from JWT claims.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Register implements punch.Service.
func (s *PunchServiceImpl) Register(ctx context.Context, req punch.RegisterRequest) (punch.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.EventResponse{}, err
	}

	// Validate already checked the format
	ts, _ := time.Parse(time.RFC3339, req.Timestamp)

	event := punch.Event{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		UnitID:        req.UnitID,
		Type:          punch.EventType(req.Type),
		Timestamp:     ts.UTC(),
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ProofPhotoURL: req.ProofPhotoURL,
		Observation:   req.Observation,
	}

	created, err := s.EventRepository.Create(ctx, event)
	if err != nil {
		return punch.EventResponse{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return punch.ToEventResponse(created), nil
}

// RegisterManual implements punch.Service.
func (s *PunchServiceImpl) RegisterManual(ctx context.Context, req punch.ManualEntryRequest) (punch.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.EventResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return punch.EventResponse{}, err
	}

	ts, _ := time.Parse(time.RFC3339, req.Timestamp)

	event := punch.Event{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		UnitID:      req.UnitID,
		Type:        punch.EventType(req.Type),
		Timestamp:   ts.UTC(),
		CreatedBy:   &userID,
		Observation: req.Observation,
	}

	created, err := s.EventRepository.Create(ctx, event)
	if err != nil {
		return punch.EventResponse{}, fmt.Errorf("failed to create manual punch event: %w", err)
	}

	return punch.ToEventResponse(created), nil
}

// Correct implements punch.Service. The original capture metadata stays in
// place; only the timestamp and observation move, and the event is flagged
// with the correcting admin.
func (s *PunchServiceImpl) Correct(ctx context.Context, req punch.CorrectRequest) (punch.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.EventResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return punch.EventResponse{}, err
	}

	// The read and the write share one transaction
	var event punch.Event
	err = runInTransaction(ctx, s.db, func(txCtx context.Context) error {
		event, err = s.EventRepository.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, punch.ErrEventNotFound) {
				return punch.ErrEventNotFound
			}
			return fmt.Errorf("failed to get punch event: %w", err)
		}

		if req.Timestamp != nil {
			ts, _ := time.Parse(time.RFC3339, *req.Timestamp)
			event.Timestamp = ts.UTC()
		}
		if req.Observation != nil {
			event.Observation = req.Observation
		}
		event.EditedBy = &userID

		if err := s.EventRepository.Update(txCtx, event); err != nil {
			return fmt.Errorf("failed to update punch event: %w", err)
		}
		return nil
	})
	if err != nil {
		return punch.EventResponse{}, err
	}

	return punch.ToEventResponse(event), nil
}

// List implements punch.Service.
func (s *PunchServiceImpl) List(ctx context.Context, filter punch.ListFilter) (punch.ListEventsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}

	events, total, err := s.EventRepository.List(ctx, filter)
	if err != nil {
		return punch.ListEventsResponse{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	responses := make([]punch.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, punch.ToEventResponse(ev))
	}

	return punch.ListEventsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Events:     responses,
	}, nil
}
