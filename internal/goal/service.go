package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidID    = errors.New("invalid id format")
	ErrValidation   = errors.New("invalid goal")
)

type Service interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	List(ctx context.Context) (*ListGoalsResponse, error)
	AddProgress(ctx context.Context, id string, dto AddProgressDTO) (*Goal, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create goal")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(dto.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !dto.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", ErrValidation)
	}

	g := Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        dto.Title,
		TargetAmount: dto.TargetAmount,
		Deadline:     dto.Deadline,
		Status:       StatusActive,
	}

	if err := s.repo.Create(&g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return &g, nil
}

// List loads the user's goals with the reconciliation pass applied: any
// ACTIVE goal found already past its target is flipped to COMPLETED, written
// back, and reported in NewlyCompleted for a one-time acknowledgment.
func (s *service) List(ctx context.Context) (*ListGoalsResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list goals")
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}

	reconciled, completed := Reconcile(goals)
	if len(completed) > 0 {
		if err := s.repo.ReplaceAll(userID, reconciled); err != nil {
			log.WithError(err).Error("Failed to persist reconciled goals")
			return nil, err
		}
		log.WithField("completed", len(completed)).Info("Goals reconciled to COMPLETED")
	}

	return &ListGoalsResponse{Goals: reconciled, NewlyCompleted: completed}, nil
}

func (s *service) AddProgress(ctx context.Context, id string, dto AddProgressDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "add goal progress")
	if err != nil {
		return nil, err
	}

	if !dto.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution must be positive", ErrValidation)
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load goals")
		return nil, err
	}

	var g *Goal
	for i := range goals {
		if goals[i].ID == goalID {
			g = &goals[i]
			break
		}
	}
	if g == nil {
		log.WithFields(logrus.Fields{
			"goal_id": id,
			"user_id": userID,
		}).Warn("Goal not found or does not belong to user")
		return nil, ErrGoalNotFound
	}

	g.CurrentAmount = g.CurrentAmount.Add(dto.Amount)
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = StatusCompleted
	}

	if err := s.repo.Update(g); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to update goal progress")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"goal_id": g.ID,
		"status":  g.Status,
	}).Info("Goal progress added")
	return g, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "delete goal")
	if err != nil {
		return err
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.Delete(userID, goalID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to delete goal")
		return err
	}
	return nil
}
