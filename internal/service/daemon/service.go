package daemon

import (
	"context"
	"fmt"

	domain "github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/logger"
	repo "github.com/oshokin/clockrobustus/internal/repository/alarms"
)

// service encapsulates the alarm management logic on top of the store.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// repo handles persistent storage of alarms.
	repo repo.Repository
}

// newService creates a service backed by the provided repository.
func newService(repository repo.Repository) *service {
	return &service{repo: repository}
}

// ListAlarms returns every stored alarm.
func (s *service) ListAlarms(ctx context.Context, actor *domain.Actor) ([]domain.Alarm, error) {
	alarms, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	logger.DebugKV(ctx, "Alarms requested", "actor", actor.String(), "count", len(alarms))

	return alarms, nil
}

// UpsertAlarm inserts or updates one alarm.
func (s *service) UpsertAlarm(ctx context.Context, actor *domain.Actor, a *domain.Alarm) error {
	if err := s.repo.Upsert(ctx, a); err != nil {
		logger.ErrorKV(ctx, "Failed to save alarm", "alarm", a.String(), "error", err)

		return fmt.Errorf("upsert alarm: %w", err)
	}

	logger.InfoKV(ctx, "Alarm saved", "alarm", a.String(), "actor", actor.String())

	return nil
}

// DeleteAlarm removes one saved alarm.
func (s *service) DeleteAlarm(ctx context.Context, actor *domain.Actor, a *domain.Alarm) error {
	if err := s.repo.Remove(ctx, a); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}

	logger.InfoKV(ctx, "Alarm deleted", "alarm", a.String(), "actor", actor.String())

	return nil
}
