package alarm

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/clockrobustus/internal/apperr"
	domain "github.com/oshokin/clockrobustus/internal/domain/alarm"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	ListAlarms(ctx context.Context, actor *domain.Actor) ([]domain.Alarm, error)
	UpsertAlarm(ctx context.Context, actor *domain.Actor, alarm *domain.Alarm) error
	DeleteAlarm(ctx context.Context, actor *domain.Actor, alarm *domain.Alarm) error
}

// Server implements the AlarmService gRPC API.
type Server struct {
	// service provides the business logic for alarm operations.
	service Service
}

var _ AlarmServiceServer = (*Server)(nil)

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ListAlarms returns every stored alarm.
func (s *Server) ListAlarms(ctx context.Context, req *ListAlarmsRequest) (*ListAlarmsResponse, error) {
	var actor *domain.Actor
	if req != nil {
		actor = req.RequestingActor
	}

	alarms, err := s.service.ListAlarms(ctx, actor)
	if err != nil {
		return nil, toStatus(err, "unable to list alarms")
	}

	if alarms == nil {
		alarms = []domain.Alarm{}
	}

	return &ListAlarmsResponse{Alarms: alarms}, nil
}

// UpsertAlarm validates and saves one alarm.
func (s *Server) UpsertAlarm(ctx context.Context, req *UpsertAlarmRequest) (*UpsertAlarmResponse, error) {
	if req == nil || req.Alarm == nil {
		return nil, status.Error(codes.InvalidArgument, "alarm is required")
	}

	if err := req.Alarm.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.service.UpsertAlarm(ctx, req.Actor, req.Alarm); err != nil {
		return nil, toStatus(err, "unable to save alarm")
	}

	return new(UpsertAlarmResponse), nil
}

// DeleteAlarm removes one saved alarm.
func (s *Server) DeleteAlarm(ctx context.Context, req *DeleteAlarmRequest) (*DeleteAlarmResponse, error) {
	if req == nil || req.Alarm == nil {
		return nil, status.Error(codes.InvalidArgument, "alarm is required")
	}

	if err := s.service.DeleteAlarm(ctx, req.Actor, req.Alarm); err != nil {
		return nil, toStatus(err, "unable to delete alarm")
	}

	return new(DeleteAlarmResponse), nil
}

// toStatus maps domain errors to gRPC codes. Storage details stay on the server.
func toStatus(err error, internalMessage string) error {
	switch {
	case errors.Is(err, apperr.ErrUnsavedEntity), errors.Is(err, domain.ErrInvalidAlarm):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, internalMessage)
	}
}
