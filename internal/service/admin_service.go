package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/models"
)

type adminService struct {
	provider adapter.AdminProvider
	adminKey string
	logger   *logger.Logger
}

// NewAdminService binds the operator endpoints to adminKey.
func NewAdminService(provider adapter.AdminProvider, adminKey string, logger *logger.Logger) AdminService {
	return &adminService{provider: provider, adminKey: adminKey, logger: logger}
}

func (s *adminService) State(ctx context.Context) (models.SimulationState, error) {
	state, err := s.provider.SimulationState(ctx, s.adminKey)
	return state, s.wrap("state", err)
}

func (s *adminService) View(ctx context.Context) (json.RawMessage, error) {
	view, err := s.provider.AdminView(ctx, s.adminKey)
	return view, s.wrap("view", err)
}

func (s *adminService) DefaultParameters(ctx context.Context) (json.RawMessage, error) {
	params, err := s.provider.DefaultParameters(ctx, s.adminKey)
	return params, s.wrap("defaults", err)
}

func (s *adminService) PastSimulations(ctx context.Context) (json.RawMessage, error) {
	past, err := s.provider.PastSimulations(ctx, s.adminKey)
	return past, s.wrap("past", err)
}

func (s *adminService) Create(ctx context.Context, params json.RawMessage) error {
	return s.wrap("create", s.provider.CreateSimulation(ctx, s.adminKey, params))
}

func (s *adminService) Pause(ctx context.Context) error {
	return s.wrap("pause", s.provider.PauseSimulation(ctx, s.adminKey))
}

func (s *adminService) Resume(ctx context.Context) error {
	return s.wrap("resume", s.provider.ResumeSimulation(ctx, s.adminKey))
}

func (s *adminService) End(ctx context.Context) error {
	return s.wrap("end", s.provider.EndSimulation(ctx, s.adminKey))
}

func (s *adminService) wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	s.logger.Err(err).Str("func", "adminService."+op).Msg("admin call failed")
	return fmt.Errorf("%s: %w", op, mapAdapterError(err))
}
