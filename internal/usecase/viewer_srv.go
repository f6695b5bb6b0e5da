package usecase

import (
	"context"
	"fmt"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/dto/response"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ViewerService interface {
	CreateViewer(ctx context.Context, req *request.ViewerRequest) (*response.ViewerResponse, error)
	GetViewers(ctx context.Context) ([]response.ViewerResponse, error)
	GetViewerByID(ctx context.Context, id int64) (*response.ViewerResponse, error)
	UpdateViewer(ctx context.Context, id int64, req *request.ViewerRequest) (*response.ViewerResponse, error)
	DeleteViewer(ctx context.Context, id int64) error
}

type viewerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewViewerService(repo *repository.Repository, log *zap.Logger) ViewerService {
	return &viewerService{
		repo: repo,
		log:  log.With(zap.String("service", "viewer")),
	}
}

func (s *viewerService) CreateViewer(ctx context.Context, req *request.ViewerRequest) (*response.ViewerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create viewer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	viewer := &entity.Viewer{
		Name:    req.Name,
		Age:     req.Age,
		Balance: decimal.NewFromFloat(req.Balance),
	}

	if err := s.repo.Viewer.Create(ctx, viewer); err != nil {
		return nil, err
	}

	s.log.Info("Viewer created",
		zap.Int64("viewer_id", viewer.ID),
		zap.String("name", viewer.Name),
	)

	resp := response.ViewerToResponse(viewer)
	return &resp, nil
}

func (s *viewerService) GetViewers(ctx context.Context) ([]response.ViewerResponse, error) {
	viewers, err := s.repo.Viewer.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.ViewersToResponse(viewers), nil
}

func (s *viewerService) GetViewerByID(ctx context.Context, id int64) (*response.ViewerResponse, error) {
	viewer, err := s.repo.Viewer.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, &repository.NotFoundError{Entity: "Viewer", ID: id}
	}

	resp := response.ViewerToResponse(viewer)
	return &resp, nil
}

func (s *viewerService) UpdateViewer(ctx context.Context, id int64, req *request.ViewerRequest) (*response.ViewerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update viewer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	viewer := &entity.Viewer{
		ID:      id,
		Name:    req.Name,
		Age:     req.Age,
		Balance: decimal.NewFromFloat(req.Balance),
	}

	if err := s.repo.Viewer.Update(ctx, viewer); err != nil {
		return nil, err
	}

	s.log.Info("Viewer updated", zap.Int64("viewer_id", id))

	resp := response.ViewerToResponse(viewer)
	return &resp, nil
}

func (s *viewerService) DeleteViewer(ctx context.Context, id int64) error {
	return s.repo.Viewer.Delete(ctx, id)
}
