package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/qbmille/trivia-api/internal/cache"
	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository"
)

var (
	ErrStageNotFound     = repository.ErrStageNotFound
	ErrSectionNotFound   = repository.ErrSectionNotFound
	ErrJeuNotFound       = repository.ErrJeuNotFound
	ErrQuestionNotFound  = repository.ErrQuestionNotFound
	ErrReponseNotFound   = repository.ErrReponseNotFound
	ErrDuplicateNumOrder = repository.ErrDuplicateNumOrder
)

type CatalogRepository interface {
	CreateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error)
	FindStageByID(ctx context.Context, id uint) (domain.Stage, error)
	FindAllStages(ctx context.Context, langue string) ([]domain.Stage, error)
	UpdateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error)
	DeleteStage(ctx context.Context, id uint) error

	CreateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	FindSectionByID(ctx context.Context, id uint) (domain.Section, error)
	FindAllSections(ctx context.Context, langue string) ([]domain.Section, error)
	UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error)
	DeleteSection(ctx context.Context, id uint) error

	CreateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error)
	FindJeuByID(ctx context.Context, id uint) (domain.Jeu, error)
	FindAllJeux(ctx context.Context, langue string) ([]domain.Jeu, error)
	UpdateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error)
	DeleteJeu(ctx context.Context, id uint) error

	CreateQuestion(ctx context.Context, question domain.Question) (domain.Question, error)
	FindQuestionByID(ctx context.Context, id uint) (domain.Question, error)
	FindQuestionsByJeuID(ctx context.Context, jeuID uint) ([]domain.Question, error)
	UpdateQuestion(ctx context.Context, question domain.Question) (domain.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error

	CreateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error)
	UpdateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error)
	DeleteReponse(ctx context.Context, id uint) error
}

type CatalogService struct {
	repo  CatalogRepository
	cache *cache.Cache
}

func NewCatalogService(repo CatalogRepository, cache *cache.Cache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		zap.L().Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}

// Stages

func (s *CatalogService) CreateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error) {
	created, err := s.repo.CreateStage(ctx, stage)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("s.repo.CreateStage -> %w", err)
	}

	s.invalidate(ctx)

	return created, nil
}

func (s *CatalogService) GetStage(ctx context.Context, id uint) (domain.Stage, error) {
	stage, err := s.repo.FindStageByID(ctx, id)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("s.repo.FindStageByID -> %w", err)
	}

	return stage, nil
}

func (s *CatalogService) ListStages(ctx context.Context, langue string) ([]domain.Stage, error) {
	if stages, ok := s.cache.GetStages(ctx, langue); ok {
		return stages, nil
	}

	stages, err := s.repo.FindAllStages(ctx, langue)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllStages -> %w", err)
	}

	if err = s.cache.SetStages(ctx, langue, stages); err != nil {
		zap.L().Warn("failed to cache stages", zap.Error(err))
	}

	return stages, nil
}

func (s *CatalogService) UpdateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error) {
	updated, err := s.repo.UpdateStage(ctx, stage)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("s.repo.UpdateStage -> %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *CatalogService) DeleteStage(ctx context.Context, id uint) error {
	if err := s.repo.DeleteStage(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteStage -> %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Sections

func (s *CatalogService) CreateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	created, err := s.repo.CreateSection(ctx, section)
	if err != nil {
		return domain.Section{}, fmt.Errorf("s.repo.CreateSection -> %w", err)
	}

	s.invalidate(ctx)

	return created, nil
}

func (s *CatalogService) GetSection(ctx context.Context, id uint) (domain.Section, error) {
	section, err := s.repo.FindSectionByID(ctx, id)
	if err != nil {
		return domain.Section{}, fmt.Errorf("s.repo.FindSectionByID -> %w", err)
	}

	return section, nil
}

func (s *CatalogService) ListSections(ctx context.Context, langue string) ([]domain.Section, error) {
	sections, err := s.repo.FindAllSections(ctx, langue)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllSections -> %w", err)
	}

	return sections, nil
}

func (s *CatalogService) UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	updated, err := s.repo.UpdateSection(ctx, section)
	if err != nil {
		return domain.Section{}, fmt.Errorf("s.repo.UpdateSection -> %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *CatalogService) DeleteSection(ctx context.Context, id uint) error {
	if err := s.repo.DeleteSection(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteSection -> %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Jeux

func (s *CatalogService) CreateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error) {
	if _, err := s.repo.FindStageByID(ctx, jeu.StageID); err != nil {
		return domain.Jeu{}, fmt.Errorf("s.repo.FindStageByID -> %w", err)
	}
	if jeu.SectionID != nil {
		if _, err := s.repo.FindSectionByID(ctx, *jeu.SectionID); err != nil {
			return domain.Jeu{}, fmt.Errorf("s.repo.FindSectionByID -> %w", err)
		}
	}

	created, err := s.repo.CreateJeu(ctx, jeu)
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("s.repo.CreateJeu -> %w", err)
	}

	s.invalidate(ctx)

	return created, nil
}

func (s *CatalogService) GetJeu(ctx context.Context, id uint) (domain.Jeu, error) {
	if jeu, ok := s.cache.GetJeu(ctx, id); ok {
		return jeu, nil
	}

	jeu, err := s.repo.FindJeuByID(ctx, id)
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("s.repo.FindJeuByID -> %w", err)
	}

	if err = s.cache.SetJeu(ctx, jeu); err != nil {
		zap.L().Warn("failed to cache jeu", zap.Error(err))
	}

	return jeu, nil
}

func (s *CatalogService) ListJeux(ctx context.Context, langue string) ([]domain.Jeu, error) {
	jeux, err := s.repo.FindAllJeux(ctx, langue)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllJeux -> %w", err)
	}

	return jeux, nil
}

func (s *CatalogService) UpdateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error) {
	updated, err := s.repo.UpdateJeu(ctx, jeu)
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("s.repo.UpdateJeu -> %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *CatalogService) DeleteJeu(ctx context.Context, id uint) error {
	if err := s.repo.DeleteJeu(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteJeu -> %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Questions

func (s *CatalogService) CreateQuestion(ctx context.Context, question domain.Question) (domain.Question, error) {
	if _, err := s.repo.FindJeuByID(ctx, question.JeuID); err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.FindJeuByID -> %w", err)
	}

	created, err := s.repo.CreateQuestion(ctx, question)
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.CreateQuestion -> %w", err)
	}

	s.invalidate(ctx)

	return created, nil
}

func (s *CatalogService) GetQuestion(ctx context.Context, id uint) (domain.Question, error) {
	question, err := s.repo.FindQuestionByID(ctx, id)
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.FindQuestionByID -> %w", err)
	}

	return question, nil
}

func (s *CatalogService) ListQuestionsByJeu(ctx context.Context, jeuID uint) ([]domain.Question, error) {
	questions, err := s.repo.FindQuestionsByJeuID(ctx, jeuID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindQuestionsByJeuID -> %w", err)
	}

	return questions, nil
}

func (s *CatalogService) UpdateQuestion(ctx context.Context, question domain.Question) (domain.Question, error) {
	updated, err := s.repo.UpdateQuestion(ctx, question)
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.UpdateQuestion -> %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *CatalogService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteQuestion -> %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Reponses

func (s *CatalogService) CreateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error) {
	if _, err := s.repo.FindQuestionByID(ctx, reponse.QuestionID); err != nil {
		return domain.Reponse{}, fmt.Errorf("s.repo.FindQuestionByID -> %w", err)
	}

	created, err := s.repo.CreateReponse(ctx, reponse)
	if err != nil {
		return domain.Reponse{}, fmt.Errorf("s.repo.CreateReponse -> %w", err)
	}

	s.invalidate(ctx)

	return created, nil
}

func (s *CatalogService) UpdateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error) {
	updated, err := s.repo.UpdateReponse(ctx, reponse)
	if err != nil {
		return domain.Reponse{}, fmt.Errorf("s.repo.UpdateReponse -> %w", err)
	}

	s.invalidate(ctx)

	return updated, nil
}

func (s *CatalogService) DeleteReponse(ctx context.Context, id uint) error {
	if err := s.repo.DeleteReponse(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteReponse -> %w", err)
	}

	s.invalidate(ctx)

	return nil
}
