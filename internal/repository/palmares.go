package repository

import (
	"context"
	"fmt"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository/dao"
)

var (
	ErrPalmaresNotFound = dao.ErrPalmaresNotFound
	ErrBoardNotFound    = dao.ErrBoardNotFound
	ErrProgressConflict = dao.ErrProgressConflict
)

type PalmaresDAO interface {
	Insert(ctx context.Context, entry dao.Palmares) (dao.Palmares, error)
	FindCurrent(ctx context.Context, userID uint) (dao.Palmares, error)
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Palmares, error)
	FindAll(ctx context.Context) ([]dao.Palmares, error)
	Advance(ctx context.Context, currentID uint, score int, statusStage string, next *dao.Palmares) (dao.Palmares, error)
	InsertBoard(ctx context.Context, board dao.BoardIndex) (dao.BoardIndex, error)
	FindBoardByUserID(ctx context.Context, userID uint) (dao.BoardIndex, error)
}

type PalmaresRepository struct {
	dao PalmaresDAO
}

func NewPalmaresRepository(dao PalmaresDAO) *PalmaresRepository {
	return &PalmaresRepository{
		dao: dao,
	}
}

func (r *PalmaresRepository) Create(ctx context.Context, entry domain.Palmares) (domain.Palmares, error) {
	created, err := r.dao.Insert(ctx, palmaresDomainToDao(entry))
	if err != nil {
		return domain.Palmares{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return palmaresDaoToDomain(created), nil
}

func (r *PalmaresRepository) FindCurrent(ctx context.Context, userID uint) (domain.Palmares, error) {
	found, err := r.dao.FindCurrent(ctx, userID)
	if err != nil {
		return domain.Palmares{}, fmt.Errorf("r.dao.FindCurrent -> %w", err)
	}

	return palmaresDaoToDomain(found), nil
}

func (r *PalmaresRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	exists, err := r.dao.ExistsForUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsForUser -> %w", err)
	}

	return exists, nil
}

func (r *PalmaresRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Palmares, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	entries := make([]domain.Palmares, len(found))
	for i, e := range found {
		entries[i] = palmaresDaoToDomain(e)
	}

	return entries, nil
}

func (r *PalmaresRepository) FindAll(ctx context.Context) ([]domain.Palmares, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	entries := make([]domain.Palmares, len(found))
	for i, e := range found {
		entries[i] = palmaresDaoToDomain(e)
	}

	return entries, nil
}

// Advance finalizes the CURRENT entry and creates its successor (nil for
// the terminal catalog-exhausted case) atomically.
func (r *PalmaresRepository) Advance(ctx context.Context, currentID uint, score int, statusStage string, next *domain.Palmares) (domain.Palmares, error) {
	var daoNext *dao.Palmares
	if next != nil {
		converted := palmaresDomainToDao(*next)
		daoNext = &converted
	}

	created, err := r.dao.Advance(ctx, currentID, score, statusStage, daoNext)
	if err != nil {
		return domain.Palmares{}, fmt.Errorf("r.dao.Advance -> %w", err)
	}

	return palmaresDaoToDomain(created), nil
}

func (r *PalmaresRepository) CreateBoard(ctx context.Context, board domain.Board) (domain.Board, error) {
	created, err := r.dao.InsertBoard(ctx, dao.BoardIndex{
		UserID: board.UserID,
		Cells:  board.Cells,
	})
	if err != nil {
		return domain.Board{}, fmt.Errorf("r.dao.InsertBoard -> %w", err)
	}

	return boardDaoToDomain(created), nil
}

func (r *PalmaresRepository) FindBoardByUserID(ctx context.Context, userID uint) (domain.Board, error) {
	found, err := r.dao.FindBoardByUserID(ctx, userID)
	if err != nil {
		return domain.Board{}, fmt.Errorf("r.dao.FindBoardByUserID -> %w", err)
	}

	return boardDaoToDomain(found), nil
}

func palmaresDomainToDao(p domain.Palmares) dao.Palmares {
	return dao.Palmares{
		ID:              p.ID,
		UserID:          p.UserID,
		StageID:         p.StageID,
		SectionID:       p.SectionID,
		JeuID:           p.JeuID,
		StatusStage:     p.StatusStage,
		StageNumOrder:   p.StageNumOrder,
		StageLength:     p.StageLength,
		StatusSection:   p.StatusSection,
		SectionNumOrder: p.SectionNumOrder,
		StatusJeu:       p.StatusJeu,
		Niveau:          p.Niveau,
		Langue:          p.Langue,
		NumOrder:        p.NumOrder,
		JeuValide:       p.JeuValide,
		Score:           p.Score,
		IsFinished:      p.IsFinished,
	}
}

func palmaresDaoToDomain(p dao.Palmares) domain.Palmares {
	entry := domain.Palmares{
		ID:              p.ID,
		UserID:          p.UserID,
		StageID:         p.StageID,
		SectionID:       p.SectionID,
		JeuID:           p.JeuID,
		StatusStage:     p.StatusStage,
		StageNumOrder:   p.StageNumOrder,
		StageLength:     p.StageLength,
		StatusSection:   p.StatusSection,
		SectionNumOrder: p.SectionNumOrder,
		StatusJeu:       p.StatusJeu,
		Niveau:          p.Niveau,
		Langue:          p.Langue,
		NumOrder:        p.NumOrder,
		JeuValide:       p.JeuValide,
		Score:           p.Score,
		IsFinished:      p.IsFinished,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if p.Stage != nil {
		stage := stageDaoToDomain(*p.Stage)
		entry.Stage = &stage
	}
	if p.Section != nil {
		section := sectionDaoToDomain(*p.Section)
		entry.Section = &section
	}
	if p.Jeu != nil {
		jeu := jeuDaoToDomain(*p.Jeu)
		entry.Jeu = &jeu
	}

	return entry
}

func boardDaoToDomain(b dao.BoardIndex) domain.Board {
	return domain.Board{
		ID:        b.ID,
		UserID:    b.UserID,
		Cells:     b.Cells,
		CreatedAt: b.CreatedAt,
	}
}
