package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository"
)

const passThreshold = 80 // percent; a jeu is validated only above this

var (
	ErrPalmaresNotFound = repository.ErrPalmaresNotFound
	ErrBoardNotFound    = repository.ErrBoardNotFound
	ErrProgressConflict = repository.ErrProgressConflict
)

type PalmaresRepository interface {
	Create(ctx context.Context, entry domain.Palmares) (domain.Palmares, error)
	FindCurrent(ctx context.Context, userID uint) (domain.Palmares, error)
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Palmares, error)
	FindAll(ctx context.Context) ([]domain.Palmares, error)
	Advance(ctx context.Context, currentID uint, score int, statusStage string, next *domain.Palmares) (domain.Palmares, error)
	CreateBoard(ctx context.Context, board domain.Board) (domain.Board, error)
	FindBoardByUserID(ctx context.Context, userID uint) (domain.Board, error)
}

type ProgressCatalogRepository interface {
	FindFirstStage(ctx context.Context, langue string) (domain.Stage, error)
	FindFirstSection(ctx context.Context, langue string) (domain.Section, error)
	FindFirstJeu(ctx context.Context, langue string, stageID uint, sectionID *uint) (domain.Jeu, error)
	FindJeuByID(ctx context.Context, id uint) (domain.Jeu, error)
	FindJeuByNumOrder(ctx context.Context, langue string, numOrder int) (domain.Jeu, error)
}

// BoardView is the player board plus where the player stands on it.
type BoardView struct {
	Cells     []int `json:"cells"`
	Current   int   `json:"current"`   // NumOrder of the CURRENT jeu
	Validated []int `json:"validated"` // NumOrders of validated jeux
}

type ProgressService struct {
	repo    PalmaresRepository
	catalog ProgressCatalogRepository
}

func NewProgressService(repo PalmaresRepository, catalog ProgressCatalogRepository) *ProgressService {
	return &ProgressService{
		repo:    repo,
		catalog: catalog,
	}
}

// Start seeds the progress ledger for a freshly onboarded player: one
// CURRENT palmares entry on the first jeu of the catalog, plus the board
// index. Calling it again is a no-op.
func (s *ProgressService) Start(ctx context.Context, user domain.User) error {
	exists, err := s.repo.ExistsForUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("s.repo.ExistsForUser -> %w", err)
	}

	if !exists {
		if err = s.seedPalmares(ctx, user); err != nil {
			return err
		}
	}

	if _, err = s.repo.FindBoardByUserID(ctx, user.ID); err != nil {
		if !errors.Is(err, ErrBoardNotFound) {
			return fmt.Errorf("s.repo.FindBoardByUserID -> %w", err)
		}

		board := domain.Board{
			UserID: user.ID,
			Cells:  shuffledCells(),
		}
		if _, err = s.repo.CreateBoard(ctx, board); err != nil {
			return fmt.Errorf("s.repo.CreateBoard -> %w", err)
		}
	}

	return nil
}

func (s *ProgressService) seedPalmares(ctx context.Context, user domain.User) error {
	stage, err := s.catalog.FindFirstStage(ctx, user.Langue)
	if err != nil {
		return fmt.Errorf("s.catalog.FindFirstStage -> %w", err)
	}

	section, err := s.catalog.FindFirstSection(ctx, user.Langue)
	if err != nil && !errors.Is(err, ErrSectionNotFound) {
		return fmt.Errorf("s.catalog.FindFirstSection -> %w", err)
	}

	var sectionID *uint
	if err == nil {
		sectionID = &section.ID
	}

	jeu, err := s.catalog.FindFirstJeu(ctx, user.Langue, stage.ID, sectionID)
	if err != nil {
		return fmt.Errorf("s.catalog.FindFirstJeu -> %w", err)
	}

	entry := domain.Palmares{
		UserID:          user.ID,
		StageID:         &stage.ID,
		SectionID:       sectionID,
		JeuID:           &jeu.ID,
		StatusStage:     domain.StatusCurrent,
		StageNumOrder:   stage.NumOrder,
		StageLength:     1,
		StatusSection:   domain.StatusCurrent,
		SectionNumOrder: section.NumOrder,
		StatusJeu:       domain.StatusCurrent,
		Niveau:          jeu.Niveau,
		Langue:          user.Langue,
		NumOrder:        jeu.NumOrder,
	}

	if _, err = s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("s.repo.Create -> %w", err)
	}

	return nil
}

func shuffledCells() []int {
	cells := make([]int, domain.BoardSize)
	for i := range cells {
		cells[i] = i + 1
	}
	rand.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}

// Current returns the player's CURRENT ledger entry with its jeu preloaded.
func (s *ProgressService) Current(ctx context.Context, userID uint) (domain.Palmares, error) {
	entry, err := s.repo.FindCurrent(ctx, userID)
	if err != nil {
		return domain.Palmares{}, fmt.Errorf("s.repo.FindCurrent -> %w", err)
	}

	return entry, nil
}

// Board returns the player's cell permutation together with the CURRENT
// position and the NumOrders already validated.
func (s *ProgressService) Board(ctx context.Context, userID uint) (BoardView, error) {
	board, err := s.repo.FindBoardByUserID(ctx, userID)
	if err != nil {
		return BoardView{}, fmt.Errorf("s.repo.FindBoardByUserID -> %w", err)
	}

	entries, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return BoardView{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	view := BoardView{
		Cells:     board.Cells,
		Validated: make([]int, 0, len(entries)),
	}
	for _, e := range entries {
		switch e.StatusJeu {
		case domain.StatusCurrent:
			view.Current = e.NumOrder
		case domain.StatusValidated:
			view.Validated = append(view.Validated, e.NumOrder)
		}
	}

	return view, nil
}

// History returns the full ledger of one player, newest first.
func (s *ProgressService) History(ctx context.Context, userID uint) ([]domain.Palmares, error) {
	entries, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return entries, nil
}

// ListAll returns every player's ledger entries for the admin dashboard.
func (s *ProgressService) ListAll(ctx context.Context) ([]domain.Palmares, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return entries, nil
}

// SubmitScore grades a finished jeu. One point per question whose selected
// reponse both belongs to that question and is marked correct; the score is
// the percentage of questions answered correctly.
func (s *ProgressService) SubmitScore(ctx context.Context, jeuID uint, selections map[uint]uint) (domain.ScoreResult, error) {
	jeu, err := s.catalog.FindJeuByID(ctx, jeuID)
	if err != nil {
		return domain.ScoreResult{}, fmt.Errorf("s.catalog.FindJeuByID -> %w", err)
	}

	result := domain.ScoreResult{
		JeuID:          jeu.ID,
		TotalQuestions: len(jeu.Questions),
	}

	for _, q := range jeu.Questions {
		selected, ok := selections[q.ID]
		if !ok {
			continue
		}
		for _, r := range q.Reponses {
			if r.ID == selected && r.IsCorrect {
				result.CorrectAnswers++
				break
			}
		}
	}

	if result.TotalQuestions > 0 {
		result.Score = result.CorrectAnswers * 100 / result.TotalQuestions
	}

	return result, nil
}

// Advance records the score of the CURRENT jeu and, when the score clears
// the pass threshold, validates it and opens the next jeu in NumOrder
// sequence. The whole step runs in one transaction; a concurrent advance
// on the same entry surfaces as ErrProgressConflict.
func (s *ProgressService) Advance(ctx context.Context, userID uint, score int) (domain.AdvanceResult, error) {
	current, err := s.repo.FindCurrent(ctx, userID)
	if err != nil {
		return domain.AdvanceResult{}, fmt.Errorf("s.repo.FindCurrent -> %w", err)
	}

	if score <= passThreshold {
		return domain.AdvanceResult{Score: score}, nil
	}

	nextJeu, err := s.catalog.FindJeuByNumOrder(ctx, current.Langue, current.NumOrder+1)
	if err != nil {
		if !errors.Is(err, ErrJeuNotFound) {
			return domain.AdvanceResult{}, fmt.Errorf("s.catalog.FindJeuByNumOrder -> %w", err)
		}

		// No next jeu: the player just cleared the last one.
		if _, err = s.repo.Advance(ctx, current.ID, score, domain.StatusValidated, nil); err != nil {
			return domain.AdvanceResult{}, fmt.Errorf("s.repo.Advance -> %w", err)
		}

		return domain.AdvanceResult{
			Advanced: true,
			Finished: true,
			Score:    score,
		}, nil
	}

	stageRollover := nextJeu.Stage != nil && nextJeu.Stage.NumOrder != current.StageNumOrder

	statusStage := domain.StatusCurrent
	stageLength := current.StageLength + 1
	stageNumOrder := current.StageNumOrder
	if stageRollover {
		statusStage = domain.StatusValidated
		stageLength = 1
		stageNumOrder = nextJeu.Stage.NumOrder
	}

	sectionNumOrder := current.SectionNumOrder
	if nextJeu.Section != nil {
		sectionNumOrder = nextJeu.Section.NumOrder
	}

	next := domain.Palmares{
		UserID:          userID,
		StageID:         &nextJeu.StageID,
		SectionID:       nextJeu.SectionID,
		JeuID:           &nextJeu.ID,
		StatusStage:     domain.StatusCurrent,
		StageNumOrder:   stageNumOrder,
		StageLength:     stageLength,
		StatusSection:   domain.StatusCurrent,
		SectionNumOrder: sectionNumOrder,
		StatusJeu:       domain.StatusCurrent,
		Niveau:          nextJeu.Niveau,
		Langue:          current.Langue,
		NumOrder:        nextJeu.NumOrder,
	}

	created, err := s.repo.Advance(ctx, current.ID, score, statusStage, &next)
	if err != nil {
		return domain.AdvanceResult{}, fmt.Errorf("s.repo.Advance -> %w", err)
	}

	return domain.AdvanceResult{
		Advanced:    true,
		IsMilestone: domain.IsMilestone(nextJeu.NumOrder),
		Score:       score,
		NextJeu:     &nextJeu,
		NextEntry:   &created,
	}, nil
}
