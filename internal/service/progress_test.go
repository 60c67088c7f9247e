package service_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository"
	"github.com/qbmille/trivia-api/internal/service"
)

type stubPalmaresRepo struct {
	entries []domain.Palmares
	boards  map[uint]domain.Board

	advancedID    uint
	advancedScore int
	advancedStage string
	advancedNext  *domain.Palmares
	advanceErr    error

	createdEntries []domain.Palmares
	createdBoards  []domain.Board
}

func newStubPalmaresRepo() *stubPalmaresRepo {
	return &stubPalmaresRepo{boards: map[uint]domain.Board{}}
}

func (r *stubPalmaresRepo) Create(_ context.Context, entry domain.Palmares) (domain.Palmares, error) {
	entry.ID = uint(len(r.entries) + len(r.createdEntries) + 1)
	r.createdEntries = append(r.createdEntries, entry)
	return entry, nil
}

func (r *stubPalmaresRepo) FindCurrent(_ context.Context, userID uint) (domain.Palmares, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID && r.entries[i].StatusJeu == domain.StatusCurrent {
			return r.entries[i], nil
		}
	}
	return domain.Palmares{}, repository.ErrPalmaresNotFound
}

func (r *stubPalmaresRepo) ExistsForUser(_ context.Context, userID uint) (bool, error) {
	for _, e := range r.entries {
		if e.UserID == userID {
			return true, nil
		}
	}
	return len(r.createdEntries) > 0, nil
}

func (r *stubPalmaresRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Palmares, error) {
	var out []domain.Palmares
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubPalmaresRepo) FindAll(_ context.Context) ([]domain.Palmares, error) {
	return r.entries, nil
}

func (r *stubPalmaresRepo) Advance(_ context.Context, currentID uint, score int, statusStage string, next *domain.Palmares) (domain.Palmares, error) {
	if r.advanceErr != nil {
		return domain.Palmares{}, r.advanceErr
	}
	r.advancedID = currentID
	r.advancedScore = score
	r.advancedStage = statusStage
	r.advancedNext = next
	if next == nil {
		return domain.Palmares{}, nil
	}
	created := *next
	created.ID = 999
	return created, nil
}

func (r *stubPalmaresRepo) CreateBoard(_ context.Context, board domain.Board) (domain.Board, error) {
	board.ID = uint(len(r.createdBoards) + 1)
	r.createdBoards = append(r.createdBoards, board)
	r.boards[board.UserID] = board
	return board, nil
}

func (r *stubPalmaresRepo) FindBoardByUserID(_ context.Context, userID uint) (domain.Board, error) {
	board, ok := r.boards[userID]
	if !ok {
		return domain.Board{}, repository.ErrBoardNotFound
	}
	return board, nil
}

type stubCatalogRepo struct {
	stages   []domain.Stage
	sections []domain.Section
	jeux     []domain.Jeu
}

func (r *stubCatalogRepo) FindFirstStage(_ context.Context, langue string) (domain.Stage, error) {
	for _, s := range r.stages {
		if s.Langue == langue {
			return s, nil
		}
	}
	return domain.Stage{}, repository.ErrStageNotFound
}

func (r *stubCatalogRepo) FindFirstSection(_ context.Context, langue string) (domain.Section, error) {
	for _, s := range r.sections {
		if s.Langue == langue {
			return s, nil
		}
	}
	return domain.Section{}, repository.ErrSectionNotFound
}

func (r *stubCatalogRepo) FindFirstJeu(_ context.Context, langue string, stageID uint, _ *uint) (domain.Jeu, error) {
	for _, j := range r.jeux {
		if j.Langue == langue && j.StageID == stageID {
			return j, nil
		}
	}
	return domain.Jeu{}, repository.ErrJeuNotFound
}

func (r *stubCatalogRepo) FindJeuByID(_ context.Context, id uint) (domain.Jeu, error) {
	for _, j := range r.jeux {
		if j.ID == id {
			return j, nil
		}
	}
	return domain.Jeu{}, repository.ErrJeuNotFound
}

func (r *stubCatalogRepo) FindJeuByNumOrder(_ context.Context, langue string, numOrder int) (domain.Jeu, error) {
	for _, j := range r.jeux {
		if j.Langue == langue && j.NumOrder == numOrder {
			return j, nil
		}
	}
	return domain.Jeu{}, repository.ErrJeuNotFound
}

func uintPtr(v uint) *uint { return &v }

func currentEntry(userID uint) domain.Palmares {
	return domain.Palmares{
		ID:              10,
		UserID:          userID,
		StageID:         uintPtr(1),
		SectionID:       uintPtr(1),
		JeuID:           uintPtr(3),
		StatusStage:     domain.StatusCurrent,
		StageNumOrder:   1,
		StageLength:     3,
		StatusSection:   domain.StatusCurrent,
		SectionNumOrder: 1,
		StatusJeu:       domain.StatusCurrent,
		Niveau:          "FACILE",
		Langue:          domain.LangueFR,
		NumOrder:        3,
	}
}

func TestAdvance_BelowThresholdDoesNotAdvance(t *testing.T) {
	repo := newStubPalmaresRepo()
	repo.entries = []domain.Palmares{currentEntry(1)}
	svc := service.NewProgressService(repo, &stubCatalogRepo{})

	result, err := svc.Advance(context.Background(), 1, 80)

	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.False(t, result.Finished)
	assert.Equal(t, 80, result.Score)
	assert.Zero(t, repo.advancedID, "guarded update must not run below the threshold")
}

func TestAdvance_OpensNextJeu(t *testing.T) {
	repo := newStubPalmaresRepo()
	repo.entries = []domain.Palmares{currentEntry(1)}
	catalog := &stubCatalogRepo{
		jeux: []domain.Jeu{
			{
				ID:        4,
				Langue:    domain.LangueFR,
				Niveau:    "FACILE",
				NumOrder:  4,
				StageID:   1,
				SectionID: uintPtr(1),
				Stage:     &domain.Stage{ID: 1, NumOrder: 1},
				Section:   &domain.Section{ID: 1, NumOrder: 1},
			},
		},
	}
	svc := service.NewProgressService(repo, catalog)

	result, err := svc.Advance(context.Background(), 1, 90)

	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.False(t, result.Finished)
	assert.False(t, result.IsMilestone)
	require.NotNil(t, result.NextEntry)
	assert.Equal(t, 4, result.NextEntry.NumOrder)
	assert.Equal(t, domain.StatusCurrent, result.NextEntry.StatusJeu)
	assert.Equal(t, 0, result.NextEntry.Score)
	assert.Equal(t, 4, result.NextEntry.StageLength, "stage length keeps counting inside the same stage")

	assert.Equal(t, uint(10), repo.advancedID)
	assert.Equal(t, 90, repo.advancedScore)
	assert.Equal(t, domain.StatusCurrent, repo.advancedStage, "stage stays CURRENT without a rollover")
}

func TestAdvance_StageRollover(t *testing.T) {
	repo := newStubPalmaresRepo()
	repo.entries = []domain.Palmares{currentEntry(1)}
	catalog := &stubCatalogRepo{
		jeux: []domain.Jeu{
			{
				ID:        4,
				Langue:    domain.LangueFR,
				Niveau:    "MOYEN",
				NumOrder:  4,
				StageID:   2,
				SectionID: uintPtr(2),
				Stage:     &domain.Stage{ID: 2, NumOrder: 2},
				Section:   &domain.Section{ID: 2, NumOrder: 2},
			},
		},
	}
	svc := service.NewProgressService(repo, catalog)

	result, err := svc.Advance(context.Background(), 1, 95)

	require.NoError(t, err)
	require.NotNil(t, result.NextEntry)
	assert.Equal(t, domain.StatusValidated, repo.advancedStage, "finished stage is validated on rollover")
	assert.Equal(t, 1, result.NextEntry.StageLength, "stage length resets on rollover")
	assert.Equal(t, 2, result.NextEntry.StageNumOrder)
	assert.Equal(t, 2, result.NextEntry.SectionNumOrder)
}

func TestAdvance_TerminalWhenCatalogExhausted(t *testing.T) {
	repo := newStubPalmaresRepo()
	repo.entries = []domain.Palmares{currentEntry(1)}
	svc := service.NewProgressService(repo, &stubCatalogRepo{})

	result, err := svc.Advance(context.Background(), 1, 100)

	require.NoError(t, err)
	assert.True(t, result.Advanced)
	assert.True(t, result.Finished)
	assert.Nil(t, result.NextEntry)
	assert.Nil(t, repo.advancedNext)
	assert.Equal(t, domain.StatusValidated, repo.advancedStage)
}

func TestAdvance_MilestoneFlag(t *testing.T) {
	entry := currentEntry(1)
	entry.NumOrder = 4
	repo := newStubPalmaresRepo()
	repo.entries = []domain.Palmares{entry}
	catalog := &stubCatalogRepo{
		jeux: []domain.Jeu{
			{
				ID:       5,
				Langue:   domain.LangueFR,
				Niveau:   "FACILE",
				NumOrder: 5,
				StageID:  1,
				Stage:    &domain.Stage{ID: 1, NumOrder: 1},
			},
		},
	}
	svc := service.NewProgressService(repo, catalog)

	result, err := svc.Advance(context.Background(), 1, 85)

	require.NoError(t, err)
	assert.True(t, result.IsMilestone)
}

func TestAdvance_ConflictPropagates(t *testing.T) {
	repo := newStubPalmaresRepo()
	repo.entries = []domain.Palmares{currentEntry(1)}
	repo.advanceErr = repository.ErrProgressConflict
	catalog := &stubCatalogRepo{
		jeux: []domain.Jeu{
			{ID: 4, Langue: domain.LangueFR, NumOrder: 4, StageID: 1, Stage: &domain.Stage{ID: 1, NumOrder: 1}},
		},
	}
	svc := service.NewProgressService(repo, catalog)

	_, err := svc.Advance(context.Background(), 1, 90)

	assert.ErrorIs(t, err, service.ErrProgressConflict)
}

func TestAdvance_NoCurrentEntry(t *testing.T) {
	svc := service.NewProgressService(newStubPalmaresRepo(), &stubCatalogRepo{})

	_, err := svc.Advance(context.Background(), 1, 90)

	assert.ErrorIs(t, err, service.ErrPalmaresNotFound)
}

func TestSubmitScore(t *testing.T) {
	catalog := &stubCatalogRepo{
		jeux: []domain.Jeu{
			{
				ID:     7,
				Langue: domain.LangueFR,
				Questions: []domain.Question{
					{
						ID: 1,
						Reponses: []domain.Reponse{
							{ID: 11, IsCorrect: true, QuestionID: 1},
							{ID: 12, QuestionID: 1},
						},
					},
					{
						ID: 2,
						Reponses: []domain.Reponse{
							{ID: 21, QuestionID: 2},
							{ID: 22, IsCorrect: true, QuestionID: 2},
						},
					},
					{
						// No correct reponse: never awards a point.
						ID: 3,
						Reponses: []domain.Reponse{
							{ID: 31, QuestionID: 3},
							{ID: 32, QuestionID: 3},
						},
					},
					{
						ID: 4,
						Reponses: []domain.Reponse{
							{ID: 41, IsCorrect: true, QuestionID: 4},
						},
					},
				},
			},
		},
	}
	svc := service.NewProgressService(newStubPalmaresRepo(), catalog)

	result, err := svc.SubmitScore(context.Background(), 7, map[uint]uint{
		1: 11, // correct
		2: 21, // wrong
		3: 31, // no correct answer exists
		4: 41, // correct
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 50, result.Score)
}

func TestSubmitScore_ForeignReponseIgnored(t *testing.T) {
	catalog := &stubCatalogRepo{
		jeux: []domain.Jeu{
			{
				ID:     7,
				Langue: domain.LangueFR,
				Questions: []domain.Question{
					{
						ID: 1,
						Reponses: []domain.Reponse{
							{ID: 11, IsCorrect: true, QuestionID: 1},
						},
					},
				},
			},
		},
	}
	svc := service.NewProgressService(newStubPalmaresRepo(), catalog)

	// 99 is a correct reponse of some other question; it must not count here.
	result, err := svc.SubmitScore(context.Background(), 7, map[uint]uint{1: 99})

	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Equal(t, 0, result.Score)
}

func TestSubmitScore_UnknownJeu(t *testing.T) {
	svc := service.NewProgressService(newStubPalmaresRepo(), &stubCatalogRepo{})

	_, err := svc.SubmitScore(context.Background(), 404, nil)

	assert.ErrorIs(t, err, service.ErrJeuNotFound)
}

func TestStart_SeedsEntryAndBoard(t *testing.T) {
	repo := newStubPalmaresRepo()
	catalog := &stubCatalogRepo{
		stages:   []domain.Stage{{ID: 1, Langue: domain.LangueFR, NumOrder: 1}},
		sections: []domain.Section{{ID: 1, Langue: domain.LangueFR, NumOrder: 1}},
		jeux: []domain.Jeu{
			{ID: 1, Langue: domain.LangueFR, Niveau: "FACILE", NumOrder: 1, StageID: 1, SectionID: uintPtr(1)},
		},
	}
	svc := service.NewProgressService(repo, catalog)
	user := domain.User{ID: 1, Role: domain.RoleJoueur, Langue: domain.LangueFR}

	err := svc.Start(context.Background(), user)

	require.NoError(t, err)
	require.Len(t, repo.createdEntries, 1)
	entry := repo.createdEntries[0]
	assert.Equal(t, domain.StatusCurrent, entry.StatusJeu)
	assert.Equal(t, 1, entry.NumOrder)
	assert.Equal(t, 1, entry.StageLength)
	assert.Equal(t, domain.LangueFR, entry.Langue)

	require.Len(t, repo.createdBoards, 1)
	cells := repo.createdBoards[0].Cells
	require.Len(t, cells, domain.BoardSize)
	sorted := append([]int(nil), cells...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i+1, v, "cells must be a permutation of 1..25")
	}
}

func TestStart_Idempotent(t *testing.T) {
	repo := newStubPalmaresRepo()
	catalog := &stubCatalogRepo{
		stages: []domain.Stage{{ID: 1, Langue: domain.LangueFR, NumOrder: 1}},
		jeux:   []domain.Jeu{{ID: 1, Langue: domain.LangueFR, NumOrder: 1, StageID: 1}},
	}
	svc := service.NewProgressService(repo, catalog)
	user := domain.User{ID: 1, Role: domain.RoleJoueur, Langue: domain.LangueFR}

	require.NoError(t, svc.Start(context.Background(), user))
	require.NoError(t, svc.Start(context.Background(), user))

	assert.Len(t, repo.createdEntries, 1, "second start must not seed again")
	assert.Len(t, repo.createdBoards, 1)
}

func TestBoard_ReportsCurrentAndValidated(t *testing.T) {
	repo := newStubPalmaresRepo()
	repo.boards[1] = domain.Board{UserID: 1, Cells: []int{3, 1, 2}}
	repo.entries = []domain.Palmares{
		{UserID: 1, NumOrder: 1, StatusJeu: domain.StatusValidated},
		{UserID: 1, NumOrder: 2, StatusJeu: domain.StatusValidated},
		{UserID: 1, NumOrder: 3, StatusJeu: domain.StatusCurrent},
	}
	svc := service.NewProgressService(repo, &stubCatalogRepo{})

	view, err := svc.Board(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, view.Cells)
	assert.Equal(t, 3, view.Current)
	assert.ElementsMatch(t, []int{1, 2}, view.Validated)
}
