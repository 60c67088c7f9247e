package repository

import (
	"context"
	"fmt"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository/dao"
)

var (
	ErrStageNotFound     = dao.ErrStageNotFound
	ErrSectionNotFound   = dao.ErrSectionNotFound
	ErrJeuNotFound       = dao.ErrJeuNotFound
	ErrQuestionNotFound  = dao.ErrQuestionNotFound
	ErrReponseNotFound   = dao.ErrReponseNotFound
	ErrDuplicateNumOrder = dao.ErrDuplicateNumOrder
)

type CatalogDAO interface {
	InsertStage(ctx context.Context, stage dao.Stage) (dao.Stage, error)
	FindStageByID(ctx context.Context, id uint) (dao.Stage, error)
	FindAllStages(ctx context.Context, langue string) ([]dao.Stage, error)
	FindFirstStage(ctx context.Context, langue string) (dao.Stage, error)
	UpdateStage(ctx context.Context, stage dao.Stage) (dao.Stage, error)
	DeleteStage(ctx context.Context, id uint) error

	InsertSection(ctx context.Context, section dao.Section) (dao.Section, error)
	FindSectionByID(ctx context.Context, id uint) (dao.Section, error)
	FindAllSections(ctx context.Context, langue string) ([]dao.Section, error)
	FindFirstSection(ctx context.Context, langue string) (dao.Section, error)
	UpdateSection(ctx context.Context, section dao.Section) (dao.Section, error)
	DeleteSection(ctx context.Context, id uint) error

	InsertJeu(ctx context.Context, jeu dao.Jeu) (dao.Jeu, error)
	FindJeuByID(ctx context.Context, id uint) (dao.Jeu, error)
	FindAllJeux(ctx context.Context, langue string) ([]dao.Jeu, error)
	FindJeuByNumOrder(ctx context.Context, langue string, numOrder int) (dao.Jeu, error)
	FindFirstJeu(ctx context.Context, langue string, stageID uint, sectionID *uint) (dao.Jeu, error)
	UpdateJeu(ctx context.Context, jeu dao.Jeu) (dao.Jeu, error)
	DeleteJeu(ctx context.Context, id uint) error

	InsertQuestion(ctx context.Context, question dao.Question) (dao.Question, error)
	FindQuestionByID(ctx context.Context, id uint) (dao.Question, error)
	FindQuestionsByJeuID(ctx context.Context, jeuID uint) ([]dao.Question, error)
	UpdateQuestion(ctx context.Context, question dao.Question) (dao.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error

	InsertReponse(ctx context.Context, reponse dao.Reponse) (dao.Reponse, error)
	UpdateReponse(ctx context.Context, reponse dao.Reponse) (dao.Reponse, error)
	DeleteReponse(ctx context.Context, id uint) error
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

// Stages

func (r *CatalogRepository) CreateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error) {
	created, err := r.dao.InsertStage(ctx, stageDomainToDao(stage))
	if err != nil {
		return domain.Stage{}, fmt.Errorf("r.dao.InsertStage -> %w", err)
	}

	return stageDaoToDomain(created), nil
}

func (r *CatalogRepository) FindStageByID(ctx context.Context, id uint) (domain.Stage, error) {
	found, err := r.dao.FindStageByID(ctx, id)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("r.dao.FindStageByID -> %w", err)
	}

	return stageDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllStages(ctx context.Context, langue string) ([]domain.Stage, error) {
	found, err := r.dao.FindAllStages(ctx, langue)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllStages -> %w", err)
	}

	stages := make([]domain.Stage, len(found))
	for i, s := range found {
		stages[i] = stageDaoToDomain(s)
	}

	return stages, nil
}

func (r *CatalogRepository) FindFirstStage(ctx context.Context, langue string) (domain.Stage, error) {
	found, err := r.dao.FindFirstStage(ctx, langue)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("r.dao.FindFirstStage -> %w", err)
	}

	return stageDaoToDomain(found), nil
}

func (r *CatalogRepository) UpdateStage(ctx context.Context, stage domain.Stage) (domain.Stage, error) {
	updated, err := r.dao.UpdateStage(ctx, stageDomainToDao(stage))
	if err != nil {
		return domain.Stage{}, fmt.Errorf("r.dao.UpdateStage -> %w", err)
	}

	return stageDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteStage(ctx context.Context, id uint) error {
	if err := r.dao.DeleteStage(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteStage -> %w", err)
	}

	return nil
}

// Sections

func (r *CatalogRepository) CreateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	created, err := r.dao.InsertSection(ctx, sectionDomainToDao(section))
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.InsertSection -> %w", err)
	}

	return sectionDaoToDomain(created), nil
}

func (r *CatalogRepository) FindSectionByID(ctx context.Context, id uint) (domain.Section, error) {
	found, err := r.dao.FindSectionByID(ctx, id)
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.FindSectionByID -> %w", err)
	}

	return sectionDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllSections(ctx context.Context, langue string) ([]domain.Section, error) {
	found, err := r.dao.FindAllSections(ctx, langue)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllSections -> %w", err)
	}

	sections := make([]domain.Section, len(found))
	for i, s := range found {
		sections[i] = sectionDaoToDomain(s)
	}

	return sections, nil
}

func (r *CatalogRepository) FindFirstSection(ctx context.Context, langue string) (domain.Section, error) {
	found, err := r.dao.FindFirstSection(ctx, langue)
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.FindFirstSection -> %w", err)
	}

	return sectionDaoToDomain(found), nil
}

func (r *CatalogRepository) UpdateSection(ctx context.Context, section domain.Section) (domain.Section, error) {
	updated, err := r.dao.UpdateSection(ctx, sectionDomainToDao(section))
	if err != nil {
		return domain.Section{}, fmt.Errorf("r.dao.UpdateSection -> %w", err)
	}

	return sectionDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteSection(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSection(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSection -> %w", err)
	}

	return nil
}

// Jeux

func (r *CatalogRepository) CreateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error) {
	created, err := r.dao.InsertJeu(ctx, jeuDomainToDao(jeu))
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("r.dao.InsertJeu -> %w", err)
	}

	return jeuDaoToDomain(created), nil
}

func (r *CatalogRepository) FindJeuByID(ctx context.Context, id uint) (domain.Jeu, error) {
	found, err := r.dao.FindJeuByID(ctx, id)
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("r.dao.FindJeuByID -> %w", err)
	}

	return jeuDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllJeux(ctx context.Context, langue string) ([]domain.Jeu, error) {
	found, err := r.dao.FindAllJeux(ctx, langue)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllJeux -> %w", err)
	}

	jeux := make([]domain.Jeu, len(found))
	for i, j := range found {
		jeux[i] = jeuDaoToDomain(j)
	}

	return jeux, nil
}

func (r *CatalogRepository) FindJeuByNumOrder(ctx context.Context, langue string, numOrder int) (domain.Jeu, error) {
	found, err := r.dao.FindJeuByNumOrder(ctx, langue, numOrder)
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("r.dao.FindJeuByNumOrder -> %w", err)
	}

	return jeuDaoToDomain(found), nil
}

func (r *CatalogRepository) FindFirstJeu(ctx context.Context, langue string, stageID uint, sectionID *uint) (domain.Jeu, error) {
	found, err := r.dao.FindFirstJeu(ctx, langue, stageID, sectionID)
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("r.dao.FindFirstJeu -> %w", err)
	}

	return jeuDaoToDomain(found), nil
}

func (r *CatalogRepository) UpdateJeu(ctx context.Context, jeu domain.Jeu) (domain.Jeu, error) {
	updated, err := r.dao.UpdateJeu(ctx, jeuDomainToDao(jeu))
	if err != nil {
		return domain.Jeu{}, fmt.Errorf("r.dao.UpdateJeu -> %w", err)
	}

	return jeuDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteJeu(ctx context.Context, id uint) error {
	if err := r.dao.DeleteJeu(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteJeu -> %w", err)
	}

	return nil
}

// Questions

func (r *CatalogRepository) CreateQuestion(ctx context.Context, question domain.Question) (domain.Question, error) {
	created, err := r.dao.InsertQuestion(ctx, questionDomainToDao(question))
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.InsertQuestion -> %w", err)
	}

	return questionDaoToDomain(created), nil
}

func (r *CatalogRepository) FindQuestionByID(ctx context.Context, id uint) (domain.Question, error) {
	found, err := r.dao.FindQuestionByID(ctx, id)
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.FindQuestionByID -> %w", err)
	}

	return questionDaoToDomain(found), nil
}

func (r *CatalogRepository) FindQuestionsByJeuID(ctx context.Context, jeuID uint) ([]domain.Question, error) {
	found, err := r.dao.FindQuestionsByJeuID(ctx, jeuID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindQuestionsByJeuID -> %w", err)
	}

	questions := make([]domain.Question, len(found))
	for i, q := range found {
		questions[i] = questionDaoToDomain(q)
	}

	return questions, nil
}

func (r *CatalogRepository) UpdateQuestion(ctx context.Context, question domain.Question) (domain.Question, error) {
	updated, err := r.dao.UpdateQuestion(ctx, questionDomainToDao(question))
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.UpdateQuestion -> %w", err)
	}

	return questionDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteQuestion(ctx context.Context, id uint) error {
	if err := r.dao.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteQuestion -> %w", err)
	}

	return nil
}

// Reponses

func (r *CatalogRepository) CreateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error) {
	created, err := r.dao.InsertReponse(ctx, reponseDomainToDao(reponse))
	if err != nil {
		return domain.Reponse{}, fmt.Errorf("r.dao.InsertReponse -> %w", err)
	}

	return reponseDaoToDomain(created), nil
}

func (r *CatalogRepository) UpdateReponse(ctx context.Context, reponse domain.Reponse) (domain.Reponse, error) {
	updated, err := r.dao.UpdateReponse(ctx, reponseDomainToDao(reponse))
	if err != nil {
		return domain.Reponse{}, fmt.Errorf("r.dao.UpdateReponse -> %w", err)
	}

	return reponseDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteReponse(ctx context.Context, id uint) error {
	if err := r.dao.DeleteReponse(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteReponse -> %w", err)
	}

	return nil
}

// dao <-> domain mapping

func stageDomainToDao(s domain.Stage) dao.Stage {
	descriptions := make([]dao.Paragraphe, len(s.Descriptions))
	for i, texte := range s.Descriptions {
		descriptions[i] = dao.Paragraphe{
			StageID:  s.ID,
			Position: i,
			Texte:    texte,
		}
	}

	return dao.Stage{
		ID:           s.ID,
		Title:        s.Title,
		Niveau:       s.Niveau,
		Image:        s.Image,
		NumOrder:     s.NumOrder,
		Langue:       s.Langue,
		StatusStage:  s.StatusStage,
		Descriptions: descriptions,
	}
}

func stageDaoToDomain(s dao.Stage) domain.Stage {
	descriptions := make([]string, len(s.Descriptions))
	for i, p := range s.Descriptions {
		descriptions[i] = p.Texte
	}

	return domain.Stage{
		ID:           s.ID,
		Title:        s.Title,
		Niveau:       s.Niveau,
		Image:        s.Image,
		NumOrder:     s.NumOrder,
		Langue:       s.Langue,
		StatusStage:  s.StatusStage,
		Descriptions: descriptions,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func sectionDomainToDao(s domain.Section) dao.Section {
	return dao.Section{
		ID:            s.ID,
		Title:         s.Title,
		Niveau:        s.Niveau,
		NumOrder:      s.NumOrder,
		Langue:        s.Langue,
		StatusSection: s.StatusSection,
	}
}

func sectionDaoToDomain(s dao.Section) domain.Section {
	return domain.Section{
		ID:            s.ID,
		Title:         s.Title,
		Niveau:        s.Niveau,
		NumOrder:      s.NumOrder,
		Langue:        s.Langue,
		StatusSection: s.StatusSection,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func jeuDomainToDao(j domain.Jeu) dao.Jeu {
	return dao.Jeu{
		ID:        j.ID,
		Langue:    j.Langue,
		Image:     j.Image,
		Niveau:    j.Niveau,
		NumOrder:  j.NumOrder,
		StatusJeu: j.StatusJeu,
		StageID:   j.StageID,
		SectionID: j.SectionID,
	}
}

func jeuDaoToDomain(j dao.Jeu) domain.Jeu {
	jeu := domain.Jeu{
		ID:        j.ID,
		Langue:    j.Langue,
		Image:     j.Image,
		Niveau:    j.Niveau,
		NumOrder:  j.NumOrder,
		StatusJeu: j.StatusJeu,
		StageID:   j.StageID,
		SectionID: j.SectionID,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}

	if j.Stage.ID != 0 {
		stage := stageDaoToDomain(j.Stage)
		jeu.Stage = &stage
	}
	if j.Section != nil && j.Section.ID != 0 {
		section := sectionDaoToDomain(*j.Section)
		jeu.Section = &section
	}
	for _, q := range j.Questions {
		jeu.Questions = append(jeu.Questions, questionDaoToDomain(q))
	}

	return jeu
}

func questionDomainToDao(q domain.Question) dao.Question {
	question := dao.Question{
		ID:       q.ID,
		Intitule: q.Intitule,
		Langue:   q.Langue,
		OrderNum: q.OrderNum,
		JeuID:    q.JeuID,
	}
	for _, rep := range q.Reponses {
		question.Reponses = append(question.Reponses, reponseDomainToDao(rep))
	}

	return question
}

func questionDaoToDomain(q dao.Question) domain.Question {
	question := domain.Question{
		ID:       q.ID,
		Intitule: q.Intitule,
		Langue:   q.Langue,
		OrderNum: q.OrderNum,
		JeuID:    q.JeuID,
	}
	for _, rep := range q.Reponses {
		question.Reponses = append(question.Reponses, reponseDaoToDomain(rep))
	}

	return question
}

func reponseDomainToDao(r domain.Reponse) dao.Reponse {
	return dao.Reponse{
		ID:         r.ID,
		Intitule:   r.Intitule,
		Langue:     r.Langue,
		IsCorrect:  r.IsCorrect,
		QuestionID: r.QuestionID,
	}
}

func reponseDaoToDomain(r dao.Reponse) domain.Reponse {
	return domain.Reponse{
		ID:         r.ID,
		Intitule:   r.Intitule,
		Langue:     r.Langue,
		IsCorrect:  r.IsCorrect,
		QuestionID: r.QuestionID,
	}
}
