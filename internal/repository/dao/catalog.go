package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrStageNotFound     = errors.New("stage not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrJeuNotFound       = errors.New("jeu not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrReponseNotFound   = errors.New("reponse not found")
	ErrDuplicateNumOrder = errors.New("num_order already taken for this langue")
)

type Stage struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Niveau      string `gorm:"not null"`
	Image       string
	NumOrder    int    `gorm:"not null;uniqueIndex:uni_stages_langue_num_order"`
	Langue      string `gorm:"not null;default:FR;uniqueIndex:uni_stages_langue_num_order"`
	StatusStage string `gorm:"not null;default:NEW"`

	Descriptions []Paragraphe `gorm:"foreignKey:StageID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Paragraphe struct {
	ID       uint   `gorm:"primaryKey"`
	StageID  uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Texte    string `gorm:"not null"`
}

type Section struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"not null"`
	Niveau        string `gorm:"not null"`
	NumOrder      int    `gorm:"not null;uniqueIndex:uni_sections_langue_num_order"`
	Langue        string `gorm:"not null;default:FR;uniqueIndex:uni_sections_langue_num_order"`
	StatusSection string `gorm:"not null;default:NEW"`

	Jeux []Jeu `gorm:"foreignKey:SectionID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Jeu.NumOrder is unique per langue across the whole catalog; the
// constraint is what makes the advancer's n+1 lookup unambiguous.
type Jeu struct {
	ID        uint   `gorm:"primaryKey"`
	Langue    string `gorm:"not null;default:FR;uniqueIndex:uni_jeux_langue_num_order"`
	Image     string
	Niveau    string `gorm:"not null"`
	NumOrder  int    `gorm:"not null;uniqueIndex:uni_jeux_langue_num_order"`
	StatusJeu string `gorm:"not null;default:NEW"`

	StageID   uint `gorm:"not null;index"`
	Stage     Stage
	SectionID *uint `gorm:"index"`
	Section   *Section

	Questions []Question `gorm:"foreignKey:JeuID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Question struct {
	ID       uint   `gorm:"primaryKey"`
	Intitule string `gorm:"not null"`
	Langue   string `gorm:"not null;default:FR"`
	OrderNum int    `gorm:"not null"`
	JeuID    uint   `gorm:"not null;index"`

	Reponses []Reponse `gorm:"foreignKey:QuestionID"`
}

type Reponse struct {
	ID         uint   `gorm:"primaryKey"`
	Intitule   string `gorm:"not null"`
	Langue     string `gorm:"not null;default:FR"`
	IsCorrect  bool   `gorm:"not null;default:false"`
	QuestionID uint   `gorm:"not null;index"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func mapNumOrderViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, "langue_num_order") {
		return ErrDuplicateNumOrder
	}

	return err
}

// Stages

func (d *CatalogDAO) InsertStage(ctx context.Context, stage Stage) (Stage, error) {
	result := d.db.WithContext(ctx).Create(&stage)
	if result.Error != nil {
		return Stage{}, mapNumOrderViolation(result.Error)
	}

	return stage, nil
}

func (d *CatalogDAO) FindStageByID(ctx context.Context, id uint) (Stage, error) {
	var stage Stage

	result := d.db.WithContext(ctx).
		Preload("Descriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&stage, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stage{}, ErrStageNotFound
		}

		return Stage{}, result.Error
	}

	return stage, nil
}

func (d *CatalogDAO) FindAllStages(ctx context.Context, langue string) ([]Stage, error) {
	var stages []Stage

	query := d.db.WithContext(ctx).
		Preload("Descriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("num_order ASC")
	if langue != "" {
		query = query.Where("langue = ?", langue)
	}

	if err := query.Find(&stages).Error; err != nil {
		return nil, err
	}

	return stages, nil
}

// FindFirstStage picks the CURRENT stage, falling back to the lowest
// num_order when no stage is flagged.
func (d *CatalogDAO) FindFirstStage(ctx context.Context, langue string) (Stage, error) {
	var stage Stage

	result := d.db.WithContext(ctx).
		Where("langue = ? AND status_stage = ?", langue, "CURRENT").
		Order("num_order ASC").
		First(&stage)
	if result.Error == nil {
		return stage, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Stage{}, result.Error
	}

	result = d.db.WithContext(ctx).
		Where("langue = ?", langue).
		Order("num_order ASC").
		First(&stage)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stage{}, ErrStageNotFound
		}

		return Stage{}, result.Error
	}

	return stage, nil
}

// UpdateStage replaces the stage fields and its description paragraphs
// in one transaction.
func (d *CatalogDAO) UpdateStage(ctx context.Context, stage Stage) (Stage, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Stage{}).
			Where("id = ?", stage.ID).
			Updates(map[string]interface{}{
				"title":        stage.Title,
				"niveau":       stage.Niveau,
				"image":        stage.Image,
				"num_order":    stage.NumOrder,
				"langue":       stage.Langue,
				"status_stage": stage.StatusStage,
			})
		if result.Error != nil {
			return mapNumOrderViolation(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrStageNotFound
		}

		if err := tx.Where("stage_id = ?", stage.ID).Delete(&Paragraphe{}).Error; err != nil {
			return err
		}
		for i := range stage.Descriptions {
			stage.Descriptions[i].ID = 0
			stage.Descriptions[i].StageID = stage.ID
			stage.Descriptions[i].Position = i
		}
		if len(stage.Descriptions) > 0 {
			if err := tx.Create(&stage.Descriptions).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Stage{}, err
	}

	return d.FindStageByID(ctx, stage.ID)
}

// DeleteStage removes the stage and every descendant: its jeux, their
// questions and reponses, palmares rows pointing at those jeux, and the
// stage's paragraphs. One transaction, per the cascading-delete contract.
func (d *CatalogDAO) DeleteStage(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jeuIDs []uint
		if err := tx.Model(&Jeu{}).Where("stage_id = ?", id).Pluck("id", &jeuIDs).Error; err != nil {
			return err
		}

		if len(jeuIDs) > 0 {
			if err := deleteJeuxDescendants(tx, jeuIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", jeuIDs).Delete(&Jeu{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("stage_id = ?", id).Delete(&Paragraphe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stage_id = ?", id).Delete(&Palmares{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Stage{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStageNotFound
		}

		return nil
	})
}

func deleteJeuxDescendants(tx *gorm.DB, jeuIDs []uint) error {
	var questionIDs []uint
	if err := tx.Model(&Question{}).Where("jeu_id IN ?", jeuIDs).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) > 0 {
		if err := tx.Where("question_id IN ?", questionIDs).Delete(&Reponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", questionIDs).Delete(&Question{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("jeu_id IN ?", jeuIDs).Delete(&Palmares{}).Error
}

// Sections

func (d *CatalogDAO) InsertSection(ctx context.Context, section Section) (Section, error) {
	result := d.db.WithContext(ctx).Create(&section)
	if result.Error != nil {
		return Section{}, mapNumOrderViolation(result.Error)
	}

	return section, nil
}

func (d *CatalogDAO) FindSectionByID(ctx context.Context, id uint) (Section, error) {
	var section Section

	result := d.db.WithContext(ctx).Preload("Jeux").First(&section, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Section{}, ErrSectionNotFound
		}

		return Section{}, result.Error
	}

	return section, nil
}

func (d *CatalogDAO) FindAllSections(ctx context.Context, langue string) ([]Section, error) {
	var sections []Section

	query := d.db.WithContext(ctx).Order("num_order ASC")
	if langue != "" {
		query = query.Where("langue = ?", langue)
	}

	if err := query.Find(&sections).Error; err != nil {
		return nil, err
	}

	return sections, nil
}

func (d *CatalogDAO) FindFirstSection(ctx context.Context, langue string) (Section, error) {
	var section Section

	result := d.db.WithContext(ctx).
		Where("langue = ? AND status_section = ?", langue, "CURRENT").
		Order("num_order ASC").
		First(&section)
	if result.Error == nil {
		return section, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Section{}, result.Error
	}

	result = d.db.WithContext(ctx).
		Where("langue = ?", langue).
		Order("num_order ASC").
		First(&section)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Section{}, ErrSectionNotFound
		}

		return Section{}, result.Error
	}

	return section, nil
}

func (d *CatalogDAO) UpdateSection(ctx context.Context, section Section) (Section, error) {
	result := d.db.WithContext(ctx).Model(&Section{}).
		Where("id = ?", section.ID).
		Updates(map[string]interface{}{
			"title":          section.Title,
			"niveau":         section.Niveau,
			"num_order":      section.NumOrder,
			"langue":         section.Langue,
			"status_section": section.StatusSection,
		})
	if result.Error != nil {
		return Section{}, mapNumOrderViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return Section{}, ErrSectionNotFound
	}

	return d.FindSectionByID(ctx, section.ID)
}

// DeleteSection detaches its jeux (they stay playable through their
// stage) and removes the section row.
func (d *CatalogDAO) DeleteSection(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Jeu{}).Where("section_id = ?", id).
			Update("section_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&Section{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSectionNotFound
		}

		return nil
	})
}

// Jeux

func (d *CatalogDAO) InsertJeu(ctx context.Context, jeu Jeu) (Jeu, error) {
	result := d.db.WithContext(ctx).Create(&jeu)
	if result.Error != nil {
		return Jeu{}, mapNumOrderViolation(result.Error)
	}

	return jeu, nil
}

func (d *CatalogDAO) FindJeuByID(ctx context.Context, id uint) (Jeu, error) {
	var jeu Jeu

	result := d.db.WithContext(ctx).
		Preload("Stage").
		Preload("Section").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions.Reponses").
		First(&jeu, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Jeu{}, ErrJeuNotFound
		}

		return Jeu{}, result.Error
	}

	return jeu, nil
}

func (d *CatalogDAO) FindAllJeux(ctx context.Context, langue string) ([]Jeu, error) {
	var jeux []Jeu

	query := d.db.WithContext(ctx).
		Preload("Stage").
		Preload("Section").
		Order("num_order ASC")
	if langue != "" {
		query = query.Where("langue = ?", langue)
	}

	if err := query.Find(&jeux).Error; err != nil {
		return nil, err
	}

	return jeux, nil
}

// FindJeuByNumOrder is the advancer's n+1 lookup.
func (d *CatalogDAO) FindJeuByNumOrder(ctx context.Context, langue string, numOrder int) (Jeu, error) {
	var jeu Jeu

	result := d.db.WithContext(ctx).
		Preload("Stage").
		Preload("Section").
		Where("langue = ? AND num_order = ?", langue, numOrder).
		First(&jeu)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Jeu{}, ErrJeuNotFound
		}

		return Jeu{}, result.Error
	}

	return jeu, nil
}

func (d *CatalogDAO) FindFirstJeu(ctx context.Context, langue string, stageID uint, sectionID *uint) (Jeu, error) {
	var jeu Jeu

	query := d.db.WithContext(ctx).
		Preload("Stage").
		Preload("Section").
		Where("langue = ? AND stage_id = ?", langue, stageID)
	if sectionID != nil {
		query = query.Where("section_id = ?", *sectionID)
	}

	result := query.Order("num_order ASC").First(&jeu)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Fall back to the stage alone when the section has no jeux.
			if sectionID != nil {
				return d.FindFirstJeu(ctx, langue, stageID, nil)
			}

			return Jeu{}, ErrJeuNotFound
		}

		return Jeu{}, result.Error
	}

	return jeu, nil
}

func (d *CatalogDAO) UpdateJeu(ctx context.Context, jeu Jeu) (Jeu, error) {
	result := d.db.WithContext(ctx).Model(&Jeu{}).
		Where("id = ?", jeu.ID).
		Updates(map[string]interface{}{
			"langue":     jeu.Langue,
			"image":      jeu.Image,
			"niveau":     jeu.Niveau,
			"num_order":  jeu.NumOrder,
			"status_jeu": jeu.StatusJeu,
			"stage_id":   jeu.StageID,
			"section_id": jeu.SectionID,
		})
	if result.Error != nil {
		return Jeu{}, mapNumOrderViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return Jeu{}, ErrJeuNotFound
	}

	return d.FindJeuByID(ctx, jeu.ID)
}

func (d *CatalogDAO) DeleteJeu(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteJeuxDescendants(tx, []uint{id}); err != nil {
			return err
		}

		result := tx.Delete(&Jeu{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJeuNotFound
		}

		return nil
	})
}

// Questions

func (d *CatalogDAO) InsertQuestion(ctx context.Context, question Question) (Question, error) {
	result := d.db.WithContext(ctx).Create(&question)
	if result.Error != nil {
		return Question{}, result.Error
	}

	return question, nil
}

func (d *CatalogDAO) FindQuestionByID(ctx context.Context, id uint) (Question, error) {
	var question Question

	result := d.db.WithContext(ctx).Preload("Reponses").First(&question, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Question{}, ErrQuestionNotFound
		}

		return Question{}, result.Error
	}

	return question, nil
}

func (d *CatalogDAO) FindQuestionsByJeuID(ctx context.Context, jeuID uint) ([]Question, error) {
	var questions []Question

	result := d.db.WithContext(ctx).
		Preload("Reponses").
		Where("jeu_id = ?", jeuID).
		Order("order_num ASC").
		Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}

	return questions, nil
}

func (d *CatalogDAO) UpdateQuestion(ctx context.Context, question Question) (Question, error) {
	result := d.db.WithContext(ctx).Model(&Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"intitule":  question.Intitule,
			"langue":    question.Langue,
			"order_num": question.OrderNum,
			"jeu_id":    question.JeuID,
		})
	if result.Error != nil {
		return Question{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Question{}, ErrQuestionNotFound
	}

	return d.FindQuestionByID(ctx, question.ID)
}

func (d *CatalogDAO) DeleteQuestion(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&Reponse{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrQuestionNotFound
		}

		return nil
	})
}

// Reponses

func (d *CatalogDAO) InsertReponse(ctx context.Context, reponse Reponse) (Reponse, error) {
	result := d.db.WithContext(ctx).Create(&reponse)
	if result.Error != nil {
		return Reponse{}, result.Error
	}

	return reponse, nil
}

func (d *CatalogDAO) UpdateReponse(ctx context.Context, reponse Reponse) (Reponse, error) {
	result := d.db.WithContext(ctx).Model(&Reponse{}).
		Where("id = ?", reponse.ID).
		Updates(map[string]interface{}{
			"intitule":   reponse.Intitule,
			"langue":     reponse.Langue,
			"is_correct": reponse.IsCorrect,
		})
	if result.Error != nil {
		return Reponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Reponse{}, ErrReponseNotFound
	}

	var updated Reponse
	if err := d.db.WithContext(ctx).First(&updated, reponse.ID).Error; err != nil {
		return Reponse{}, err
	}

	return updated, nil
}

func (d *CatalogDAO) DeleteReponse(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Reponse{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReponseNotFound
	}

	return nil
}
