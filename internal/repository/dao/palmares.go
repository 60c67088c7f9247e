package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPalmaresNotFound = errors.New("palmares not found")
	ErrBoardNotFound    = errors.New("board index not found")
	// ErrProgressConflict means another request already validated the
	// CURRENT entry (two tabs finishing the same jeu).
	ErrProgressConflict = errors.New("current palmares already validated")
)

type Palmares struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`

	StageID   *uint `gorm:"index"`
	Stage     *Stage
	SectionID *uint `gorm:"index"`
	Section   *Section
	JeuID     *uint `gorm:"index"`
	Jeu       *Jeu

	StatusStage   string `gorm:"not null;default:NEW"`
	StageNumOrder int    `gorm:"not null;default:0"`
	StageLength   int    `gorm:"not null;default:1"`

	StatusSection   string `gorm:"not null;default:NEW"`
	SectionNumOrder int    `gorm:"not null;default:0"`

	StatusJeu string `gorm:"not null;default:NEW;index"`
	Niveau    string
	Langue    string `gorm:"not null;default:FR"`
	NumOrder  int    `gorm:"not null;default:0"`

	JeuValide  bool `gorm:"not null;default:false"`
	Score      int  `gorm:"not null;default:0"`
	IsFinished bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Palmares) TableName() string {
	return "palmares"
}

// BoardIndex maps the 25 board cells to jeu num_orders, one row per user.
type BoardIndex struct {
	ID     uint  `gorm:"primaryKey"`
	UserID uint  `gorm:"not null;uniqueIndex"`
	Cells  []int `gorm:"not null;serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PalmaresDAO struct {
	db *gorm.DB
}

func NewPalmaresDAO(db *gorm.DB) *PalmaresDAO {
	return &PalmaresDAO{
		db: db,
	}
}

func (d *PalmaresDAO) Insert(ctx context.Context, entry Palmares) (Palmares, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return Palmares{}, result.Error
	}

	return entry, nil
}

// FindCurrent returns the CURRENT entry for the user. Should storage ever
// hold more than one (historic races), the most recent wins.
func (d *PalmaresDAO) FindCurrent(ctx context.Context, userID uint) (Palmares, error) {
	var entry Palmares

	result := d.db.WithContext(ctx).
		Preload("Stage").
		Preload("Stage.Descriptions").
		Preload("Section").
		Preload("Jeu").
		Where("user_id = ? AND status_jeu = ?", userID, "CURRENT").
		Order("created_at DESC").
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Palmares{}, ErrPalmaresNotFound
		}

		return Palmares{}, result.Error
	}

	return entry, nil
}

func (d *PalmaresDAO) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Palmares{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *PalmaresDAO) FindByUserID(ctx context.Context, userID uint) ([]Palmares, error) {
	var entries []Palmares

	result := d.db.WithContext(ctx).
		Preload("Stage").
		Preload("Section").
		Preload("Jeu").
		Where("user_id = ?", userID).
		Order("num_order ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *PalmaresDAO) FindAll(ctx context.Context) ([]Palmares, error) {
	var entries []Palmares

	result := d.db.WithContext(ctx).
		Preload("Jeu").
		Order("user_id ASC, num_order ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Advance finalizes the CURRENT entry and, when next is non-nil, creates
// the successor — both inside one transaction so a crash can never leave
// the ledger without a CURRENT row. The finalizing UPDATE is guarded on
// status_jeu so a concurrent advance loses with ErrProgressConflict
// instead of producing a second CURRENT entry.
func (d *PalmaresDAO) Advance(ctx context.Context, currentID uint, score int, statusStage string, next *Palmares) (Palmares, error) {
	var created Palmares

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Palmares{}).
			Where("id = ? AND status_jeu = ?", currentID, "CURRENT").
			Updates(map[string]interface{}{
				"score":          score,
				"is_finished":    true,
				"jeu_valide":     true,
				"status_jeu":     "VALIDATED",
				"status_section": "VALIDATED",
				"status_stage":   statusStage,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProgressConflict
		}

		if next != nil {
			if err := tx.Create(next).Error; err != nil {
				return err
			}
			created = *next
		}

		return nil
	})
	if err != nil {
		return Palmares{}, err
	}

	return created, nil
}

// Board index

func (d *PalmaresDAO) InsertBoard(ctx context.Context, board BoardIndex) (BoardIndex, error) {
	result := d.db.WithContext(ctx).Create(&board)
	if result.Error != nil {
		return BoardIndex{}, result.Error
	}

	return board, nil
}

func (d *PalmaresDAO) FindBoardByUserID(ctx context.Context, userID uint) (BoardIndex, error) {
	var board BoardIndex

	result := d.db.WithContext(ctx).First(&board, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BoardIndex{}, ErrBoardNotFound
		}

		return BoardIndex{}, result.Error
	}

	return board, nil
}
