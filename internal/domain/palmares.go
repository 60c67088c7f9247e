package domain

import "time"

// BoardSize is the number of cells on the player board. Cell i holds the
// NumOrder of the jeu played from that cell.
const BoardSize = 25

// Milestones are the board positions that show a stage/section transition
// screen instead of going straight to the next jeu.
var Milestones = [...]int{1, 5, 10, 15, 20, 25}

func IsMilestone(numOrder int) bool {
	for _, m := range Milestones {
		if m == numOrder {
			return true
		}
	}
	return false
}

// Palmares is one entry of a player's progress ledger: one row per
// attempted jeu, never overwritten once validated. The row whose
// StatusJeu is CURRENT marks where the player stands.
type Palmares struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	StageID         *uint     `json:"stage_id,omitempty"`
	SectionID       *uint     `json:"section_id,omitempty"`
	JeuID           *uint     `json:"jeu_id,omitempty"`
	StatusStage     string    `json:"status_stage"`
	StageNumOrder   int       `json:"stage_num_order"`
	StageLength     int       `json:"stage_length"`
	StatusSection   string    `json:"status_section"`
	SectionNumOrder int       `json:"section_num_order"`
	StatusJeu       string    `json:"status_jeu"`
	Niveau          string    `json:"niveau"`
	Langue          string    `json:"langue"`
	NumOrder        int       `json:"num_order"`
	JeuValide       bool      `json:"jeu_valide"`
	Score           int       `json:"score"`
	IsFinished      bool      `json:"is_finished"`
	Stage           *Stage    `json:"stage,omitempty"`
	Section         *Section  `json:"section,omitempty"`
	Jeu             *Jeu      `json:"jeu,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Board is the per-player cell permutation created at onboarding.
type Board struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Cells     []int     `json:"cells"`
	CreatedAt time.Time `json:"created_at"`
}

// AdvanceResult reports the outcome of one advancement attempt.
type AdvanceResult struct {
	Advanced    bool      `json:"advanced"`
	Finished    bool      `json:"finished"`
	IsMilestone bool      `json:"is_milestone"`
	Score       int       `json:"score"`
	NextJeu     *Jeu      `json:"next_jeu,omitempty"`
	NextEntry   *Palmares `json:"next_entry,omitempty"`
}

// ScoreResult is the outcome of grading one submitted jeu.
type ScoreResult struct {
	JeuID          uint `json:"jeu_id"`
	TotalQuestions int  `json:"total_questions"`
	CorrectAnswers int  `json:"correct_answers"`
	Score          int  `json:"score"` // percent, 0-100
}
