package domain

import "time"

// Lifecycle status shared by catalog rows and palmares rows.
const (
	StatusNew       = "NEW"
	StatusCurrent   = "CURRENT"
	StatusValidated = "VALIDATED"
)

type Stage struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Niveau       string    `json:"niveau"`
	Image        string    `json:"image"`
	NumOrder     int       `json:"num_order"`
	Langue       string    `json:"langue"`
	StatusStage  string    `json:"status_stage"`
	Descriptions []string  `json:"descriptions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Section struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Niveau        string    `json:"niveau"`
	NumOrder      int       `json:"num_order"`
	Langue        string    `json:"langue"`
	StatusSection string    `json:"status_section"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Jeu is the playable unit. NumOrder is unique per langue across the
// whole catalog; the advancer walks it linearly.
type Jeu struct {
	ID        uint       `json:"id"`
	Langue    string     `json:"langue"`
	Image     string     `json:"image,omitempty"`
	Niveau    string     `json:"niveau"`
	NumOrder  int        `json:"num_order"`
	StatusJeu string     `json:"status_jeu"`
	StageID   uint       `json:"stage_id"`
	SectionID *uint      `json:"section_id,omitempty"`
	Stage     *Stage     `json:"stage,omitempty"`
	Section   *Section   `json:"section,omitempty"`
	Questions []Question `json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Question struct {
	ID       uint      `json:"id"`
	Intitule string    `json:"intitule"`
	Langue   string    `json:"langue"`
	OrderNum int       `json:"order_num"`
	JeuID    uint      `json:"jeu_id"`
	Reponses []Reponse `json:"reponses,omitempty"`
}

type Reponse struct {
	ID         uint   `json:"id"`
	Intitule   string `json:"intitule"`
	Langue     string `json:"langue"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID uint   `json:"question_id"`
}
