package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/qbmille/trivia-api/internal/domain"
)

func langueRule() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.In(domain.LangueFR, domain.LangueEN, domain.LangueES, domain.LanguePT, domain.LangueDE),
	}
}

type CreateStageRequest struct {
	Title        string   `json:"title"`
	Niveau       string   `json:"niveau"`
	Image        string   `json:"image,omitempty"`
	NumOrder     int      `json:"num_order"`
	Langue       string   `json:"langue"`
	StatusStage  string   `json:"status_stage,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

func (req *CreateStageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Niveau, validation.Required),
		validation.Field(&req.NumOrder, validation.Required, validation.Min(1)),
		validation.Field(&req.Langue, langueRule()...),
		validation.Field(&req.StatusStage,
			validation.In(domain.StatusNew, domain.StatusCurrent, domain.StatusValidated)),
	)
}

type UpdateStageRequest struct {
	CreateStageRequest
}

type CreateSectionRequest struct {
	Title         string `json:"title"`
	Niveau        string `json:"niveau"`
	NumOrder      int    `json:"num_order"`
	Langue        string `json:"langue"`
	StatusSection string `json:"status_section,omitempty"`
}

func (req *CreateSectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Niveau, validation.Required),
		validation.Field(&req.NumOrder, validation.Required, validation.Min(1)),
		validation.Field(&req.Langue, langueRule()...),
		validation.Field(&req.StatusSection,
			validation.In(domain.StatusNew, domain.StatusCurrent, domain.StatusValidated)),
	)
}

type UpdateSectionRequest struct {
	CreateSectionRequest
}

type CreateJeuRequest struct {
	Langue    string `json:"langue"`
	Image     string `json:"image,omitempty"`
	Niveau    string `json:"niveau"`
	NumOrder  int    `json:"num_order"`
	StatusJeu string `json:"status_jeu,omitempty"`
	StageID   uint   `json:"stage_id"`
	SectionID *uint  `json:"section_id,omitempty"`
}

func (req *CreateJeuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Langue, langueRule()...),
		validation.Field(&req.Niveau, validation.Required),
		validation.Field(&req.NumOrder, validation.Required, validation.Min(1)),
		validation.Field(&req.StatusJeu,
			validation.In(domain.StatusNew, domain.StatusCurrent, domain.StatusValidated)),
		validation.Field(&req.StageID, validation.Required),
	)
}

type UpdateJeuRequest struct {
	CreateJeuRequest
}

type CreateQuestionRequest struct {
	Intitule string `json:"intitule"`
	Langue   string `json:"langue"`
	OrderNum int    `json:"order_num"`
	JeuID    uint   `json:"jeu_id"`
}

func (req *CreateQuestionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Intitule, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.Langue, langueRule()...),
		validation.Field(&req.OrderNum, validation.Required, validation.Min(1)),
		validation.Field(&req.JeuID, validation.Required),
	)
}

type UpdateQuestionRequest struct {
	CreateQuestionRequest
}

type CreateReponseRequest struct {
	Intitule   string `json:"intitule"`
	Langue     string `json:"langue"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID uint   `json:"question_id"`
}

func (req *CreateReponseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Intitule, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.Langue, langueRule()...),
		validation.Field(&req.QuestionID, validation.Required),
	)
}

type UpdateReponseRequest struct {
	CreateReponseRequest
}
