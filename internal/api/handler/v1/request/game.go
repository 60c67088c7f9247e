package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SubmitRequest carries the player's selections for one jeu:
// question ID -> selected reponse ID.
type SubmitRequest struct {
	Answers map[uint]uint `json:"answers"`
}

func (req *SubmitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Answers, validation.Required),
	)
}

type AdvanceRequest struct {
	Score int `json:"score"`
}

func (req *AdvanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Score, validation.Min(0), validation.Max(100)),
	)
}
