package messages

type SubmitQuestionReq struct {
	Title    string `json:"title" validate:"required"`
	Question string `json:"question" validate:"required"`
}
