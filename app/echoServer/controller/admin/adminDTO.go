package admin

type AddBookReq struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	Copies      int    `json:"copies" validate:"required,gt=0"`
	Category    string `json:"category" validate:"required"`
	Img         string `json:"img"`
}

type AnswerReq struct {
	Response string `json:"response" validate:"required"`
}
