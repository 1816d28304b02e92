package detail

type SubmitReviewReq struct {
	Rating      int    `json:"rating" validate:"required,gte=1,lte=5"`
	Description string `json:"reviewDescription"`
}
