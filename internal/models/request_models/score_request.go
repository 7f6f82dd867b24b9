package request_models

type MBTIScoreRequest struct {
	// 70 choices of "A" or "B", in question order.
	Choices []string `json:"choices"`
}

type IQScoreRequest struct {
	// 60 zero-based option indices; null for skipped questions.
	Answers []*int `json:"answers"`
	Age     int    `json:"age"`
}

type CareerScoreRequest struct {
	// 10 Likert values, 1-5, in question order.
	Answers []int `json:"answers"`
}
