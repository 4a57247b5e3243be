package messages

type createInput struct {
	Text      string `query:"text" doc:"Message text" example:"hello"`
	AuthorID  string `query:"author_id" doc:"Id of the authoring user" example:"1"`
	Timestamp string `query:"timestamp" doc:"RFC 3339 creation time" example:"2013-02-04T22:44:30.652Z"`
}

type createOutput struct {
	Body MessageCreateResponse
}

type MessageCreateResponse struct {
	ID int64 `json:"id"`
}

type listInput struct {
	Index  string `query:"index" doc:"Zero-based anchor index, defaults to the last message" example:"0"`
	Vector string `query:"vector" doc:"Signed window length, negative looks backward (default -10)" example:"10"`
}

type listOutput struct {
	Body MessageListResponse
}

type MessageListResponse struct {
	TotalLength int       `json:"total_length"`
	Array       []Message `json:"array"`
}

type Message struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	AuthorID  int64  `json:"author_id"`
	Timestamp string `json:"timestamp"`
}
