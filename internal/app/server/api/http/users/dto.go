package users

type createInput struct {
	Username     string `query:"username" doc:"Unique user name" example:"alice"`
	PasswordHash string `query:"password_hash" doc:"Client side password hash" example:"PASSWORDHASH"`
	Timestamp    string `query:"timestamp" doc:"RFC 3339 creation time" example:"2013-02-04T22:44:30.652Z"`
}

type createOutput struct {
	Body UserCreateResponse
}

type UserCreateResponse struct {
	ID int64 `json:"id"`
}

type listInput struct {
	Index  string `query:"index" doc:"Zero-based anchor index, defaults to the last element" example:"3"`
	Vector string `query:"vector" doc:"Signed window length, negative looks backward (default -10)" example:"-10"`
	Sort   string `query:"sort" doc:"Sort key: username or timestamp (default username)" example:"username"`
}

type listOutput struct {
	Body UserListResponse
}

type UserListResponse struct {
	TotalLength int    `json:"total_length"`
	Array       []User `json:"array"`
}

type findInput struct {
	Username string `path:"username" doc:"User name to look up"`
}

type findOutput struct {
	Body User
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Timestamp    string `json:"timestamp"`
}
