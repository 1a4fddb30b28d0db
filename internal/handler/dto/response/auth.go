package response

type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}
