package handler

// ThoughtResponse is the HTTP response for GET /.
type ThoughtResponse struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}

// HeartbeatResponse is the HTTP response for GET /heartbeat.
type HeartbeatResponse struct {
	Status string `json:"status"`
}

// TokenResponse is the HTTP response for GET /token.
type TokenResponse struct {
	Token  string `json:"token"`
	Source string `json:"source"`
}

// DrawResponse is the HTTP response for GET /draw.
type DrawResponse struct {
	Index  int    `json:"index"`
	Source string `json:"source"`
}
