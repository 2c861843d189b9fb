package models

// ChatRequest is the body of a bot chat request.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned by the bot chat endpoint.
type ChatResponse struct {
	Status      string `json:"status"`
	Response    string `json:"response"`
	UserMessage string `json:"user_message"`
	Intent      string `json:"intent"`
}

// OrderCreatedResponse confirms a newly created order.
type OrderCreatedResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CartResponse lists the items in a cart session.
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}
