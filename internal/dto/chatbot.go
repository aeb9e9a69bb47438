package dto

// ChatMessageRequest is the request body for the chatbot endpoint
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatMessageResponse carries the chatbot's scripted reply
type ChatMessageResponse struct {
	Reply       string `json:"reply"`
	MatchedRule string `json:"matchedRule,omitempty"`
}
