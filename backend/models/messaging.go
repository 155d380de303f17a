package models

type Message struct {
	ID             string       `json:"id"`
	ConversationID string       `json:"conversationId"`
	SenderID       string       `json:"senderId"`
	Content        string       `json:"content"`
	Timestamp      string       `json:"timestamp"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	Read           bool         `json:"read"`
}

type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Conversation struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
	Type         string   `json:"type"` // direct or group
	Name         string   `json:"name,omitempty"`
	LastMessage  *Message `json:"lastMessage,omitempty"`
	UnreadCount  int      `json:"unreadCount"`
	CreatedAt    string   `json:"createdAt"`
}
