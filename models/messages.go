package models

// MessageEvent is the minimal view of an inbound chat message the
// responder needs: the text, who sent it and where. The reply capability
// travels separately as a responder.Conversation.
type MessageEvent struct {
	ChannelID   string
	UserID      string
	Text        string
	AuthorIsBot bool
}
