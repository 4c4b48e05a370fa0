package models

// EmbedField is a single name/value block inside an embed. Fields are
// always rendered non-inline, in the order they were appended.
type EmbedField struct {
	Name  string
	Value string
}

// Embed is a platform-neutral structured reply. Each chat frontend maps
// it to its native format (Discord embed, Slack attachment).
type Embed struct {
	Title       string
	Description string
	Color       int
	Timestamp   string
	Fields      []EmbedField
}
