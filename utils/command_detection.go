package utils

import (
	"strings"
)

// CommandParseResult represents the result of parsing a message for a command keyword
type CommandParseResult struct {
	IsCommand bool
	Keyword   string
}

// ParseCommand extracts the command keyword from a message text.
// The keyword is the first whitespace-delimited token, lowercased.
// Messages whose first token does not start with "!" are not commands;
// in particular a leading platform mention makes the message not a command.
func ParseCommand(messageText string) CommandParseResult {
	tokens := strings.Fields(messageText)
	if len(tokens) == 0 {
		return CommandParseResult{}
	}

	keyword := strings.ToLower(tokens[0])
	if !strings.HasPrefix(keyword, "!") {
		return CommandParseResult{}
	}

	return CommandParseResult{
		IsCommand: true,
		Keyword:   keyword,
	}
}
