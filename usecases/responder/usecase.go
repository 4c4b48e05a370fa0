package responder

import (
	"context"
	"fmt"
	"log"

	"uptimebot/clients"
	"uptimebot/core"
	"uptimebot/models"
	"uptimebot/utils"
)

// Conversation is the reply capability of the chat channel a command
// arrived in. Each platform frontend provides its own implementation.
type Conversation interface {
	ReplyText(ctx context.Context, text string) error
	ReplyEmbed(ctx context.Context, embed models.Embed) error
}

type commandHandler func(ctx context.Context, commandID string) (models.Embed, error)

// ResponderUseCase turns recognized chat commands into uptime summaries
type ResponderUseCase struct {
	uptimeClient clients.UptimeClient
	handlers     map[string]commandHandler
}

// NewResponderUseCase creates a new instance of ResponderUseCase
func NewResponderUseCase(uptimeClient clients.UptimeClient) *ResponderUseCase {
	u := &ResponderUseCase{
		uptimeClient: uptimeClient,
	}
	u.handlers = map[string]commandHandler{
		CommandStatus:     u.buildStatusEmbed,
		CommandIncidents:  u.buildIncidentsEmbed,
		CommandHeartbeats: u.buildHeartbeatsEmbed,
	}
	return u
}

// ProcessMessageEvent inspects an inbound message and, if it carries a
// recognized command, replies with exactly one message: the rendered
// summary embed, or the fixed apology text when the fetch fails. Messages
// from bots and unrecognized text are silently ignored. A fetch failure
// never propagates; only a failure to deliver the reply itself does.
func (u *ResponderUseCase) ProcessMessageEvent(
	ctx context.Context,
	event models.MessageEvent,
	conversation Conversation,
) error {
	if event.AuthorIsBot {
		return nil
	}

	parsed := utils.ParseCommand(event.Text)
	if !parsed.IsCommand {
		return nil
	}

	handler, ok := u.handlers[parsed.Keyword]
	if !ok {
		log.Printf("🔍 Unrecognized command %s from user %s - ignoring", parsed.Keyword, event.UserID)
		return nil
	}

	commandID := core.NewID("cmd")
	log.Printf("📋 Processing %s command %s from user %s in channel %s",
		parsed.Keyword, commandID, event.UserID, event.ChannelID)

	embed, err := handler(ctx, commandID)
	if err != nil {
		log.Printf("❌ Command %s failed: %v", commandID, err)
		if replyErr := conversation.ReplyText(ctx, apologyMessage); replyErr != nil {
			return fmt.Errorf("failed to send apology reply: %w", replyErr)
		}
		return nil
	}

	if err := conversation.ReplyEmbed(ctx, embed); err != nil {
		return fmt.Errorf("failed to send embed reply: %w", err)
	}

	log.Printf("✅ Command %s replied with %d fields", commandID, len(embed.Fields))
	return nil
}
