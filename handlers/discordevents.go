package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"uptimebot/models"
	"uptimebot/usecases/responder"
)

type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	responderUseCase *responder.ResponderUseCase
}

func NewDiscordEventsHandler(
	botToken string,
	responderUseCase *responder.ResponderUseCase,
) (*DiscordEventsHandler, error) {
	// Create a new Discord session using the provided bot token
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		responderUseCase: responderUseCase,
	}

	session.AddHandler(handler.handleMessageCreatedEvent)

	// Message content intent is required to read command text
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return handler, nil
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	// Open a websocket connection to Discord and begin listening
	err := h.discordSDKClient.Open()
	if err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	if m.Author.Bot {
		// Never respond to other bots (or to our own replies)
		return
	}

	log.Printf("📨 Discord message received from %s in channel %s", m.Author.Username, m.ChannelID)

	event := models.MessageEvent{
		ChannelID:   m.ChannelID,
		UserID:      m.Author.ID,
		Text:        m.Content,
		AuthorIsBot: m.Author.Bot,
	}
	conversation := &discordConversation{session: s, channelID: m.ChannelID}

	if err := h.responderUseCase.ProcessMessageEvent(context.Background(), event, conversation); err != nil {
		log.Printf("❌ Failed to process Discord message: %v", err)
	}
}

// discordConversation implements responder.Conversation for a single
// Discord channel
type discordConversation struct {
	session   *discordgo.Session
	channelID string
}

func (c *discordConversation) ReplyText(ctx context.Context, text string) error {
	_, err := c.session.ChannelMessageSend(c.channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send Discord message: %w", err)
	}
	return nil
}

func (c *discordConversation) ReplyEmbed(ctx context.Context, embed models.Embed) error {
	_, err := c.session.ChannelMessageSendEmbed(c.channelID, mapToDiscordEmbed(embed), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send Discord embed: %w", err)
	}
	return nil
}

// mapToDiscordEmbed maps our platform-neutral embed to the Discord SDK format
func mapToDiscordEmbed(embed models.Embed) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, len(embed.Fields))
	for i, field := range embed.Fields {
		fields[i] = &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: false,
		}
	}

	return &discordgo.MessageEmbed{
		Title:       embed.Title,
		Description: embed.Description,
		Color:       embed.Color,
		Timestamp:   embed.Timestamp,
		Fields:      fields,
	}
}
