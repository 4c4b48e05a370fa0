package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/slack-go/slack"

	"uptimebot/models"
	"uptimebot/usecases/responder"
)

type SlackEventsHandler struct {
	signingSecret    string
	slackSDKClient   *slack.Client
	responderUseCase *responder.ResponderUseCase
}

func NewSlackEventsHandler(
	botToken string,
	signingSecret string,
	responderUseCase *responder.ResponderUseCase,
) (*SlackEventsHandler, error) {
	sdkClient := slack.New(botToken)

	// Verify the bot token up front so a bad token fails at startup
	authTest, err := sdkClient.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("failed to verify Slack bot token: %w", err)
	}
	log.Printf("✅ Slack bot authenticated as %s (team %s)", authTest.UserID, authTest.TeamID)

	return &SlackEventsHandler{
		signingSecret:    signingSecret,
		slackSDKClient:   sdkClient,
		responderUseCase: responderUseCase,
	}, nil
}

// verifySlackSignature verifies the authenticity of a Slack webhook request
func (h *SlackEventsHandler) verifySlackSignature(r *http.Request, body []byte) error {
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	signature := r.Header.Get("X-Slack-Signature")

	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing required headers")
	}

	// Verify timestamp freshness (within 5 minutes, either direction)
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp format: %v", err)
	}

	skew := time.Now().Unix() - ts
	if skew > 300 || skew < -300 {
		return fmt.Errorf("request timestamp outside allowed window")
	}

	// Signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

func (h *SlackEventsHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack event received from %s", r.RemoteAddr)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body map[string]any
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		log.Printf("❌ Failed to parse JSON body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	if body["type"] == "url_verification" {
		log.Printf("🔐 Slack URL verification challenge received")
		challenge, ok := body["challenge"].(string)
		if !ok {
			log.Printf("❌ Challenge not found in verification request")
			http.Error(w, "challenge not found", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(challenge)); err != nil {
			log.Printf("❌ Failed to write challenge response: %v", err)
		}
		return
	}

	if body["type"] != "event_callback" {
		log.Printf("📋 Non-event callback received: %v", body["type"])
		w.WriteHeader(http.StatusOK)
		return
	}

	event, ok := body["event"].(map[string]any)
	if !ok {
		log.Printf("❌ Event payload not found in callback")
		http.Error(w, "event not found", http.StatusBadRequest)
		return
	}

	// Acknowledge immediately; Slack retries events that are not answered
	// within a few seconds
	w.WriteHeader(http.StatusOK)

	if event["type"] != "message" {
		return
	}

	messageEvent := mapToSlackMessageEvent(event)
	if messageEvent.AuthorIsBot {
		log.Printf("🔍 Slack message from a bot in channel %s - ignoring", messageEvent.ChannelID)
		return
	}

	conversation := &slackConversation{
		sdkClient: h.slackSDKClient,
		channelID: messageEvent.ChannelID,
	}

	go func() {
		if err := h.responderUseCase.ProcessMessageEvent(context.Background(), messageEvent, conversation); err != nil {
			log.Printf("❌ Failed to process Slack message: %v", err)
		}
	}()
}

// mapToSlackMessageEvent maps a raw Slack message event to our domain model.
// Slack has no boolean bot flag; a non-empty bot_id or a bot_message
// subtype marks bot-authored messages.
func mapToSlackMessageEvent(event map[string]any) models.MessageEvent {
	text, _ := event["text"].(string)
	channelID, _ := event["channel"].(string)
	userID, _ := event["user"].(string)
	botID, _ := event["bot_id"].(string)
	subtype, _ := event["subtype"].(string)

	return models.MessageEvent{
		ChannelID:   channelID,
		UserID:      userID,
		Text:        text,
		AuthorIsBot: botID != "" || subtype == "bot_message",
	}
}

// slackConversation implements responder.Conversation for a single Slack
// channel
type slackConversation struct {
	sdkClient *slack.Client
	channelID string
}

func (c *slackConversation) ReplyText(ctx context.Context, text string) error {
	_, _, err := c.sdkClient.PostMessageContext(ctx, c.channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

func (c *slackConversation) ReplyEmbed(ctx context.Context, embed models.Embed) error {
	_, _, err := c.sdkClient.PostMessageContext(ctx, c.channelID,
		slack.MsgOptionAttachments(mapToSlackAttachment(embed)))
	if err != nil {
		return fmt.Errorf("failed to send Slack attachment: %w", err)
	}
	return nil
}

// mapToSlackAttachment maps our platform-neutral embed to a Slack attachment
func mapToSlackAttachment(embed models.Embed) slack.Attachment {
	fields := make([]slack.AttachmentField, len(embed.Fields))
	for i, field := range embed.Fields {
		fields[i] = slack.AttachmentField{
			Title: field.Name,
			Value: field.Value,
			Short: false,
		}
	}

	return slack.Attachment{
		Title:  embed.Title,
		Text:   embed.Description,
		Color:  fmt.Sprintf("#%06X", embed.Color),
		Fields: fields,
	}
}
