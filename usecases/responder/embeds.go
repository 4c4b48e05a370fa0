package responder

import (
	"context"
	"fmt"
	"log"
	"time"

	"uptimebot/models"
)

func newEmbed(title, description string, color int) models.Embed {
	return models.Embed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func (u *ResponderUseCase) buildStatusEmbed(ctx context.Context, commandID string) (models.Embed, error) {
	monitors, err := u.uptimeClient.ListMonitors(ctx)
	if err != nil {
		return models.Embed{}, fmt.Errorf("failed to fetch monitors: %w", err)
	}

	if len(monitors) > maxEmbedFields {
		log.Printf("⚠️ Command %s: %d monitors exceed the embed field limit, rendering first %d",
			commandID, len(monitors), maxEmbedFields)
		monitors = monitors[:maxEmbedFields]
	}

	embed := newEmbed(statusTitle, statusDescription, statusColor)
	for _, monitor := range monitors {
		statusLabel := downLabel
		if monitor.IsUp() {
			statusLabel = healthyLabel
		}
		embed.Fields = append(embed.Fields, models.EmbedField{
			Name:  monitor.Name,
			Value: fmt.Sprintf("%s | 마지막 확인: %s", statusLabel, monitor.LastCheckedAt),
		})
	}
	return embed, nil
}

func (u *ResponderUseCase) buildIncidentsEmbed(ctx context.Context, _ string) (models.Embed, error) {
	incidents, err := u.uptimeClient.ListIncidents(ctx)
	if err != nil {
		return models.Embed{}, fmt.Errorf("failed to fetch incidents: %w", err)
	}

	if len(incidents) > maxListedItems {
		incidents = incidents[:maxListedItems]
	}

	embed := newEmbed(incidentsTitle, incidentsDescription, incidentsColor)
	for _, incident := range incidents {
		resolvedAt := incident.ResolvedAt.OrElse(unresolvedLabel)
		embed.Fields = append(embed.Fields, models.EmbedField{
			Name: fmt.Sprintf("[%s] %s", incident.ID, incident.Name),
			Value: fmt.Sprintf("상태: %s | 시작: %s | 해결: %s",
				incident.Status, incident.StartedAt, resolvedAt),
		})
	}
	return embed, nil
}

func (u *ResponderUseCase) buildHeartbeatsEmbed(ctx context.Context, _ string) (models.Embed, error) {
	heartbeats, err := u.uptimeClient.ListHeartbeats(ctx)
	if err != nil {
		return models.Embed{}, fmt.Errorf("failed to fetch heartbeats: %w", err)
	}

	if len(heartbeats) > maxListedItems {
		heartbeats = heartbeats[:maxListedItems]
	}

	embed := newEmbed(heartbeatsTitle, heartbeatsDescription, heartbeatsColor)
	for _, heartbeat := range heartbeats {
		embed.Fields = append(embed.Fields, models.EmbedField{
			Name: fmt.Sprintf("[%s] %s", heartbeat.ID, heartbeat.Name),
			Value: fmt.Sprintf("상태: %s | 주기: %d초",
				heartbeat.Status, heartbeat.Period),
		})
	}
	return embed, nil
}
