package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/pkg/logger"
	"gorm.io/gorm"
)

// embedColor is Discord's blurple, matching the community branding.
const embedColor = 7289935

// maxEmbedFields caps how many form fields are mirrored into the embed;
// Discord rejects embeds with too many fields.
const maxEmbedFields = 10

var discordHTTPClient = &http.Client{Timeout: 10 * time.Second}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Color       int                 `json:"color"`
	Fields      []discordEmbedField `json:"fields"`
	Timestamp   string              `json:"timestamp"`
	Footer      struct {
		Text string `json:"text"`
	} `json:"footer"`
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

// DiscordService delivers submission notifications to per-form Discord
// webhooks. Delivery is strictly best-effort.
type DiscordService struct {
	db *gorm.DB
}

func NewDiscordService(db *gorm.DB) *DiscordService {
	return &DiscordService{db: db}
}

// ProcessNotifyTask is the queue processor: it reloads the submission and
// its form, then posts the embed to the form's webhook.
func (s *DiscordService) ProcessNotifyTask(task *NotifyTask) error {
	var sub models.ApplicationSubmission
	if err := s.db.First(&sub, "id = ?", task.SubmissionID).Error; err != nil {
		return fmt.Errorf("load submission: %w", err)
	}

	var form models.ApplicationForm
	if err := s.db.First(&form, "id = ?", sub.FormID).Error; err != nil {
		return fmt.Errorf("load form: %w", err)
	}

	if form.WebhookURL == "" {
		return nil
	}

	payload := buildSubmissionEmbed(&form, &sub)
	if err := postJSON(form.WebhookURL, payload); err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}

	logger.Info().
		Str("submission_id", sub.ID).
		Str("form_id", form.ID).
		Msg("submission notification delivered")
	return nil
}

// buildSubmissionEmbed renders the Discord embed for a new submission.
func buildSubmissionEmbed(form *models.ApplicationForm, sub *models.ApplicationSubmission) *discordWebhookPayload {
	embed := discordEmbed{
		Title:       "Ny ansøgning - " + form.Title,
		Description: fmt.Sprintf("**Ansøger:** %s\n**Position:** %s", sub.ApplicantName, form.Position),
		Color:       embedColor,
		Timestamp:   sub.SubmittedAt.UTC().Format(time.RFC3339),
	}
	embed.Footer.Text = "Revolution Roleplay"

	fields := form.Fields
	if len(fields) > maxEmbedFields {
		fields = fields[:maxEmbedFields]
	}
	for _, f := range fields {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   f.Label,
			Value:  responseValue(sub.Responses, f.ID),
			Inline: true,
		})
	}

	return &discordWebhookPayload{Embeds: []discordEmbed{embed}}
}

// responseValue renders one answer for the embed. Checkbox answers arrive
// as lists and are joined; missing or empty answers show as N/A.
func responseValue(responses models.ResponseMap, fieldID string) string {
	raw, ok := responses[fieldID]
	if !ok {
		return "N/A"
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			return "N/A"
		}
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		if len(parts) == 0 {
			return "N/A"
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func postJSON(webhookURL string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := discordHTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
