package alerts

import (
	"context"
	"fmt"
	"time"

	"fraud-detection-backend/internal/models"
	"fraud-detection-backend/internal/utils"

	"github.com/bwmarrin/discordgo"
)

const embedColorRed = 0xE74C3C

// Discord posts an embed to a channel for every stored fraud.
type Discord struct {
	channelID string
	send      func(channelID string, embed *discordgo.MessageEmbed) error
}

// NewDiscord creates a REST-only bot session; no gateway connection is opened.
func NewDiscord(token, channelID string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return &Discord{
		channelID: channelID,
		send: func(channelID string, embed *discordgo.MessageEmbed) error {
			_, err := session.ChannelMessageSendEmbed(channelID, embed)
			return err
		},
	}, nil
}

func (d *Discord) NotifyFraud(_ context.Context, fraud models.Fraud) error {
	if err := d.send(d.channelID, fraudEmbed(fraud)); err != nil {
		return fmt.Errorf("discord alert for fraud %d: %w", fraud.ID, err)
	}
	return nil
}

func fraudEmbed(f models.Fraud) *discordgo.MessageEmbed {
	description := f.Description
	if description == "" {
		description = "Transaction flagged by the fraud model."
	}
	created := f.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Fraud #%d flagged", f.ID),
		Description: description,
		Color:       embedColorRed,
		Timestamp:   created.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Card", Value: utils.MaskCardNumber(f.CCNum), Inline: true},
			{Name: "Amount", Value: "$" + f.Amt.StringFixed(2), Inline: true},
			{Name: "ZIP", Value: fmt.Sprintf("%d", f.Zip), Inline: true},
			{Name: "Cardholder", Value: fmt.Sprintf("%.4f, %.4f", f.Lat, f.Long), Inline: true},
			{Name: "Merchant", Value: fmt.Sprintf("%.4f, %.4f", f.MerchLat, f.MerchLong), Inline: true},
		},
	}
}
