package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fraud-detection-backend/internal/models"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []models.Fraud
	err error
}

func (r *recorder) NotifyFraud(_ context.Context, f models.Fraud) error {
	r.got = append(r.got, f)
	return r.err
}

func sampleFraud() models.Fraud {
	return models.Fraud{
		ID:          7,
		Description: "card used 900km from home",
		CCNum:       "4532015112830366",
		Amt:         decimal.RequireFromString("2.86"),
		Zip:         28202,
		Lat:         35.2271,
		Long:        -80.8431,
		MerchLat:    35.23,
		MerchLong:   -80.86,
		CreatedAt:   time.Date(2025, 12, 15, 8, 53, 42, 0, time.UTC),
	}
}

func TestMultiNotifiesAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	ok := &recorder{}
	failing := &recorder{err: boom}

	err := Multi{ok, nil, failing}.NotifyFraud(context.Background(), sampleFraud())

	assert.ErrorIs(t, err, boom)
	assert.Len(t, ok.got, 1)
	assert.Len(t, failing.got, 1)
}

func TestMultiEmpty(t *testing.T) {
	assert.NoError(t, Multi{}.NotifyFraud(context.Background(), sampleFraud()))
}

func TestDiscordEmbedMasksCard(t *testing.T) {
	var channel string
	var embed *discordgo.MessageEmbed
	d := &Discord{
		channelID: "123",
		send: func(ch string, e *discordgo.MessageEmbed) error {
			channel, embed = ch, e
			return nil
		},
	}

	require.NoError(t, d.NotifyFraud(context.Background(), sampleFraud()))

	assert.Equal(t, "123", channel)
	require.NotNil(t, embed)
	assert.Equal(t, "Fraud #7 flagged", embed.Title)
	assert.Equal(t, "2025-12-15T08:53:42Z", embed.Timestamp)
	assert.Equal(t, "****-****-****-0366", embed.Fields[0].Value)
	assert.Equal(t, "$2.86", embed.Fields[1].Value)
	for _, field := range embed.Fields {
		assert.NotContains(t, field.Value, "4532015112830366")
	}
}

func TestDiscordSendError(t *testing.T) {
	d := &Discord{channelID: "1", send: func(string, *discordgo.MessageEmbed) error {
		return errors.New("401 unauthorized")
	}}
	err := d.NotifyFraud(context.Background(), sampleFraud())
	assert.ErrorContains(t, err, "fraud 7")
}

func TestHubBroadcastsFraudCreated(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.HandleRequest(w, r)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.NotifyFraud(context.Background(), sampleFraud()))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type  string          `json:"type"`
		Fraud json.RawMessage `json:"fraud"`
	}
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, EventFraudCreated, event.Type)
	assert.Contains(t, string(event.Fraud), `"cc_num":"4532015112830366"`)
	assert.Contains(t, string(event.Fraud), `"amt":"2.86"`)
}
