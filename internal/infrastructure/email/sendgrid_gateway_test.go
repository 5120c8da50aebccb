package email

import (
	"context"
	"errors"
	"testing"

	"quote_relay/internal/domain/entities"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*mail.SGMailV3
	resp *rest.Response
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, m)
	return f.resp, f.err
}

func quoteMessage() entities.EmailMessage {
	return entities.EmailMessage{
		From:     "walter@valdicass.com",
		FromName: "Valdicass",
		To:       "client@example.com",
		Subject:  "Your Valdicass Quote is Ready",
		TextBody: "Quote Total: $250",
		HTMLBody: "<strong>Your quote total is $250</strong><br />",
		QuoteID:  "Q1",
	}
}

func TestNewSendGridGateway_RequiresKey(t *testing.T) {
	_, err := NewSendGridGateway("  ")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	g, err := NewSendGridGateway("SG.test")
	require.NoError(t, err)
	assert.NotNil(t, g.client)
}

func TestSendGridGateway_Send(t *testing.T) {
	fake := &fakeSender{resp: &rest.Response{StatusCode: 202}}
	g := &SendGridGateway{client: fake}

	require.NoError(t, g.Send(context.Background(), quoteMessage()))
	require.Len(t, fake.sent, 1)

	m := fake.sent[0]
	assert.Equal(t, "walter@valdicass.com", m.From.Address)
	assert.Equal(t, "Your Valdicass Quote is Ready", m.Subject)
	require.Len(t, m.Personalizations, 1)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "client@example.com", m.Personalizations[0].To[0].Address)
	assert.Equal(t, "Q1", m.Personalizations[0].CustomArgs["quoteId"])
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/plain", m.Content[0].Type)
	assert.Equal(t, "Quote Total: $250", m.Content[0].Value)
	assert.Equal(t, "text/html", m.Content[1].Type)
	assert.Contains(t, m.Categories, quoteCategory)
}

func TestSendGridGateway_Rejected(t *testing.T) {
	fake := &fakeSender{resp: &rest.Response{StatusCode: 401, Body: `{"errors":[{"message":"bad key"}]}`}}
	g := &SendGridGateway{client: fake}

	err := g.Send(context.Background(), quoteMessage())
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 401, perr.StatusCode)
	assert.Contains(t, err.Error(), "bad key")
}

func TestSendGridGateway_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: timeout")
	g := &SendGridGateway{client: &fakeSender{err: boom}}

	err := g.Send(context.Background(), quoteMessage())
	assert.ErrorIs(t, err, boom)
}
