package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestMessageRender checks header layout and that content casing is
// preserved verbatim.
func TestMessageRender(t *testing.T) {
	t.Parallel()

	msg := Message{
		From:    "alerts@example.com",
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Camera in Disarmed should be Armed",
		Body:    "Camera in Disarmed should be Armed",
	}

	rendered := string(msg.Render())
	require.Contains(t, rendered, "From: alerts@example.com\r\n")
	require.Contains(t, rendered, "To: a@example.com, b@example.com\r\n")
	require.Contains(t, rendered, "Subject: Camera in Disarmed should be Armed\r\n")
	require.Contains(t, rendered, "\r\n\r\nCamera in Disarmed should be Armed")
}

// TestSendRejectsEmptyRecipients verifies the sender refuses a message
// with nobody to deliver to before touching the network.
func TestSendRejectsEmptyRecipients(t *testing.T) {
	t.Parallel()

	sender := NewSMTPSender("smtp.local", 587, "user", "pass", time.Second)

	err := sender.Send(context.Background(), Message{From: "a@local"})
	require.ErrorIs(t, err, errNoRecipients)
}
