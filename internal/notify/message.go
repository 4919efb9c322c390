package notify

import (
	"fmt"
	"strings"
)

// Message is one notification to deliver: addressing plus plain-text
// content. Content keeps the casing its producer supplied.
type Message struct {
	// From is the originator address.
	From string
	// To lists the recipient addresses.
	To []string
	// Subject is the message subject line.
	Subject string
	// Body is the plain-text message body.
	Body string
}

// Render serializes the message into an RFC 5322 plain-text payload.
func (m Message) Render() []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
