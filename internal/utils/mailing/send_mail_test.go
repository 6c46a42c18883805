package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeMailUsesSenderName(t *testing.T) {
	cfg := MailConfig{
		SMTPSender: "FreshStock",
		SMTPEmail:  "noreply@freshstock.test",
	}

	mailer := composeMail(cfg, "alex@acme.test", "Welcome", "<p>hi</p>")

	from := mailer.GetHeader("From")
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "FreshStock")
	assert.Contains(t, from[0], "noreply@freshstock.test")
	assert.Equal(t, []string{"alex@acme.test"}, mailer.GetHeader("To"))
	assert.Equal(t, []string{"Welcome"}, mailer.GetHeader("Subject"))
}
