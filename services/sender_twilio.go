package services

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers notifications as SMS or WhatsApp messages to the
// operator's phone. Alternate channel for installs without a Telegram bot.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	to     string
}

func NewTwilioSender(accountSid, authToken, from, to string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
		to:   to,
	}
}

func (s *TwilioSender) Send(text string) error {
	to := s.to
	from := s.from

	// Use WhatsApp when the destination is in E.164 format
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		from = "whatsapp:" + from
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(stripHTML(text))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("twilio accepted message but returned no SID")
	}
	return nil
}

// stripHTML drops the bold markup the Telegram channel uses; SMS bodies
// are plain text.
func stripHTML(text string) string {
	r := strings.NewReplacer("<b>", "", "</b>", "")
	return r.Replace(text)
}
