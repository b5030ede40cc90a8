// Package outreach composes application email drafts for an HR contact.
// It only builds the message; sending stays with the operator's own mail
// client.
package outreach

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultSubject = "Application for SDE Position"

// Sender carries the operator-supplied details merged into the draft.
type Sender struct {
	Name       string
	Phone      string
	ResumeLink string
}

type Draft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

// Compose builds a draft addressed to hrEmail. An empty hrName falls back
// to a generic greeting.
func Compose(hrName, hrEmail string, sender Sender) Draft {
	greeting := strings.TrimSpace(hrName)
	if greeting == "" {
		greeting = "Hiring Team"
	}

	body := fmt.Sprintf(`Hi %s,

I'm %s, currently seeking full-time opportunities as an SDE. I wanted to check if there are any openings at your organization that align with my profile.

Please find my resume below for your reference:
Resume: %s

Thank you for your time and consideration. I look forward to hearing from you.

Best regards,
%s
%s`, greeting, sender.Name, sender.ResumeLink, sender.Name, sender.Phone)

	draft := Draft{
		To:      hrEmail,
		Subject: defaultSubject,
		Body:    body,
	}
	draft.Mailto = mailtoURL(draft)
	return draft
}

// mailtoURL percent-encodes the draft the way encodeURIComponent does:
// spaces become %20, not +.
func mailtoURL(d Draft) string {
	escape := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", escape(d.To), escape(d.Subject), escape(d.Body))
}
