package leads

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Source channels recognized by the scoring rules. Anything else is
// accepted at intake and scored as an unknown channel.
const (
	ChannelWebsiteForm     = "Website Form"
	ChannelLinkedIn        = "LinkedIn"
	ChannelPartnerReferral = "Partner Referral"
	ChannelWebinarSignup   = "Webinar Signup"
	ChannelColdEmail       = "Cold Email"
)

// MinInquiryLength is the shortest inquiry message accepted at intake,
// counted in characters, not bytes.
const MinInquiryLength = 8

// Lead represents an inbound sales inquiry. A lead is built per request
// and never mutated after validation.
type Lead struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Company            string `json:"company"`
	Title              string `json:"title"`
	InquiryMessage     string `json:"inquiry_message"`
	SourceChannel      string `json:"source_channel"`
	Industry           string `json:"industry,omitempty"`
	EngagementBehavior string `json:"engagement_behavior,omitempty"`
}

// Validate checks the required fields of an inbound lead
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(l.Email) == "" {
		return ErrMissingEmail
	}
	if addr, err := mail.ParseAddress(l.Email); err != nil || addr.Address != l.Email {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(l.Company) == "" {
		return ErrMissingCompany
	}
	if strings.TrimSpace(l.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(l.InquiryMessage) == "" {
		return ErrMissingInquiry
	}
	if utf8.RuneCountInString(l.InquiryMessage) < MinInquiryLength {
		return ErrShortInquiry
	}
	if strings.TrimSpace(l.SourceChannel) == "" {
		return ErrMissingChannel
	}
	return nil
}
