package checkout

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link carrying the order message. The
// phone number is filtered to digits and '+' since wa.me rejects spaces and
// punctuation.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + sanitizePhone(phone) + "?text=" + encodeQuery(message)
}

// MailtoLink builds a mailto deep link. Emphasis markers are stripped from
// the body since mail clients render them literally.
func MailtoLink(addr, subject, message string) string {
	return "mailto:" + addr +
		"?subject=" + encodeQuery(subject) +
		"&body=" + encodeQuery(stripEmphasis(message))
}

func sanitizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// encodeQuery percent-encodes a query value with spaces as %20 rather than
// '+'. wa.me and mail clients decode %20; some mishandle '+'.
func encodeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	return strings.ReplaceAll(s, "_", "")
}
