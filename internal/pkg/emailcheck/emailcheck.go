package emailcheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/metrovolt-api/internal/domain"
)

// emailRe is the syntactic gate used for all inbound addresses: local@domain.tld
// with no whitespace. Deliverability is proven by the OTP flow, not here.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Disposable inbox providers rejected at registration time.
var disposableDomains = map[string]struct{}{
	"tempmail.com":      {},
	"10minutemail.com":  {},
	"guerrillamail.com": {},
	"mailinator.com":    {},
	"throwaway.email":   {},
	"fakeinbox.com":     {},
	"trashmail.com":     {},
	"mohmal.com":        {},
	"temp-mail.org":     {},
	"getnada.com":       {},
	"maildrop.cc":       {},
	"yopmail.com":       {},
	"sharklasers.com":   {},
	"getairmail.com":    {},
}

var gmailLocalRe = regexp.MustCompile(`^[a-z0-9.]+$`)

var suspiciousLocalParts = []string{"test", "fake", "temp", "demo", "example", "invalid"}

// ValidFormat reports whether email matches the basic local@domain.tld shape.
func ValidFormat(email string) bool {
	return emailRe.MatchString(email)
}

// Validate applies the registration-time email policy: syntactic shape,
// disposable-domain rejection, and Gmail local-part rules for Gmail addresses.
// Errors wrap domain.ErrBadRequest.
func Validate(email string) error {
	if !ValidFormat(email) {
		return fmt.Errorf("invalid email format: %w", domain.ErrBadRequest)
	}
	lower := strings.ToLower(email)
	at := strings.LastIndex(lower, "@")
	local, dom := lower[:at], lower[at+1:]

	if _, ok := disposableDomains[dom]; ok {
		return fmt.Errorf("disposable email addresses are not allowed: %w", domain.ErrBadRequest)
	}
	if dom == "gmail.com" || dom == "googlemail.com" {
		return validateGmailLocal(local)
	}
	return nil
}

// validateGmailLocal applies Gmail's published username rules so obviously
// fake Gmail addresses are rejected before a code is ever sent.
func validateGmailLocal(local string) error {
	if len(local) < 6 || len(local) > 30 {
		return fmt.Errorf("gmail username must be 6-30 characters: %w", domain.ErrBadRequest)
	}
	if !gmailLocalRe.MatchString(local) {
		return fmt.Errorf("gmail username contains invalid characters: %w", domain.ErrBadRequest)
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return fmt.Errorf("gmail username cannot start or end with a dot: %w", domain.ErrBadRequest)
	}
	if strings.Contains(local, "..") {
		return fmt.Errorf("gmail username cannot have consecutive dots: %w", domain.ErrBadRequest)
	}
	if len(local) < 10 {
		for _, p := range suspiciousLocalParts {
			if strings.Contains(local, p) {
				return fmt.Errorf("suspicious gmail pattern detected: %w", domain.ErrBadRequest)
			}
		}
	}
	return nil
}
