package validators

import (
	"net"
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[(]?[0-9][0-9\-\s().]{5,19}$`)

// IsPhoneValid accepts E.164-ish numbers with common separators.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}
	if !phoneRe.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// IsEmailDomainValid checks that the email's domain actually resolves.
// Used on top of format validation to cut obvious junk submissions.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
