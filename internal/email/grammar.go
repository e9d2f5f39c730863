package email

import "strings"

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsLocalStart reports whether c may open the local part.
func IsLocalStart(c byte) bool { return isAlnum(c) }

// IsLocalMiddle reports whether c may appear inside the local part or a plus suffix.
func IsLocalMiddle(c byte) bool {
	return isAlnum(c) || c == '.' || c == '_' || c == '+' || c == '-'
}

// IsLocalEnd reports whether c may close the local core.
func IsLocalEnd(c byte) bool { return isAlnum(c) }

// IsDomainStart reports whether c may open the domain part.
func IsDomainStart(c byte) bool { return isAlnum(c) }

// IsDomainMiddle reports whether c may appear inside the domain part.
func IsDomainMiddle(c byte) bool { return isAlnum(c) || c == '.' || c == '-' }

// IsDomainEnd reports whether c may close the domain part.
func IsDomainEnd(c byte) bool { return isAlnum(c) }

// IsTLDChar reports whether c may appear in the top-level domain.
func IsTLDChar(c byte) bool { return isAlpha(c) }

// HasConsecutiveDots reports whether s contains ".." anywhere.
func HasConsecutiveDots(s string) bool {
	return strings.Contains(s, "..")
}

// matchBounded reports whether s is start, middle*, end with at least two bytes.
func matchBounded(s string, start, middle, end func(byte) bool) bool {
	if len(s) < 2 {
		return false
	}
	if !start(s[0]) || !end(s[len(s)-1]) {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if !middle(s[i]) {
			return false
		}
	}
	return true
}

// MatchLocalCore matches local-start, local-middle*, local-end.
func MatchLocalCore(s string) bool {
	return matchBounded(s, IsLocalStart, IsLocalMiddle, IsLocalEnd)
}

// MatchPlusSuffix matches a literal '+' followed by one or more local-middle bytes.
func MatchPlusSuffix(s string) bool {
	if len(s) < 2 || s[0] != '+' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsLocalMiddle(s[i]) {
			return false
		}
	}
	return true
}

// MatchLocal matches a local core optionally followed by a plus suffix.
//
// Every byte of the core and the suffix, including the '+' separator, is a
// local-middle byte, so a single pass checks the alphabet. What remains is
// where the core may end: at the last byte, or right before some '+' that
// leaves a non-empty suffix behind it.
func MatchLocal(s string) bool {
	if len(s) < 2 || !IsLocalStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsLocalMiddle(s[i]) {
			return false
		}
	}
	if IsLocalEnd(s[len(s)-1]) {
		return true
	}
	for i := 2; i < len(s)-1; i++ {
		if s[i] == '+' && IsLocalEnd(s[i-1]) {
			return true
		}
	}
	return false
}

// MatchDomain matches domain-start, domain-middle*, domain-end.
func MatchDomain(s string) bool {
	return matchBounded(s, IsDomainStart, IsDomainMiddle, IsDomainEnd)
}

// MatchTLD matches two or more alphabetic bytes.
func MatchTLD(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsTLDChar(s[i]) {
			return false
		}
	}
	return true
}

// MatchAddress matches a whole normalized address: local '@' domain '.' tld.
// The TLD cannot hold a dot, so it starts after the last dot of the host.
func MatchAddress(s string) bool {
	if HasConsecutiveDots(s) {
		return false
	}

	at := strings.IndexByte(s, '@')
	if at < 0 {
		return false
	}
	local, host := s[:at], s[at+1:]
	if !MatchLocal(local) {
		return false
	}

	dot := strings.LastIndexByte(host, '.')
	if dot < 0 {
		return false
	}
	return MatchDomain(host[:dot]) && MatchTLD(host[dot+1:])
}
