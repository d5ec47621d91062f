package input

import "regexp"

// Kind is the classification of a search value
type Kind int

const (
	// Domain is anything that is not shaped like an IP address
	Domain Kind = iota
	// IP is an IPv4 or IPv6 shaped value
	IP
)

func (k Kind) String() string {
	if k == IP {
		return "ip"
	}
	return "domain"
}

var (
	// Four dot-separated groups of 1-3 digits. Octet ranges are not checked.
	ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

	// Full eight-group form plus the loopback and unspecified literals.
	// Other abbreviated forms such as 2001:db8::1 do not match and are
	// looked up as domains.
	ipv6Pattern = regexp.MustCompile(`^(([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|::1|::)$`)
)

// Classify decides whether value is an IP address or a candidate domain name.
// No DNS resolution or domain syntax check is done.
func Classify(value string) Kind {
	if ipv4Pattern.MatchString(value) || ipv6Pattern.MatchString(value) {
		return IP
	}
	return Domain
}
