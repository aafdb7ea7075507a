package credential

import "net/url"

// defaultPorts maps URL schemes to their default ports. Only schemes
// listed here are network schemes whose URLs carry a host; git and ssh are
// registered alongside the standard web scheme table so that git:// and
// ssh:// URLs decompose into a protocol/host pair the same way http://
// does. Any other scheme is opaque and yields no host.
var defaultPorts = map[string]int{
	"git":   9418,
	"ssh":   22,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"ftp":   21,
	"ftps":  990,
}

// defaultPort returns the default port for a scheme, or false for schemes
// without a registered default.
func defaultPort(scheme string) (int, bool) {
	p, ok := defaultPorts[scheme]
	return p, ok
}

// SplitURL decomposes a raw URL into its protocol and host. A host is only
// recovered for network schemes, the ones with a registered default port;
// URLs with an opaque scheme keep their protocol but contribute no host.
// Either result may be empty when the corresponding part is absent.
//
// A malformed URL is not an error: the URL is only used as a configuration
// lookup key, so parse failures yield two empty strings and lookup
// proceeds at the global level.
func SplitURL(raw string) (protocol, host string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ""
	}
	if _, ok := defaultPort(u.Scheme); !ok {
		return u.Scheme, ""
	}
	return u.Scheme, u.Hostname()
}
