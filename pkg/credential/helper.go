package credential

import (
	"context"
	"strings"
)

// Config is the configuration lookup service consulted during discovery.
// Implementations resolve a flat key such as "credential.helper" across
// whatever layering they maintain; a miss and a lookup failure are the
// same thing, reported as ok == false.
type Config interface {
	GetString(key string) (value string, ok bool)
}

// Helper probes the local credential configuration for a single URL.
//
// A Helper is built once per discovery request: construct it with
// NewHelper, optionally pre-seed a username, pull the configured username
// and helper commands in with FromConfig, then run Execute. It is not safe
// for concurrent use, and there is no reason to reuse one across requests.
type Helper struct {
	url      string
	protocol string
	host     string
	username string

	// commands holds normalized, ready-to-run helper command lines in
	// precedence order: exact URL key first, then protocol://host key,
	// then the global key. Append-only; duplicates are kept and run in
	// order. This ordering is the sole determinant of helper precedence.
	commands []string
}

// NewHelper creates a Helper for the given URL. The URL's protocol and
// host, when parsable, scope the configuration keys consulted later;
// an invalid URL simply leaves both unset.
func NewHelper(url string) *Helper {
	protocol, host := SplitURL(url)
	return &Helper{
		url:      url,
		protocol: protocol,
		host:     host,
	}
}

// SetUsername pre-seeds the username for this discovery. A username set
// here wins over every configured value: FromConfig only fills the field
// when it is still empty.
func (h *Helper) SetUsername(username string) *Helper {
	h.username = username
	return h
}

// Username returns the currently known username, which may have been
// seeded by the caller or found in configuration.
func (h *Helper) Username() string { return h.username }

// FromConfig resolves the configured username and helper commands for this
// URL. Lookup misses fall through silently to the next candidate key.
func (h *Helper) FromConfig(cfg Config) *Helper {
	if h.username == "" {
		h.resolveUsername(cfg)
	}
	h.resolveHelpers(cfg)
	return h
}

// exactKey builds the configuration key scoped to the full original URL,
// e.g. "credential.https://example.com/repo.helper".
func (h *Helper) exactKey(name string) string {
	return "credential." + h.url + "." + name
}

// urlKey builds the configuration key scoped to protocol://host. It is
// only available when both parts were recovered from the URL.
func (h *Helper) urlKey(name string) (string, bool) {
	if h.protocol == "" || h.host == "" {
		return "", false
	}
	return "credential." + h.protocol + "://" + h.host + "." + name, true
}

// resolveUsername takes the first hit among the exact key, the URL key and
// the global credential.username key.
func (h *Helper) resolveUsername(cfg Config) {
	if v, ok := cfg.GetString(h.exactKey("username")); ok {
		h.username = v
		return
	}
	if key, ok := h.urlKey("username"); ok {
		if v, ok := cfg.GetString(key); ok {
			h.username = v
			return
		}
	}
	if v, ok := cfg.GetString("credential.username"); ok {
		h.username = v
	}
}

// resolveHelpers collects helper directives from all three scopes. Unlike
// username resolution every hit is kept, so a narrower helper runs before
// a broader one but does not replace it.
func (h *Helper) resolveHelpers(cfg Config) {
	if v, ok := cfg.GetString(h.exactKey("helper")); ok {
		h.addCommand(v)
	}
	if key, ok := h.urlKey("helper"); ok {
		if v, ok := cfg.GetString(key); ok {
			h.addCommand(v)
		}
	}
	if v, ok := cfg.GetString("credential.helper"); ok {
		h.addCommand(v)
	}
}

// addCommand normalizes a raw configured helper value into a shell command
// line and appends it. Three mutually exclusive forms, first match wins:
//
//	!expr          run expr as an inline shell expression
//	/path, \path,
//	X:\path        run the named executable, quoted to survive spaces
//	name           run "git credential-name", resolved via PATH
//
// The order is a security contract: a bare name is never treated as a
// path, and a path is never reinterpreted as a helper name.
func (h *Helper) addCommand(cmd string) {
	if cmd == "" {
		return
	}
	switch {
	case strings.HasPrefix(cmd, "!"):
		h.commands = append(h.commands, cmd[1:])
	case strings.HasPrefix(cmd, "/"), strings.HasPrefix(cmd, `\`), isDrivePath(cmd):
		h.commands = append(h.commands, `"`+cmd+`"`)
	default:
		h.commands = append(h.commands, "git credential-"+cmd)
	}
}

// isDrivePath reports whether cmd looks like a Windows drive-letter
// absolute path (`X:\...`). The rule is kept on every platform: such a
// string can never be a valid helper name, and an unconditional check
// avoids platform-divergent command lines.
func isDrivePath(cmd string) bool {
	return len(cmd) >= 3 && cmd[1] == ':' && cmd[2] == '\\'
}

// Execute runs the collected helper commands in order, merging their
// replies into a username/password pair.
//
// Each helper sees the username known so far, so later helpers can build
// on what configuration or an earlier helper supplied. For each field the
// first answer wins, and iteration stops as soon as both fields are known.
// Helper failures of any kind count as no answer; to match git, nothing
// about them is reported. ok is false when the pair is incomplete after
// the last helper.
//
// The context bounds each helper subprocess. The loop itself never times
// out: a hung helper blocks discovery until the caller's context expires.
func (h *Helper) Execute(ctx context.Context) (username, password string, ok bool) {
	username = h.username
	haveUser := username != ""
	havePass := false

	for _, cmd := range h.commands {
		rep := runHelper(ctx, cmd, h.protocol, h.host, username, haveUser)
		if rep.hasUser && !haveUser {
			username = rep.username
			haveUser = true
		}
		if rep.hasPass && !havePass {
			password = rep.password
			havePass = true
		}
		if haveUser && havePass {
			break
		}
	}

	if haveUser && havePass {
		return username, password, true
	}
	return "", "", false
}
