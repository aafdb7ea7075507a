package credential

import (
	"bytes"
	"unicode/utf8"
)

// reply is what a single helper invocation reported. The has flags keep an
// explicit empty value (a helper answering "username=") distinct from no
// answer at all.
type reply struct {
	username string
	password string
	hasUser  bool
	hasPass  bool
}

// parseReply extracts username/password from a helper's captured output.
//
// The output is split into raw byte lines first; each line splits at its
// first '=' into key and value. Lines without a '=' and lines whose value
// is not valid UTF-8 are dropped, never fatal. Only the username and
// password keys are recognized, and for each the first occurrence wins.
func parseReply(out []byte) reply {
	var r reply
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		eq := bytes.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		key := line[:eq]
		value := line[eq+1:]
		if !utf8.Valid(value) {
			continue
		}
		switch {
		case bytes.Equal(key, []byte("username")):
			if !r.hasUser {
				r.username = string(value)
				r.hasUser = true
			}
		case bytes.Equal(key, []byte("password")):
			if !r.hasPass {
				r.password = string(value)
				r.hasPass = true
			}
		}
	}
	return r
}
