package credential

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// runHelper spawns one normalized helper command as `sh -c "<cmd> get"`,
// writes the request over stdin and parses the reply from stdout.
//
// Every failure mode collapses into an empty reply: a helper that cannot
// be spawned, refuses its input, exits non-zero or breaks a pipe is
// indistinguishable from one that had nothing to say. This mirrors git's
// behavior and keeps discovery going with the remaining helpers.
func runHelper(ctx context.Context, command, protocol, host, username string, haveUser bool) reply {
	cmd := exec.CommandContext(ctx, "sh", "-c", command+" get")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return reply{}
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return reply{}
	}

	// One line per known field, in protocol order. Write errors are
	// ignored: the helper may not read stdin at all.
	var req bytes.Buffer
	if protocol != "" {
		fmt.Fprintf(&req, "protocol=%s\n", protocol)
	}
	if host != "" {
		fmt.Fprintf(&req, "host=%s\n", host)
	}
	if haveUser {
		fmt.Fprintf(&req, "username=%s\n", username)
	}
	_, _ = stdin.Write(req.Bytes())
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		return reply{}
	}
	return parseReply(stdout.Bytes())
}
