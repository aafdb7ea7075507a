package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	gcerrors "github.com/systmms/gitcred/internal/errors"
	"github.com/systmms/gitcred/internal/keyring"
	"github.com/systmms/gitcred/pkg/credential"
)

// NewHelperCommand exposes gitcred as a credential helper backed by the
// OS keyring. Configure it in git config as:
//
//	[credential]
//	    helper = !gitcred helper
//
// git then invokes `gitcred helper get|store|erase` with the request
// attributes on stdin.
func NewHelperCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helper",
		Short: "Act as a git credential helper backed by the OS keyring",
		Long: `Implements the helper side of the gitcredentials(7) wire protocol.

Attributes arrive as key=value lines on stdin; 'get' answers with
username= and password= lines on stdout, 'store' and 'erase' are silent.
Credentials are scoped by protocol://host and kept in the platform
keyring (Secret Service, Keychain or Credential Manager).`,
	}

	cmd.AddCommand(
		newHelperGetCommand(opts),
		newHelperStoreCommand(opts),
		newHelperEraseCommand(opts),
	)

	return cmd
}

func newHelperGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Look up a stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			protocol, host, attrs := readScope(cmd.InOrStdin())

			username, password, err := keyring.New().Get(protocol, host)
			if err != nil {
				// No stored entry, or a keyring hiccup: by helper
				// contract both are "no answer", printed as nothing.
				if !errors.Is(err, keyring.ErrNotFound) {
					opts.logger().Debug("keyring lookup failed: %v", err)
				}
				return nil
			}
			defer password.Destroy()

			locked, err := password.Open()
			if err != nil {
				return nil
			}
			defer locked.Destroy()

			if username == "" {
				username = attrs["username"]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "username=%s\n", username)
			fmt.Fprintf(out, "password=%s\n", locked.Bytes())
			return nil
		},
	}
}

func newHelperStoreCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Persist a credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			protocol, host, attrs := readScope(cmd.InOrStdin())

			// Without a scope or a password there is nothing to keep.
			// Stay silent like the stock helpers do.
			if host == "" || attrs["password"] == "" {
				return nil
			}

			if err := keyring.New().Put(protocol, host, attrs["username"], attrs["password"]); err != nil {
				return gcerrors.CommandError{
					Command:    "helper store",
					Message:    err.Error(),
					Suggestion: "Check that a keyring service is available in this session",
				}
			}
			return nil
		},
	}
}

func newHelperEraseCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "erase",
		Short: "Remove a stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			protocol, host, _ := readScope(cmd.InOrStdin())
			if host == "" {
				return nil
			}

			if err := keyring.New().Erase(protocol, host); err != nil {
				return gcerrors.CommandError{
					Command:    "helper erase",
					Message:    err.Error(),
					Suggestion: "Check that a keyring service is available in this session",
				}
			}
			return nil
		},
	}
}

// parseAttributes reads key=value lines until EOF or a blank line. Lines
// without a '=' are skipped; for each key the first occurrence wins, the
// same rules the discovery engine applies to helper replies.
func parseAttributes(r io.Reader) map[string]string {
	attrs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if _, dup := attrs[key]; !dup {
			attrs[key] = value
		}
	}
	return attrs
}

// readScope parses the request attributes and derives the protocol/host
// scope, expanding a url attribute when the caller sent one instead of
// the split fields.
func readScope(r io.Reader) (protocol, host string, attrs map[string]string) {
	attrs = parseAttributes(r)
	protocol = attrs["protocol"]
	host = attrs["host"]
	if protocol == "" && host == "" && attrs["url"] != "" {
		protocol, host = credential.SplitURL(attrs["url"])
	}
	return protocol, host, attrs
}
