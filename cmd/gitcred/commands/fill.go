package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	gcerrors "github.com/systmms/gitcred/internal/errors"
	"github.com/systmms/gitcred/internal/gitconfig"
	"github.com/systmms/gitcred/internal/logging"
	"github.com/systmms/gitcred/pkg/credential"
)

func NewFillCommand(opts *Options) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "fill <url>",
		Short: "Discover credentials for a URL",
		Long: `Resolve a username/password pair for a URL by running the credential
helpers configured in git config, narrowest scope first.

The result is printed as key=value lines on stdout, the same shape
'git credential fill' produces. Nothing about helper failures is
reported: a discovery that comes up empty looks exactly like having no
stored credentials.

Examples:
  # Discover credentials for a host
  gitcred fill https://example.com/org/repo.git

  # Pre-seed the username; helpers are asked only for the password
  gitcred fill --username alice https://example.com/org/repo.git`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			logger := opts.logger()

			store := gitconfig.Load(opts.Workdir)

			helper := credential.NewHelper(url)
			if username != "" {
				helper.SetUsername(username)
			}
			helper.FromConfig(store)

			u, p, ok := helper.Execute(cmd.Context())
			if !ok {
				return gcerrors.NotFound(url)
			}

			logger.Debug("discovered credentials for %s: username=%s password=%s",
				url, u, logging.Secret(p))

			fmt.Fprintf(cmd.OutOrStdout(), "username=%s\n", u)
			fmt.Fprintf(cmd.OutOrStdout(), "password=%s\n", p)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Pre-seed the username before consulting helpers")

	return cmd
}
