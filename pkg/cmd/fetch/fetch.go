package fetch

import (
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/swg-tools/sginfo/pkg/config"
	"github.com/swg-tools/sginfo/pkg/fetch"
)

func NewCmd() *cobra.Command {
	options := struct {
		configPath string
		port       int
		user       string
		password   string
		insecure   bool
		timeout    time.Duration
		output     string
		noProgress bool
	}{
		configPath: "config.json",
		port:       8082,
		user:       "admin",
		password:   "",
		insecure:   false,
		timeout:    5 * time.Minute,
		output:     "sysinfo.txt",
		noProgress: false,
	}

	cmd := &cobra.Command{
		Use:   "fetch <appliance | host>",
		Short: "fetch a sysinfo dump from a running appliance",
		Example: heredoc.Doc(`
		$ sginfo fetch proxysg01
		$ sginfo fetch 192.0.2.10 --user admin --password secret
		$ sginfo fetch proxysg01 --output proxysg01.sysinfo
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := args[0]
			opts := []fetch.Option{
				fetch.WithPort(options.port),
				fetch.WithUser(options.user),
				fetch.WithPassword(options.password),
				fetch.WithInsecure(options.insecure),
				fetch.WithTimeout(options.timeout),
				fetch.WithOutput(options.output),
				fetch.WithNoProgress(options.noProgress),
			}

			if _, err := os.Stat(options.configPath); err == nil {
				c, err := config.Open(options.configPath)
				if err != nil {
					return errors.Wrapf(err, "open %s", options.configPath)
				}
				if a, ok := c.Appliances[args[0]]; ok {
					host = a.Host
					opts = []fetch.Option{
						fetch.WithPort(a.Port),
						fetch.WithUser(a.User),
						fetch.WithPassword(a.Password),
						fetch.WithInsecure(a.Insecure),
						fetch.WithTimeout(options.timeout),
						fetch.WithOutput(options.output),
						fetch.WithNoProgress(options.noProgress),
					}
					if cmd.Flags().Changed("password") {
						opts = append(opts, fetch.WithPassword(options.password))
					}
				}
			}

			if err := fetch.Fetch(host, opts...); err != nil {
				return errors.Wrap(err, "fetch")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.configPath, "config", "c", options.configPath, "sginfo config file path")
	cmd.Flags().IntVarP(&options.port, "port", "", options.port, "management console port")
	cmd.Flags().StringVarP(&options.user, "user", "u", options.user, "management console user")
	cmd.Flags().StringVarP(&options.password, "password", "p", options.password, "management console password")
	cmd.Flags().BoolVarP(&options.insecure, "insecure", "k", options.insecure, "skip tls certificate verification")
	cmd.Flags().DurationVarP(&options.timeout, "timeout", "", options.timeout, "http timeout")
	cmd.Flags().StringVarP(&options.output, "output", "o", options.output, "output file path")
	cmd.Flags().BoolVarP(&options.noProgress, "no-progress", "", options.noProgress, "suppress the progress bar")

	return cmd
}
