package section

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/swg-tools/sginfo/pkg/report"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section <subcommand>",
		Short: "inspect sysinfo sections",
		Example: heredoc.Doc(`
		$ sginfo section list proxysg01.sysinfo
		$ sginfo section show proxysg01.sysinfo "Software Configuration"
		`),
	}

	cmd.AddCommand(
		newListCmd(),
		newShowCmd(),
	)

	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <sysinfo path>",
		Short: "list the section names in a sysinfo dump",
		Example: heredoc.Doc(`
		$ sginfo section list proxysg01.sysinfo
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := report.Sections(args[0]); err != nil {
				return errors.Wrap(err, "section list")
			}
			return nil
		},
	}
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <sysinfo path> <section name>",
		Short: "print the raw body of one section",
		Example: heredoc.Doc(`
		$ sginfo section show proxysg01.sysinfo "TCP/IP Routing Table"
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := report.Section(args[0], args[1]); err != nil {
				return errors.Wrap(err, "section show")
			}
			return nil
		},
	}
	return cmd
}
