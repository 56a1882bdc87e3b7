package parse

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/swg-tools/sginfo/pkg/report"
)

func NewCmd() *cobra.Command {
	options := struct {
		json bool
		cpe  bool
	}{
		json: false,
		cpe:  false,
	}

	cmd := &cobra.Command{
		Use:   "parse (<sysinfo path>)",
		Short: "parse a sysinfo dump",
		Example: heredoc.Doc(`
		$ sginfo parse
		$ sginfo parse proxysg01.sysinfo
		$ sginfo parse --json proxysg01.sysinfo.gz
		$ sginfo parse --cpe proxysg01.sysinfo
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "sysinfo.txt"
			if len(args) == 1 {
				path = args[0]
			}

			format := "summary"
			switch {
			case options.json && options.cpe:
				return errors.New("--json and --cpe are exclusive")
			case options.json:
				format = "json"
			case options.cpe:
				format = "cpe"
			}

			if err := report.Report(path, report.WithFormat(format)); err != nil {
				return errors.Wrap(err, "parse")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&options.json, "json", "", options.json, "print the full parse result as json")
	cmd.Flags().BoolVarP(&options.cpe, "cpe", "", options.cpe, "print the derived cpe name")

	return cmd
}
