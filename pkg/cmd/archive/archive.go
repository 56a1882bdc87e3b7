package archive

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	archiveAddCmd "github.com/swg-tools/sginfo/pkg/cmd/archive/add"
	archiveInitCmd "github.com/swg-tools/sginfo/pkg/cmd/archive/init"
	archivePullCmd "github.com/swg-tools/sginfo/pkg/cmd/archive/pull"
	archiveSearchCmd "github.com/swg-tools/sginfo/pkg/cmd/archive/search"
)

func NewCmdArchive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <subcommand>",
		Short: "sginfo report archive operation",
		Example: heredoc.Doc(`
			$ sginfo archive init
			$ sginfo archive add proxysg01.sysinfo proxysg02.sysinfo.gz
			$ sginfo archive search serial 4211000000
			$ sginfo archive search list
			$ sginfo archive search metadata
			$ sginfo archive pull
			$ sginfo archive pull ghcr.io/swg-tools/sginfo-archive:latest
		`),
	}

	cmd.AddCommand(archiveInitCmd.NewCmd())
	cmd.AddCommand(archiveAddCmd.NewCmd())
	cmd.AddCommand(archiveSearchCmd.NewCmd())
	cmd.AddCommand(archivePullCmd.NewCmd())

	return cmd
}
