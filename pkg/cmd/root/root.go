package root

import (
	"github.com/spf13/cobra"

	archiveCmd "github.com/swg-tools/sginfo/pkg/cmd/archive"
	fetchCmd "github.com/swg-tools/sginfo/pkg/cmd/fetch"
	parseCmd "github.com/swg-tools/sginfo/pkg/cmd/parse"
	sectionCmd "github.com/swg-tools/sginfo/pkg/cmd/section"
	serverCmd "github.com/swg-tools/sginfo/pkg/cmd/server"
	versionCmd "github.com/swg-tools/sginfo/pkg/cmd/version"
)

func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sginfo <command>",
		Short:         "ProxySG sysinfo toolkit: sginfo",
		Long:          "ProxySG sysinfo toolkit: sginfo",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(
		parseCmd.NewCmd(),
		sectionCmd.NewCmd(),
		fetchCmd.NewCmd(),
		archiveCmd.NewCmdArchive(),
		serverCmd.NewCmd(),
		versionCmd.NewCmd(),
	)

	return cmd
}
