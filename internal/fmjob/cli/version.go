package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
	"github.com/ehsaniara/fmjob/pkg/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !common.JSONOutput {
				fmt.Fprint(out, version.GetLongVersion())
				return nil
			}

			data, err := json.MarshalIndent(version.GetBuildInfo(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
}
