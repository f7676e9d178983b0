package commands

import (
	"github.com/spf13/cobra"

	"zeroize/internal/app"
	"zeroize/internal/handle"
)

var appCtx *app.App

func Execute() error {
	root := &cobra.Command{
		Use:   "zeroize",
		Short: "Hold sensitive strings in wipeable memory",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.New(handle.NewRegistry())
		},
	}

	root.AddCommand(holdCmd(), checkCmd())
	return root.Execute()
}
