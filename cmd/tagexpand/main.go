package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	getcompletionscmd "github.com/walteh/tagexpand/cmd/tagexpand/get-completions"
	gethovercmd "github.com/walteh/tagexpand/cmd/tagexpand/get-hover"
	resolvecmd "github.com/walteh/tagexpand/cmd/tagexpand/resolve"
	scaffoldcmd "github.com/walteh/tagexpand/cmd/tagexpand/scaffold"
	triggercharacterscmd "github.com/walteh/tagexpand/cmd/tagexpand/trigger-characters"
	logging "github.com/walteh/tagexpand/pkg/debug"
)

func main() {
	ctx := context.Background()

	var debugLogs bool

	cmd := &cobra.Command{
		Use:   "tagexpand",
		Short: "expand tag shorthand at a cursor into markup snippets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.NewLogger(os.Stderr, debugLogs, !color.NoColor)
			cmd.SetContext(logging.WithRequest(cmd.Context(), logger))
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default: discovered from the document's directory)")
	cmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "enable debug logging")

	cmd.AddCommand(resolvecmd.NewResolveCommand())
	cmd.AddCommand(getcompletionscmd.NewGetCompletionsCommand())
	cmd.AddCommand(gethovercmd.NewGetHoverCommand())
	cmd.AddCommand(scaffoldcmd.NewScaffoldCommand())
	cmd.AddCommand(triggercharacterscmd.NewTriggerCharactersCommand())

	info, ok := debug.ReadBuildInfo()
	if !ok {
		cmd.Version = "unknown"
	} else {
		cmd.Version = info.Main.Version
	}

	cmd.AddCommand(&cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(cmd.Version)
		},
		Hidden: true,
	})

	cmd.InitDefaultVersionFlag()

	cmd.SilenceUsage = true

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
