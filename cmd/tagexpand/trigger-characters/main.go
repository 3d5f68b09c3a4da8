package trigger_characters

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tagexpand/pkg/completion"
	"github.com/walteh/tagexpand/pkg/config"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	dir        string
	configPath string

	fs  afero.Fs
	out io.Writer
}

func NewTriggerCharactersCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:    "trigger-characters [dir]",
		Short:  "print the characters an editor should re-run completion on",
		Hidden: true,
	}

	cmd.Args = cobra.MaximumNArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.dir = "."
		if len(args) == 1 {
			me.dir = args[0]
		}
		me.configPath, _ = cmd.Flags().GetString("config")
		me.fs = afero.NewOsFs()
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	loader := config.NewLoader(me.fs)

	var cfg *config.Config
	var err error
	if me.configPath != "" {
		cfg, err = loader.Load(me.configPath)
	} else {
		var dir string
		dir, err = filepath.Abs(me.dir)
		if err != nil {
			return errors.Errorf("failed to resolve path %s: %w", me.dir, err)
		}
		cfg, err = loader.Discover(dir)
	}
	if err != nil {
		return errors.Errorf("failed to load config: %w", err)
	}

	provider := completion.NewProvider(cfg, me.fs)

	encoder := json.NewEncoder(me.out)
	if err := encoder.Encode(provider.TriggerCharacters()); err != nil {
		return errors.Errorf("failed to encode trigger characters: %w", err)
	}

	return nil
}
