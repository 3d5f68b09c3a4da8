package get_completions

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tagexpand/pkg/completion"
	"github.com/walteh/tagexpand/pkg/config"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath   string
	line       int
	character  int
	configPath string
	triggered  bool

	fs  afero.Fs
	out io.Writer
}

func NewGetCompletionsCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "get-completions [file-path] [line] [character]",
		Short: "get completions for a zero-based position in a document",
	}

	cmd.Args = cobra.ExactArgs(3)

	cmd.Flags().BoolVar(&me.triggered, "triggered", false, "the request came from typing a character; answer only after a trigger character")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.filePath = args[0]
		var err error
		me.line, err = strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("invalid line number: %w", err)
		}
		me.character, err = strconv.Atoi(args[2])
		if err != nil {
			return errors.Errorf("invalid character number: %w", err)
		}
		// only registered when run under the root command
		me.configPath, _ = cmd.Flags().GetString("config")
		me.fs = afero.NewOsFs()
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) loadConfig(docDir string) (*config.Config, error) {
	loader := config.NewLoader(me.fs)
	if me.configPath != "" {
		return loader.Load(me.configPath)
	}
	return loader.Discover(docDir)
}

func (me *Handler) Run(ctx context.Context) error {
	path, err := filepath.Abs(me.filePath)
	if err != nil {
		return errors.Errorf("failed to resolve path %s: %w", me.filePath, err)
	}

	content, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return errors.Errorf("failed to read document: %w", err)
	}

	cfg, err := me.loadConfig(filepath.Dir(path))
	if err != nil {
		return errors.Errorf("failed to load config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.Path).Msg("config loaded")

	provider := completion.NewProvider(cfg, me.fs)
	get := provider.GetCompletions
	if me.triggered {
		get = provider.GetTriggeredCompletions
	}

	items, err := get(ctx, path, string(content), me.line, me.character)
	if err != nil {
		return errors.Errorf("failed to get completions: %w", err)
	}

	if items == nil {
		items = []completion.Item{}
	}

	encoder := json.NewEncoder(me.out)
	if err := encoder.Encode(items); err != nil {
		return errors.Errorf("failed to encode completions: %w", err)
	}

	return nil
}
