package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tagexpand/pkg/snippets"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath string

	fs  afero.Fs
	out io.Writer
}

func NewScaffoldCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "scaffold [file-path]",
		Short: "print the component scaffold for a file, indented per .editorconfig",
	}

	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.filePath = args[0]
		me.fs = afero.NewOsFs()
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	path, err := filepath.Abs(me.filePath)
	if err != nil {
		return errors.Errorf("failed to resolve path %s: %w", me.filePath, err)
	}

	style, err := snippets.StyleFor(me.fs, path)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("reading editorconfig, using default indentation")
		style = snippets.DefaultStyle
	}

	body, err := snippets.Scaffold(filepath.Base(path), style)
	if err != nil {
		return errors.Errorf("failed to scaffold %s: %w", path, err)
	}

	if _, err := fmt.Fprint(me.out, body); err != nil {
		return errors.Errorf("failed to write scaffold: %w", err)
	}

	return nil
}
