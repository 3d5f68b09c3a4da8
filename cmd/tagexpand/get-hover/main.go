package get_hover

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tagexpand/pkg/hover"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	filePath  string
	line      int
	character int

	fs  afero.Fs
	out io.Writer
}

func NewGetHoverCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "get-hover [file-path] [line] [character]",
		Short: "describe the shorthand under a zero-based position in a document",
	}

	cmd.Args = cobra.ExactArgs(3)

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
		me.fs = afero.NewOsFs()
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	content, err := afero.ReadFile(me.fs, me.filePath)
	if err != nil {
		return errors.Errorf("failed to read document: %w", err)
	}

	info, err := hover.BuildHoverResponse(ctx, string(content), me.line, me.character)
	if err != nil {
		return errors.Errorf("failed to build hover: %w", err)
	}

	// a nil hover encodes as null
	encoder := json.NewEncoder(me.out)
	if err := encoder.Encode(info); err != nil {
		return errors.Errorf("failed to encode hover: %w", err)
	}

	return nil
}
