package resolve

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tagexpand/pkg/resolver"
	"gitlab.com/tozd/go/errors"
)

var ErrNoToken = errors.Base("no shorthand at cursor")

type Handler struct {
	line   string
	offset int
	all    bool
	out    io.Writer
}

func NewResolveCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "resolve [line] [offset]",
		Short: "resolve the shorthand around a byte offset in a single line",
	}

	cmd.Args = cobra.ExactArgs(2)

	cmd.Flags().BoolVar(&me.all, "all", false, "also print the default-tag variant")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.line = args[0]
		var err error
		me.offset, err = strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("invalid offset: %w", err)
		}
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	var result any

	if me.all {
		all := resolver.ResolveAll(me.line, me.offset)
		if len(all) == 0 {
			return errors.Errorf("offset %d: %w", me.offset, ErrNoToken)
		}
		result = all
	} else {
		exp, ok := resolver.Resolve(me.line, me.offset)
		if !ok {
			return errors.Errorf("offset %d: %w", me.offset, ErrNoToken)
		}
		result = exp
	}

	zerolog.Ctx(ctx).Debug().Str("line", me.line).Int("offset", me.offset).Msg("resolved shorthand")

	encoder := json.NewEncoder(me.out)
	if err := encoder.Encode(result); err != nil {
		return errors.Errorf("failed to encode expansion: %w", err)
	}

	return nil
}
