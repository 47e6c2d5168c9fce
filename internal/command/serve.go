package command

import (
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/syllabusapp/syllabus/internal/api"
	"github.com/syllabusapp/syllabus/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the course management REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			grp, ctx := errgroup.WithContext(cmd.Context())

			srv := api.New(cfg, logger, store)
			if _, err := server.Serve(ctx, grp, logger, cfg.Address, srv); err != nil {
				return err
			}
			return grp.Wait()
		},
	}
}
