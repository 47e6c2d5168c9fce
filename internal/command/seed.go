package command

import (
	"errors"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/syllabusapp/syllabus/internal/seed"
)

func seedCommand() *cobra.Command {
	var userCount, courseCount int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample users and courses",
		Long: "Generates sample users and courses for local development. Every generated\n" +
			"user logs in with the password \"" + seed.Password + "\". Set the SEED environment\n" +
			"variable for reproducible data.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			_, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			seedVal := seed.Seed()
			users, err := seed.Populate(cmd.Context(), store, gofakeit.New(seedVal), seed.Counts{
				Users:   userCount,
				Courses: courseCount,
			})
			if err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(),
				"database seeded",
				slog.Uint64("seed", seedVal),
				slog.Int("users", len(users)),
				slog.Int("courses", courseCount),
				slog.String("first_login", users[0].EmailAddress),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&userCount, "users", 5, "number of sample users to create")
	cmd.Flags().IntVar(&courseCount, "courses", 20, "number of sample courses to create")
	return cmd
}
