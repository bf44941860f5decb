package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/japaniel/wordgen/pkg/session"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		mode   string
		count  int
		length int
		export string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one batch of words, phrases or names",
		Long: `Generate one batch and print its summary line. Words need --length when the
lexicon is built from letters; dictionary lexicons pick whole words instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := session.ParseMode(mode)
			if err != nil {
				return err
			}
			s, err := a.newSession(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.Generate(session.Request{Mode: m, Count: count, Length: length})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary)

			if cmd.Flags().Changed("export") {
				if export == "" {
					export = a.cfg.History
				}
				if err := s.ExportHistory(export); err != nil {
					return err
				}
				a.logger.Debug("summary exported", slog.String("path", export))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "word", "What to generate: word, phrase or name")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many items to generate (1-100)")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Letters per word (1-20)")
	cmd.Flags().StringVar(&export, "export", "", "Write the session history to this file (empty uses WORDGEN_HISTORY)")
	return cmd
}
