package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one blog post and print it as Markdown",
	Long: `generate drafts a post on --purpose, rewrites it in --tone when given and
translates it into --language when given. The saved chunk store is used if
present; otherwise the PDF directory is chunked first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(os.Stderr)
		purpose, _ := cmd.Flags().GetString("purpose")
		language, _ := cmd.Flags().GetString("language")
		tone, _ := cmd.Flags().GetString("tone")
		rechunk, _ := cmd.Flags().GetBool("rechunk")

		store, err := buildCorpus(cmd.Context(), cfg, log, rechunk)
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("no saved chunks, chunking pdf dir", "dir", cfg.PDFDir)
			store, err = buildCorpus(cmd.Context(), cfg, log, true)
		}
		if err != nil {
			return err
		}

		svc, err := buildService(cfg, store, nil, log)
		if err != nil {
			return err
		}
		if tone != "" {
			svc.SetTone(tone)
		}

		md, err := svc.Generate(cmd.Context(), purpose, language)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("purpose", "", "topic of the post")
	generateCmd.Flags().String("language", "", "target language (English skips translation)")
	generateCmd.Flags().String("tone", "", "tone to rewrite the draft in")
	generateCmd.Flags().Bool("rechunk", false, "rebuild the chunk store from PDF_DIR first")
	generateCmd.MarkFlagRequired("purpose")

	rootCmd.AddCommand(generateCmd)
}
