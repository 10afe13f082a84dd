package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dgallion1/brandpost/internal/chunker"
	"github.com/dgallion1/brandpost/internal/parser"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Convert the PDF directory into Markdown chunks",
	Long: `chunk parses every PDF in PDF_DIR and prints one line per chunk. With
--save the store is written to CHUNKS_PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(os.Stderr)
		save, _ := cmd.Flags().GetBool("save")
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.PDFDir = dir
		}

		c := chunker.New(&parser.PDFParser{Config: cfg.Parser()}, cfg.Chunker(), log)
		store, err := c.Chunk(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tTYPE\tFILE\tBYTES")
		for _, k := range store.Keys() {
			ch := store[k]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", k, ch.Type, ch.Filename, len(ch.Text))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if save {
			if err := chunker.Save(cfg.ChunksPath, store); err != nil {
				return err
			}
			log.Info("saved chunks", "path", cfg.ChunksPath, "chunks", len(store))
		}
		return nil
	},
}

func init() {
	chunkCmd.Flags().Bool("save", false, "write the chunk store to CHUNKS_PATH")
	chunkCmd.Flags().String("dir", "", "PDF directory (overrides PDF_DIR)")

	rootCmd.AddCommand(chunkCmd)
}
