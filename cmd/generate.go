package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/config"
	"github.com/arcanaland/bingo/internal/deck"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a deck of bingo cards from the configured model",
	Long: `Generate creates random bingo cards using the [model] section of the config
file: card size, number range or word list, column ordering and joker.

Examples:
  bingo generate -n 8 -o deck.json
  bingo generate -n 4 --seed 42 | bingo render /dev/stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		logger.Debug("generating deck", "count", count, "seed", seed, "type", cfg.Model.TypeOfBingo)

		d, err := deck.Generate(cfg.Model, count, rand.New(rand.NewSource(seed)))
		if err != nil {
			return fmt.Errorf("error generating deck: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return d.Encode(os.Stdout)
		}
		if err := d.SaveDeck(output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✅ Generated %d cards into %s\n", len(d), colorize.HiWhiteString(output))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("count", "n", 4, "number of cards")
	generateCmd.Flags().StringP("output", "o", "", "deck file to write (default stdout)")
	generateCmd.Flags().Int64("seed", 0, "random seed for reproducible decks")
}
