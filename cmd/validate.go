package cmd

import (
	"fmt"

	"github.com/arcanaland/bingo/internal/config"
	"github.com/arcanaland/bingo/internal/deck"
	"github.com/arcanaland/bingo/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck.json]",
	Short: "Validate a deck of bingo cards",
	Long: `Validate checks that every card of a deck is a non-empty rectangular grid and
that the configured page layout fits. It also warns about duplicate or empty cells.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return err
		}

		results := validator.NewValidator(d, cfg.Layout()).Validate()

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if results.Valid() {
			fmt.Printf("✅ Deck '%s' with %d cards is valid.\n", deckPath, len(d))
		} else {
			fmt.Printf("❌ Deck '%s' has %d validation errors:\n", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
