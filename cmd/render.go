package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/bingo/internal/config"
	"github.com/arcanaland/bingo/internal/deck"
	"github.com/arcanaland/bingo/internal/joker"
	"github.com/arcanaland/bingo/internal/render"
	"github.com/arcanaland/bingo/internal/validator"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [deck.json]",
	Short: "Render a deck of bingo cards into a PDF",
	Long: `Render draws every card of a deck into a landscape PDF, four cards per page.

The deck is a JSON array of cards; each card is an array of columns and each
column an array of cell values. A null cell is a joker and is drawn with the
joker image, which is taken from --joker or from the image stored with
'bingo config set-joker'.

Examples:
  bingo render deck.json
  bingo render deck.json -o print.pdf --joker star.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())
		prog := newProgress(logger)

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(args[0])
		if err != nil {
			return err
		}

		results := validator.NewValidator(d, cfg.Layout()).Validate()
		for _, w := range results.Warnings {
			logger.Warn(w)
		}
		if !results.Valid() {
			for _, e := range results.Errors {
				logger.Error(e)
			}
			return fmt.Errorf("deck %s is not valid", args[0])
		}

		src, err := jokerSource(cmd, cfg)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.Output.FileName
		}

		r := render.New(cfg.Layout(), render.WithLogger(logger))
		if err := r.RenderFile(d, src, output); err != nil {
			return fmt.Errorf("error rendering deck: %w", err)
		}

		prog.done(fmt.Sprintf("Rendered %d cards on %d pages", len(d), render.Pages(len(d), cfg.Layout().CardsPerPage)))
		fmt.Printf("✅ Wrote %s\n", colorize.HiWhiteString(output))
		return nil
	},
}

// jokerSource returns the joker from the --joker flag, falling back to the
// stored joker image.
func jokerSource(cmd *cobra.Command, cfg *config.Config) (*joker.Source, error) {
	bg, err := cfg.JokerBackground()
	if err != nil {
		return nil, err
	}

	var data []byte
	if path, _ := cmd.Flags().GetString("joker"); path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading joker image: %w", err)
		}
	} else {
		data, err = config.LoadJoker()
		if err != nil {
			return nil, err
		}
	}
	return joker.NewSource(data, bg), nil
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "output file (default from config, bingo-cards.pdf)")
	renderCmd.Flags().StringP("joker", "j", "", "SVG, PNG or JPEG image drawn in joker cells")
}
