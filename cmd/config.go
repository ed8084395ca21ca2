package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/bingo/internal/config"
	"github.com/arcanaland/bingo/internal/joker"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage bingo settings and the joker image",
	Long:  `Commands for managing the card model, page layout and joker image.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(config.GetDataDir(), 0755); err != nil {
			return fmt.Errorf("error creating data directory: %w", err)
		}
		fmt.Println("Data directory initialized at:", config.GetDataDir())

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n", config.GetConfigFilePath())
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}

		if data, err := config.LoadJoker(); err != nil {
			return err
		} else if data == nil {
			fmt.Println("\n# no joker image stored")
		} else {
			fmt.Printf("\n# joker image: %s (%d bytes)\n", config.GetJokerPath(), len(data))
		}
		return nil
	},
}

// configSetJokerCmd represents the config set-joker command
var configSetJokerCmd = &cobra.Command{
	Use:   "set-joker [image]",
	Short: "Store the image drawn in joker cells",
	Long: `Set-joker stores an SVG, PNG or JPEG image as the joker. The image is checked
by rasterizing it once before it is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading joker image: %w", err)
		}

		// Make sure the image can be rendered before storing it
		if _, err := joker.Rasterize(data, joker.White); err != nil {
			return fmt.Errorf("not a usable joker image: %w", err)
		}

		if err := config.SaveJoker(data); err != nil {
			return err
		}
		logger.Debug("stored joker", "path", config.GetJokerPath(), "bytes", len(data))

		fmt.Printf("Joker image set from: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetJokerCmd)
}
