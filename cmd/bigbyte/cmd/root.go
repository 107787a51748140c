package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bigbyte/bigbyte"
)

var rootCmd = &cobra.Command{
	Use:   "bigbyte",
	Short: "Block-backed byte array tool",
	Long:  "Inspect and extract byte ranges from files loaded as sparse block-backed arrays.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/bigbyte/config.yaml)")
	rootCmd.PersistentFlags().Int("block-size", 0, "block size for loaded arrays (default: 1000)")
	rootCmd.PersistentFlags().Int("concurrency", 0, "parallel block loads (default: 4)")

	viper.BindPFlag("block_size", rootCmd.PersistentFlags().Lookup("block-size"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BIGBYTE")
	viper.AutomaticEnv()
	viper.SetDefault("block_size", bigbyte.DefaultBlockSize)
	viper.SetDefault("concurrency", bigbyte.DefaultConcurrency)

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bigbyte")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "bigbyte")
	}
	return ".bigbyte"
}

func getBlockSize() int { return viper.GetInt("block_size") }

func getConcurrency() int { return viper.GetInt("concurrency") }

// loadArray reads a whole file into a sparse array; all-zero blocks stay
// unmaterialized, so fill factor reflects the file's actual data regions.
func loadArray(cmd *cobra.Command, path string) (*bigbyte.BlockArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return bigbyte.ReadArrayAt(cmd.Context(), f, uint64(info.Size()),
		bigbyte.WithBlockSize(getBlockSize()),
		bigbyte.WithConcurrency(getConcurrency()),
	)
}
