// Package cli is for command line interactions with the dnakit toolkit.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dnakit/internal/config"
	"dnakit/internal/version"
	"dnakit/seq"
)

var (
	cfgFile   string
	iupacMode bool
	outFormat string
	chunkSize int

	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dnakit",
	Short: "Elementary DNA-sequence operations: clean, count, transcribe, reverse-complement",
	Long: `dnakit is a stateless toolkit for DNA sequence strings: validation and
cleaning, nucleotide counting and GC content, codon splitting, DNA to RNA
transcription, and IUPAC-aware (reverse-)complement. Inputs are plain
sequences on the command line or FASTA-like text files ("-" for stdin,
gzip handled transparently).`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dnakit:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.dnakit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&iupacMode, "iupac", false, "accept IUPAC degenerate codes (permissive alphabet)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "", "output format: text | json | yaml")
	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", 0, "streaming block size in bytes (0 = config default)")
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".dnakit")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("dnakit")
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "dnakit: config:", err)
			os.Exit(1)
		}
	}
	c, err := config.FromViper(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, "dnakit: config:", err)
		os.Exit(1)
	}
	cfg = c
}

// alphabet resolves the active alphabet: --iupac wins, then the config file.
func alphabet() seq.Alphabet {
	if iupacMode {
		return seq.IUPAC
	}
	if ab, ok := seq.ParseAlphabet(cfg.Alphabet); ok {
		return ab
	}
	return seq.StrictDNA
}

// format resolves the active output format: --output wins, then the config
// file.
func format() string {
	if outFormat != "" {
		return outFormat
	}
	if cfg.Output != "" {
		return cfg.Output
	}
	return "text"
}

// blockSize resolves the streaming chunk size.
func blockSize() int {
	if chunkSize > 0 {
		return chunkSize
	}
	if cfg.ChunkSize > 0 {
		return cfg.ChunkSize
	}
	return seq.DefaultChunkSize
}
