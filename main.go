package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	modeWords     = "words"     // lexical counts, code + markup + config files
	modeCode      = "code"      // lexical counts, code files only
	modeLanguages = "languages" // one count per file, by language
)

var (
	modeName        string
	excludeFile     string
	stopwordSource  string
	noIgnore        bool
	numThreads      int
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string
	linkDepth       int
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "nimbus [SOURCE]",
	Short: "Nimbus renders a codebase's vocabulary or language mix as a wordcloud.",
	Long: `Nimbus scans a directory tree (by default the parent of its own install
directory), tokenizes text-like files, filters stopwords, and hands the
aggregated frequencies to a render adapter. SOURCE may also be a git URL or
a web URL.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		source := defaultRoot()
		if len(args) == 1 {
			source = args[0]
		}
		return run(source)
	},
}

func run(source string) error {
	mode := strings.ToLower(modeName)
	switch mode {
	case modeWords, modeCode, modeLanguages:
	default:
		return fmt.Errorf("unsupported mode: %s (use words, code, or languages)", modeName)
	}

	patterns, err := loadExcludePatterns(resolveExcludeFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Proceeding with no exclusions.")
		patterns = nil
	}
	matcher := newExcludeMatcher(patterns)
	fmt.Printf("Loaded %d exclusion patterns\n", len(patterns))

	var table FrequencyTable
	var summary RunSummary

	kind := classifySource(source)
	switch kind {
	case sourceWeb:
		if mode == modeLanguages {
			return fmt.Errorf("language distribution needs a file tree, not a web URL")
		}
		stop := loadStopwords(stopwordSource)
		pages, skipped := collectWebPages(source, linkDepth)
		if len(pages) == 0 {
			return fmt.Errorf("no content fetched from %s", source)
		}
		table, summary = aggregateWebWords(pages, stop)
		summary.FilesSkipped = skipped

	default:
		root := source
		if kind == sourceGit {
			cloned, cleanup, err := cloneScanSource(source)
			if err != nil {
				return err
			}
			defer cleanup()
			root = cloned
		}

		exts := fullExtensions
		if mode != modeWords {
			exts = codeExtensions
		}

		var files []FileRecord
		stats, err := collectFiles(root, exts, matcher, !noIgnore, func(rec FileRecord) {
			files = append(files, rec)
		})
		if err != nil {
			return err
		}

		if mode == modeLanguages {
			table, summary = aggregateLanguages(files, loadLanguageMap())
		} else {
			stop := loadStopwords(stopwordSource)
			table, summary = aggregateWords(files, stop, numThreads)
		}
		summary.FilesSkipped = stats.Skipped
	}

	fmt.Printf("Files processed: %d\n", summary.FilesProcessed)
	fmt.Printf("Files skipped: %d\n", summary.FilesSkipped)
	if mode != modeLanguages {
		fmt.Printf("Total tokens counted: %d\n", summary.TotalTokens)
	}
	fmt.Printf("Unique labels: %d\n", summary.UniqueLabels)

	cfg := renderConfigFor(mode)
	var renderer Renderer
	if pdfOutputFile != "" {
		renderer = &PDFRenderer{OutputFile: pdfOutputFile}
	} else {
		renderer = &TextRenderer{OutputFile: outputFile, ToClipboard: copyToClipboard}
	}
	return renderer.Render(table, cfg)
}

type sourceType int

const (
	sourceLocal sourceType = iota
	sourceGit
	sourceWeb
)

// classifySource decides how a SOURCE argument is scanned. Git detection
// runs first: an https clone URL ending in .git must be cloned, not
// fetched as a web page.
func classifySource(source string) sourceType {
	switch {
	case isGitURL(source):
		return sourceGit
	case isWebURL(source):
		return sourceWeb
	default:
		return sourceLocal
	}
}

// defaultRoot is the parent of the directory holding the executable, the
// same implicit root the original tool scanned from.
func defaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(filepath.Dir(exe))
}

// resolveExcludeFile prefers the flag, then exclude.txt next to the
// executable.
func resolveExcludeFile() string {
	if excludeFile != "" {
		return excludeFile
	}
	exe, err := os.Executable()
	if err != nil {
		return "exclude.txt"
	}
	return filepath.Join(filepath.Dir(exe), "exclude.txt")
}

// renderConfigFor builds the render options for a mode, starting from the
// classic per-mode defaults and applying any values set in the config.
func renderConfigFor(mode string) RenderConfig {
	cfg := RenderConfig{
		Width:           1600,
		Height:          1600,
		BackgroundColor: "white",
		MaxWords:        200,
		Colormap:        "viridis",
		RelativeScaling: 0.5,
		MinFontSize:     10,
	}
	if mode == modeLanguages {
		cfg.Height = 800
		cfg.MaxWords = 50
		cfg.Colormap = "Set1"
		cfg.MinFontSize = 12
	}

	if viper.IsSet("render.width") {
		cfg.Width = viper.GetInt("render.width")
	}
	if viper.IsSet("render.height") {
		cfg.Height = viper.GetInt("render.height")
	}
	if viper.IsSet("render.background_color") {
		cfg.BackgroundColor = viper.GetString("render.background_color")
	}
	if viper.IsSet("render.max_words") {
		cfg.MaxWords = viper.GetInt("render.max_words")
	}
	if viper.IsSet("render.colormap") {
		cfg.Colormap = viper.GetString("render.colormap")
	}
	if viper.IsSet("render.relative_scaling") {
		cfg.RelativeScaling = viper.GetFloat64("render.relative_scaling")
	}
	if viper.IsSet("render.min_font_size") {
		cfg.MinFontSize = viper.GetInt("render.min_font_size")
	}
	return cfg
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&modeName, "mode", "m", modeWords, "Aggregation mode: words, code, or languages")
	viper.BindPFlag("mode", rootCmd.Flags().Lookup("mode"))
	rootCmd.Flags().StringVarP(&excludeFile, "exclude-file", "e", "", "Path to the exclusion pattern file (default: exclude.txt next to the binary)")
	viper.BindPFlag("exclude_file", rootCmd.Flags().Lookup("exclude-file"))
	rootCmd.Flags().StringVar(&stopwordSource, "stopwords", "", "Stopword corpus: local path or http(s) URL (optional)")
	viper.BindPFlag("stopwords", rootCmd.Flags().Lookup("stopwords"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "Number of tokenizer workers (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the ranked summary to a file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the ranked summary to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Render the wordcloud to a PDF at the given path")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))
	rootCmd.Flags().IntVar(&linkDepth, "link-depth", 0, "Maximum link depth when SOURCE is a web URL")
	viper.BindPFlag("link_depth", rootCmd.Flags().Lookup("link-depth"))
}

// initConfig reads the config file and NIMBUS_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "nimbus"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NIMBUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}

	syncFlagsFromConfig()
}

// syncFlagsFromConfig resolves every bound option through viper, so a value
// from the config file or environment applies whenever the flag was not set
// on the command line (viper's binding keeps flag > config > default).
func syncFlagsFromConfig() {
	modeName = viper.GetString("mode")
	excludeFile = viper.GetString("exclude_file")
	stopwordSource = viper.GetString("stopwords")
	noIgnore = viper.GetBool("no_ignore")
	numThreads = viper.GetInt("threads")
	outputFile = viper.GetString("file")
	copyToClipboard = viper.GetBool("clipboard")
	pdfOutputFile = viper.GetString("pdf")
	linkDepth = viper.GetInt("link_depth")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
