package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fullExtensions is the words-mode set: code plus markup and config files.
var fullExtensions = extensionSet(
	".py", ".js", ".ts", ".tsx", ".jsx", ".java", ".go", ".cs", ".cpp",
	".c", ".h", ".md", ".txt", ".html", ".css", ".json", ".yaml", ".yml",
	".sh", ".rs", ".rb", ".php", ".scala", ".kt",
)

// codeExtensions is the code-only set used by the code and languages modes.
// It drops markup/config files and adds a few languages the full set omits.
var codeExtensions = extensionSet(
	".py", ".js", ".ts", ".tsx", ".jsx", ".java", ".go", ".cs", ".cpp",
	".c", ".h", ".hpp", ".sh", ".rs", ".rb", ".php", ".scala", ".kt",
	".swift", ".m", ".bash", ".pl", ".r",
)

func extensionSet(exts ...string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return set
}

// otherLanguage is the bucket for extensions the map does not know.
const otherLanguage = "Other"

// LanguageMap maps a lowercased file extension to a canonical language name.
// The distribution mode consults it read-only.
type LanguageMap map[string]string

// Language returns the canonical name for ext, or the "Other" bucket.
func (lm LanguageMap) Language(ext string) string {
	if lang, ok := lm[strings.ToLower(ext)]; ok {
		return lang
	}
	return otherLanguage
}

// defaultLanguageMap returns a fresh copy of the built-in table.
func defaultLanguageMap() LanguageMap {
	lm := make(LanguageMap, len(builtinLanguages))
	for ext, lang := range builtinLanguages {
		lm[ext] = lang
	}
	return lm
}

var builtinLanguages = map[string]string{
	".py":         "Python",
	".js":         "JavaScript",
	".ts":         "TypeScript",
	".tsx":        "TypeScript",
	".jsx":        "JavaScript",
	".java":       "Java",
	".go":         "Go",
	".rs":         "Rust",
	".c":          "C",
	".cpp":        "C++",
	".cc":         "C++",
	".cxx":        "C++",
	".h":          "C",
	".hpp":        "C++",
	".cs":         "C#",
	".rb":         "Ruby",
	".php":        "PHP",
	".swift":      "Swift",
	".kt":         "Kotlin",
	".scala":      "Scala",
	".r":          "R",
	".m":          "Objective-C",
	".sh":         "Shell",
	".bash":       "Bash",
	".pl":         "Perl",
	".lua":        "Lua",
	".vim":        "VimScript",
	".el":         "Emacs-Lisp",
	".clj":        "Clojure",
	".ex":         "Elixir",
	".erl":        "Erlang",
	".hs":         "Haskell",
	".ml":         "OCaml",
	".sql":        "SQL",
	".dockerfile": "Docker",
	".tf":         "Terraform",
	".yaml":       "YAML",
	".yml":        "YAML",
	".json":       "JSON",
	".xml":        "XML",
	".html":       "HTML",
	".css":        "CSS",
	".scss":       "SCSS",
	".sass":       "Sass",
	".less":       "Less",
	".md":         "Markdown",
	".rst":        "reStructuredText",
	".tex":        "LaTeX",
}

// languageOverlay is the languages.yml shape: language name to the
// extensions that should map to it.
type languageOverlay map[string]struct {
	Extensions []string `yaml:"extensions"`
}

// loadLanguageMap builds the run's language map: the built-in table,
// optionally overlaid with a languages.yml found in the config locations.
// A missing or unparsable overlay leaves the built-in table untouched.
func loadLanguageMap() LanguageMap {
	lm := defaultLanguageMap()

	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "nimbus"))
	}
	configPaths = append(configPaths, ".")

	for _, p := range configPaths {
		overlayPath := filepath.Join(p, "languages.yml")
		if _, err := os.Stat(overlayPath); err != nil {
			continue
		}
		data, err := os.ReadFile(overlayPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", overlayPath, err)
			break
		}
		var overlay languageOverlay
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", overlayPath, err)
			break
		}
		lm.applyOverlay(overlay)
		break
	}

	return lm
}

func (lm LanguageMap) applyOverlay(overlay languageOverlay) {
	for lang, info := range overlay {
		for _, ext := range info.Extensions {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			lm[ext] = lang
		}
	}
}
