package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/internal/config"
	"github.com/npillmayer/pinsearch/internal/factory"
	"github.com/npillmayer/pinsearch/phonetic"
	"github.com/spf13/cobra"
)

type matchOptions struct {
	configPath string
	pinyin     bool
	romaji     bool
	partial    bool
	notations  []string
	verbose    bool
}

func newMatchCmd() *cobra.Command {
	var o matchOptions
	cmd := &cobra.Command{
		Use:   "match PATTERN [TEXT...]",
		Short: "Match a pattern against text",
		Long: `Match a pattern against each TEXT argument, or against each line of standard
input if no TEXT is given, and print the matching ones with the match
highlighted.

Matching follows the plugin configuration: the defaults, or the file named
by --config. Flags override single settings.`,
		Example: `  # pinyin initials
  pinsearch match zw 中文.txt 英文.txt

  # romaji, with partial syllables at the end of the pattern
  pinsearch match --romaji --partial ky きょうと.md

  # filter a file list
  dir /b | pinsearch match pinyin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.newFactory(cmd)
			if err != nil {
				return err
			}
			m := f.Compile(args[0])
			if o.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "pattern %q: %s\n", m.Pattern(), m.Engine())
			}
			if len(args) > 1 {
				for _, text := range args[1:] {
					printMatch(cmd.OutOrStdout(), m, text)
				}
				return nil
			}
			return matchLines(cmd.InOrStdin(), cmd.OutOrStdout(), m)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "Plugin configuration file")
	flags.BoolVar(&o.pinyin, "pinyin", true, "Enable pinyin search")
	flags.BoolVar(&o.romaji, "romaji", false, "Enable romaji search")
	flags.BoolVar(&o.partial, "partial", false, "Allow the pattern to end inside a syllable")
	flags.StringSliceVar(&o.notations, "notations", nil,
		"Pinyin notations: ascii, ascii_tone, ascii_first_letter, diletter_xiaohe")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Report the selected engine")
	return cmd
}

// newFactory builds a matcher factory from the configuration and the flags
// set explicitly on cmd.
func (o matchOptions) newFactory(cmd *cobra.Command) (*factory.Factory, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded.Config
	}
	flags := cmd.Flags()
	if flags.Changed("pinyin") {
		cfg.PinyinSearch.Enable = o.pinyin
	}
	if flags.Changed("romaji") {
		cfg.RomajiSearch.Enable = o.romaji
	}
	if flags.Changed("notations") {
		cfg.PinyinSearch.Notations = o.notations
	}
	if flags.Changed("partial") {
		partial := o.partial
		cfg.PinyinSearch.AllowPartialMatch = &partial
		cfg.RomajiSearch.AllowPartialMatch = partial
	}
	if _, err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return factory.New(cfg, phonetic.Default()), nil
}

func matchLines(r io.Reader, w io.Writer, m *pinsearch.Matcher) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		printMatch(w, m, scanner.Text())
	}
	return scanner.Err()
}

func printMatch(w io.Writer, m *pinsearch.Matcher, text string) {
	if match, ok := m.Find(text); ok {
		fmt.Fprintln(w, highlight(text, match, color.New(color.FgGreen, color.Bold).SprintFunc()))
	}
}

// highlight paints the matched part of text.
func highlight(text string, match pinsearch.Match, paint func(a ...interface{}) string) string {
	if match.Start == match.End {
		return text
	}
	return text[:match.Start] + paint(text[match.Start:match.End]) + text[match.End:]
}
