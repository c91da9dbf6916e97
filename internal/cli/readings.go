package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/pinsearch"
	"github.com/npillmayer/pinsearch/phonetic"
	"github.com/spf13/cobra"
)

func newReadingsCmd() *cobra.Command {
	var notations []string
	cmd := &cobra.Command{
		Use:   "readings TEXT...",
		Short: "Show the phonetic readings a pattern can match",
		Long: `Show the pinyin readings of each Han character of TEXT, spelled in every
selected notation, and the romaji of each run of kana. A TEXT which is a
numbered pinyin syllable like "zhong1" is spelled out directly.`,
		Example: `  pinsearch readings 银行
  pinsearch readings --notations diletter_xiaohe 中文
  pinsearch readings lve4 きょうと`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := pinsearch.ParseNotations(notations)
			if err != nil {
				return err
			}
			res := phonetic.Default()
			w := cmd.OutOrStdout()
			for _, text := range args {
				if err := printReadings(w, res, text, n); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&notations, "notations",
		[]string{"ascii", "ascii_tone", "ascii_first_letter", "diletter_xiaohe"},
		"Pinyin notations to spell readings in")
	return cmd
}

func printReadings(w io.Writer, res *phonetic.Resources, text string, n pinsearch.Notation) error {
	if isSpelling(text) {
		syl, ok := res.Pinyin.Syllable(strings.ToLower(text))
		if !ok {
			return fmt.Errorf("unknown pinyin syllable %q", text)
		}
		fmt.Fprintf(w, "%s\t%s\n", syl, spell(syl, n))
		return nil
	}
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if isKana(runes[i]) {
			j := i
			for j < len(runes) && isKana(runes[j]) {
				j++
			}
			kana := string(runes[i:j])
			fmt.Fprintf(w, "%s\t%s\n", kana, res.Romaji.Romanize(kana))
			i = j - 1
			continue
		}
		for _, syl := range res.Pinyin.Readings(runes[i]) {
			fmt.Fprintf(w, "%c\t%s\t%s\n", runes[i], syl, spell(syl, n))
		}
	}
	return nil
}

// spell lists the codes of syl in each notation of n.
func spell(syl *pinsearch.Syllable, n pinsearch.Notation) string {
	var codes []string
	n.Each(func(single pinsearch.Notation) {
		if code := syl.Code(single); code != "" {
			codes = append(codes, single.String()+"="+code)
		}
	})
	return strings.Join(codes, " ")
}

func isSpelling(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func isKana(r rune) bool {
	return r >= 0x3040 && r <= 0x30FF
}
