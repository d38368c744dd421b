// Command chewing-cli is the dictionary maintenance tool: init-database
// builds a trie from a tsi.src source file, info prints a trie's
// metadata, and dump emits it back out as tsi.src or CSV.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/zhuyin"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chewing-cli",
		Short: "Maintenance tool for gochewing phrase dictionaries",
	}
	root.AddCommand(newInitDatabaseCmd(), newInfoCmd(), newDumpCmd())
	return root
}

func newInitDatabaseCmd() *cobra.Command {
	var (
		name, copyright, license, version string
		keepWordFreq                      bool
	)
	cmd := &cobra.Command{
		Use:   "init-database <tsi.src> <output.trie>",
		Short: "Build a binary trie dictionary from a tsi.src source file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, out := args[0], args[1]
			b := dictionary.NewTrieBuilder()
			b.SetInfo(dictionary.DictionaryInfo{
				Name: name, Copyright: copyright, License: license, Version: version, Software: "gochewing",
			})
			if err := loadTsiSrc(src, b, keepWordFreq); err != nil {
				return err
			}
			stats, err := b.Build(out)
			if err != nil {
				return err
			}
			printStatistics(cmd, stats)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "dictionary name recorded in the metadata header")
	cmd.Flags().StringVarP(&copyright, "copyright", "c", "", "copyright notice recorded in the metadata header")
	cmd.Flags().StringVarP(&license, "license", "l", "", "license recorded in the metadata header")
	cmd.Flags().StringVarP(&version, "version", "r", "", "version string recorded in the metadata header")
	cmd.Flags().BoolVar(&keepWordFreq, "keep-word-freq", false, "keep a zero frequency on single-character phrases instead of dropping them")
	return cmd
}

// loadTsiSrc parses path's `<phrase> <freq> <syllable>...` lines
// (#-prefixed lines are comments) and inserts each into b.
func loadTsiSrc(path string, b *dictionary.TrieBuilder, keepWordFreq bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return fmt.Errorf("%s:%d: expected <phrase> <freq> <syllable>...", path, lineNo)
		}
		phrase := fields[0]
		freq, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid frequency %q: %w", path, lineNo, fields[1], err)
		}
		if freq == 0 && len([]rune(phrase)) == 1 && !keepWordFreq {
			continue
		}
		syllables := make([]zhuyin.Syllable, 0, len(fields)-2)
		for _, g := range fields[2:] {
			s, err := zhuyin.Parse(g)
			if err != nil {
				return fmt.Errorf("%s:%d: invalid syllable %q: %w", path, lineNo, g, err)
			}
			syllables = append(syllables, s)
		}
		if err := b.Insert(syllables, dictionary.Phrase{Text: phrase, Freq: uint32(freq)}); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	return scanner.Err()
}

func printStatistics(cmd *cobra.Command, s dictionary.Statistics) {
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Node count: %d\n", s.NodeCount)
	fmt.Fprintf(out, "Leaf count: %d\n", s.LeafCount)
	fmt.Fprintf(out, "Phrase count: %d\n", s.PhraseCount)
	fmt.Fprintf(out, "Max height: %d\n", s.MaxHeight)
	fmt.Fprintf(out, "Average height: %.2f\n", s.AvgHeight)
	fmt.Fprintf(out, "Root branch count: %d\n", s.RootBranchCount)
	fmt.Fprintf(out, "Max branch count: %d\n", s.MaxBranchCount)
	fmt.Fprintf(out, "Average branch count: %.2f\n", s.AvgBranchCount)
}

func newInfoCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info <trie>",
		Short: "Print a trie dictionary's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dictionary.Open(args[0])
			if err != nil {
				return err
			}
			defer d.Close()
			info := d.About()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", info.Name)
			fmt.Fprintf(out, "Copyright: %s\n", info.Copyright)
			fmt.Fprintf(out, "License: %s\n", info.License)
			fmt.Fprintf(out, "Version: %s\n", info.Version)
			fmt.Fprintf(out, "Software: %s\n", info.Software)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print metadata as JSON instead of plain text")
	return cmd
}

func newDumpCmd() *cobra.Command {
	var asCSV bool
	cmd := &cobra.Command{
		Use:   "dump <trie>",
		Short: "Dump a trie dictionary back out as tsi.src or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dictionary.Open(args[0])
			if err != nil {
				return err
			}
			defer d.Close()

			out := cmd.OutOrStdout()
			if asCSV {
				w := csv.NewWriter(out)
				defer w.Flush()
				it := d.Entries()
				for {
					e, ok := it.Next()
					if !ok {
						break
					}
					w.Write([]string{e.Phrase.Text, strconv.FormatUint(uint64(e.Phrase.Freq), 10), syllablesSpaced(e.Syllables)})
				}
				return w.Error()
			}

			it := d.Entries()
			for {
				e, ok := it.Next()
				if !ok {
					break
				}
				fmt.Fprintf(out, "%s %d %s\n", e.Phrase.Text, e.Phrase.Freq, syllablesSpaced(e.Syllables))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "dump in CSV form instead of tsi.src form")
	return cmd
}

func syllablesSpaced(syls []zhuyin.Syllable) string {
	parts := make([]string, len(syls))
	for i, s := range syls {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
