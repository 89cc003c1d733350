package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adscope/adkit/fileutil"
	"github.com/adscope/adkit/textproc"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		fromHTML       bool
		stripEmojis    bool
		minBuzzwordLen int
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Extract features, sentiment, buzzwords, and CTA phrases from text",
		Long:  "Reads text from a file or stdin, cleans it, and prints the extracted feature set. With --html the input is treated as a full HTML document and its readable text is extracted first.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			if fromHTML {
				doc := textproc.FromHTML([]byte(raw))
				if doc.Title != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Title: %s\n\n", doc.Title)
				}
				raw = doc.Text
			}

			cleaned := textproc.Clean(raw, stripEmojis)
			features := textproc.ExtractFeatures(cleaned)
			sentiment := textproc.AnalyzeSentimentIndicators(cleaned)
			buzzwords := textproc.ExtractBuzzwords(cleaned, minBuzzwordLen)
			phrases := textproc.ExtractCTAPhrases(cleaned)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderFeatureTable(features))
			fmt.Fprintf(out, "\nSentiment: positive=%d negative=%d urgency=%d\n",
				sentiment[textproc.SentimentPositiveCount],
				sentiment[textproc.SentimentNegativeCount],
				sentiment[textproc.SentimentUrgencyCount])
			if len(buzzwords) > 0 {
				fmt.Fprintf(out, "Buzzwords: %s\n", strings.Join(buzzwords, ", "))
			}
			if len(phrases) > 0 {
				fmt.Fprintf(out, "CTA phrases: %s\n", strings.Join(phrases, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromHTML, "html", false, "Treat input as an HTML document")
	cmd.Flags().BoolVar(&stripEmojis, "strip-emojis", false, "Remove emoji characters during cleanup")
	cmd.Flags().IntVar(&minBuzzwordLen, "min-buzzword-len", 3, "Minimum buzzword length in characters")

	return cmd
}

func newCleanCommand() *cobra.Command {
	var stripEmojis bool

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Print the cleaned form of the input text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), textproc.Clean(raw, stripEmojis))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stripEmojis, "strip-emojis", false, "Remove emoji characters during cleanup")

	return cmd
}

// readInput returns the text named by the single optional argument, reading
// stdin when the argument is absent or "-". File reads go through the
// encoding-fallback reader so legacy exports work.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	return fileutil.ReadTextFile(args[0])
}
