// ABOUTME: Preview command rendering a feed's items in the terminal
// ABOUTME: Runs the normal pipeline, then shows each item as Markdown via glamour

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jdichev/forest/internal/config"
	"github.com/jdichev/forest/internal/content"
	"github.com/jdichev/forest/internal/fetchfeed"
	"github.com/jdichev/forest/internal/models"
)

var previewCmd = &cobra.Command{
	Use:   "preview <url>",
	Short: "Render a feed's items in the terminal",
	Long:  "Fetch a feed and display its normalized items with markdown rendering.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		style, _ := cmd.Flags().GetString("style")

		doc, err := fetchfeed.FetchDocument(cmd.Context(), newFetcher(), args[0])
		if err != nil {
			return reportFailure(cmd, err, "url", args[0])
		}

		printDocument(cmd.OutOrStdout(), doc, limit, style)
		return nil
	},
}

func printDocument(w io.Writer, doc *models.Document, limit int, style string) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	title := doc.Title
	if title == "" {
		title = "Untitled feed"
	}
	fmt.Fprintf(w, "%s %s\n", bold(title), faint("("+string(doc.Kind)+")"))
	for _, link := range doc.Links {
		if link != "" {
			fmt.Fprintf(w, "%s\n", cyan(link))
		}
	}

	items := doc.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	for _, item := range items {
		fmt.Fprintln(w, strings.Repeat("─", config.SeparatorWidth))

		itemTitle := item.Title
		if itemTitle == "" {
			itemTitle = "Untitled"
		}
		fmt.Fprintf(w, "%s\n", bold(itemTitle))

		if published, ok := item.PublishedTime(); ok {
			fmt.Fprintf(w, "%s %s\n", faint("Published:"), published.Format(config.DateFormatLong))
		} else if item.PublishedRaw != "" {
			fmt.Fprintf(w, "%s %s\n", faint("Published:"), item.PublishedRaw)
		}
		if item.Link != "" {
			fmt.Fprintf(w, "%s %s\n", faint("Link:"), cyan(item.Link))
		}

		body := content.ItemBody(item)
		if body == "" {
			continue
		}
		fmt.Fprintln(w)

		rendered, err := glamour.Render(body, style)
		if err != nil {
			// Fall back to plain markdown if rendering fails
			fmt.Fprintln(w, body)
			continue
		}
		fmt.Fprint(w, rendered)
	}

	if len(items) < len(doc.Items) {
		fmt.Fprintln(w, strings.Repeat("─", config.SeparatorWidth))
		fmt.Fprintf(w, "%s\n", faint(fmt.Sprintf("%d more item(s) not shown", len(doc.Items)-len(items))))
	}
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntP("limit", "n", 10, "maximum number of items to show (0 for all)")
	previewCmd.Flags().String("style", "dark", "glamour style: dark, light, notty, ascii")
}
