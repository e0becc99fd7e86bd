package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Text writes page as plain text.
func Text(w io.Writer, page Page) error {
	var b strings.Builder

	switch {
	case page.Busy:
		fmt.Fprintf(&b, "%s\n", page.SubmitLabel)
	case page.Alert != "":
		fmt.Fprintf(&b, "Error: %s\n", page.Alert)
	case page.Result != nil:
		writeResult(&b, page.Result)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeResult(b *strings.Builder, result *ResultView) {
	fmt.Fprintf(b, "Subject:  %s\n", result.Subject)
	fmt.Fprintf(b, "Filename: %s\n", result.Filename)

	if len(result.Topics) > 0 {
		b.WriteString("\nTopics\n")
		for i, topic := range result.Topics {
			fmt.Fprintf(b, "  %d. %s\n", i+1, topic.Title)
			for _, sub := range topic.Subtopics {
				fmt.Fprintf(b, "     - %s\n", sub)
			}
		}
	}

	if result.Advisory != "" {
		fmt.Fprintf(b, "\nNote: %s\n", result.Advisory)
	}

	if result.Videos != nil {
		b.WriteString("\nRecommended videos\n")
		writeVideoTable(b, result.Videos)
	}
}

func writeVideoTable(w io.Writer, groups []VideoGroupView) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Topic", "Title", "Channel", "URL"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")

	for _, group := range groups {
		if group.Placeholder != "" {
			table.Append([]string{group.Topic, group.Placeholder, "", ""})
			continue
		}
		for i, video := range group.Videos {
			topic := ""
			if i == 0 {
				topic = group.Topic
			}
			table.Append([]string{topic, video.Title, video.Channel, video.URL})
		}
	}
	table.Render()
}
