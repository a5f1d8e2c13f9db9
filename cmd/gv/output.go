package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// printResult renders a transformation result as a task table followed by
// links and warnings.
func printResult(result *model.Result, stats *model.Stats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTEXT\tSTART\tEND\tPROGRESS\tPARENT\tTYPE")
	for _, task := range result.Tasks {
		id := task.ID
		switch {
		case task.Kind == model.KindVirtual:
			id = ui.RenderVirtual(id)
		case task.Type == model.TypeSummary:
			id = ui.RenderSummary(id)
		}
		progress := ""
		if task.Progress != nil {
			progress = fmt.Sprintf("%.0f%%", *task.Progress*100)
		}
		text := task.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			id,
			text,
			task.StartDate,
			task.EndDate,
			progress,
			task.Parent,
			task.Type,
		)
	}
	w.Flush()

	if len(result.Links) > 0 {
		fmt.Println()
		fmt.Println("Links:")
		for _, link := range result.Links {
			fmt.Printf("  %s %s %s\n", link.Source, ui.RenderMuted("->"), link.Target)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, warning := range result.Warnings {
			fmt.Printf("  %s\n", ui.RenderWarning(warning))
		}
	}

	if stats != nil {
		fmt.Printf("\n%d tasks (%d primary, %d virtual), %d links, %d warnings\n",
			stats.TotalTasks, stats.PrimaryTasks, stats.VirtualTasks, stats.TotalLinks, stats.Warnings)
	}
}

func printViewTable(view *model.View) {
	fmt.Printf("Name:         %s\n", ui.RenderAccent(view.Name))
	if view.Description != "" {
		fmt.Printf("Description:  %s\n", view.Description)
	}
	fmt.Printf("View Mode:    %s\n", view.Config.ViewMode)
	fmt.Printf("ID Field:     %s\n", view.Config.FieldMappings.ID)
	fmt.Printf("Text Field:   %s\n", view.Config.FieldMappings.Text)
	if view.Config.FieldMappings.Start != "" {
		fmt.Printf("Start Field:  %s\n", view.Config.FieldMappings.Start)
	}
	if view.Config.FieldMappings.End != "" {
		fmt.Printf("End Field:    %s\n", view.Config.FieldMappings.End)
	}
	if view.Config.FieldMappings.Parent != "" {
		fmt.Printf("Parent Field: %s\n", view.Config.FieldMappings.Parent)
	}
	if !view.CreatedAt.IsZero() {
		fmt.Printf("Created At:   %s\n", view.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if !view.UpdatedAt.IsZero() {
		fmt.Printf("Updated At:   %s\n", view.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func printViewListTable(views []*model.View) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tID FIELD\tTEXT FIELD\tDESCRIPTION")
	for _, v := range views {
		desc := v.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.Name,
			v.Config.ViewMode,
			v.Config.FieldMappings.ID,
			v.Config.FieldMappings.Text,
			desc,
		)
	}
	w.Flush()
	fmt.Printf("\n%d views\n", len(views))
}

func printSnapshotListTable(snaps []*model.Snapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVIEW\tRECORDS\tCREATED AT\tCREATED BY")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			s.ID,
			s.ViewName,
			s.RecordCount,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.CreatedBy,
		)
	}
	w.Flush()
	fmt.Printf("\n%d snapshots\n", len(snaps))
}
