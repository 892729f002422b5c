// Package printers renders checklists and items for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/palette"
	"tableflip.dev/checklist/pkg/view"
)

// PrettyPrint writes human-oriented output in the dashboard / detail
// style.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Error prints the banner message views surface on failed actions.
func (pp *PrettyPrint) Error(msg string) {
	if msg == "" {
		return
	}
	e := color.New(color.FgRed, color.Bold)
	_, _ = e.Fprintf(color.Error, "! %s\n", msg)
}

// Dashboard renders one card row per checklist: swatch, name, counts,
// percent.
func (pp *PrettyPrint) Dashboard(lists ...checklist.Checklist) {
	if len(lists) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no checklists yet\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []any{"", bold.Sprint("Name"), bold.Sprint("Done"), bold.Sprint("")}
	if pp.ShowID {
		header = append([]any{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	for _, c := range lists {
		completed, total := c.Counts()
		row := []any{
			palette.Swatch(c.Color),
			c.Name,
			fmt.Sprintf("%d/%d", completed, total),
			faint.Sprintf("%d%%", view.Percent(completed, total)),
		}
		if pp.ShowID {
			row = append([]any{faint.Sprint(c.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Detail renders a checklist's items with completion marks and the
// summary footer.
func (pp *PrettyPrint) Detail(c checklist.Checklist) {
	pp.Title(palette.Sprint(c.Color, c.Name))

	if len(c.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no items in this checklist yet\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	faint := color.New(color.Faint)

	for _, it := range c.Items {
		if pp.ShowID {
			y := color.New(color.FgHiYellow, color.Italic, color.Faint)
			_, _ = y.Print(it.ID)
			if pad := len(spacing) - len(it.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			} else {
				_, _ = y.Print("  ")
			}
		}
		if it.Completed {
			_, _ = done.Printf("✘ %s\n", it.Name)
		} else {
			_, _ = t.Printf("● %s\n", it.Name)
		}
	}

	completed, total := c.Counts()
	if pp.ShowID {
		_, _ = faint.Print(spacing)
	}
	_, _ = faint.Printf("%d of %d completed · %d%% done\n\n", completed, total, view.Percent(completed, total))
}
