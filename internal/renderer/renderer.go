// Package renderer prints command results as aligned tables or JSON.
package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nuclio/errors"
)

type Renderer struct {
	output io.Writer
}

func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
	}
}

func (r *Renderer) RenderTable(header []interface{}, records [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "Stringology",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.AppendHeader(toTableRow(header), table.RowConfig{})
	for _, record := range records {
		tw.AppendRow(toTableRow(record), table.RowConfig{})
	}
	tw.Render()
}

func (r *Renderer) RenderJSON(items interface{}) error {
	body, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "Failed to render JSON")
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, body, "", "\t"); err != nil {
		return errors.Wrap(err, "Failed to indent JSON")
	}

	fmt.Fprintln(r.output, indented.String()) // nolint: errcheck

	return nil
}

func toTableRow(row []interface{}) table.Row {
	tableRow := make(table.Row, len(row))
	copy(tableRow, row)
	return tableRow
}
