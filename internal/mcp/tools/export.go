package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/internal/exportfile"
	"github.com/usestring/wetrace/pkg/client"
)

// ExportInput is the input for export.
type ExportInput struct {
	Kind      string `json:"kind" jsonschema:"One of: chat, forensic, voices, contacts"`
	Talker    string `json:"talker,omitempty" jsonschema:"Conversation to export; required except for contacts"`
	Name      string `json:"name,omitempty" jsonschema:"Display name used in the export"`
	TimeRange string `json:"time_range,omitempty" jsonschema:"Date range such as 2024-01-01~2024-01-31"`
	Format    string `json:"format,omitempty" jsonschema:"html, txt, csv, xlsx, docx or pdf (default: html; csv for contacts)"`
	Keyword   string `json:"keyword,omitempty" jsonschema:"Contacts export only: filter by name"`
}

// ExportOutput is the output for export.
type ExportOutput struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
	Size  string `json:"size"`
}

// ToolExport downloads an export and saves it under the export directory.
func ToolExport(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportInput) (*sdkmcp.CallToolResult, ExportOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportInput) (*sdkmcp.CallToolResult, ExportOutput, error) {
		kind := client.ExportKind(input.Kind)
		if err := oneOf("kind", kind, client.ExportKinds); err != nil {
			return nil, ExportOutput{}, err
		}
		if kind != client.ExportContacts {
			if err := required("talker", input.Talker); err != nil {
				return nil, ExportOutput{}, err
			}
		}

		format := input.Format
		switch {
		case format == "" && kind == client.ExportContacts:
			format = client.FormatCSV
		case format == "":
			format = client.FormatHTML
		}
		if err := oneOf("format", format, client.ExportFormats); err != nil {
			return nil, ExportOutput{}, err
		}

		data, err := d.Client.Export(ctx, client.ExportRequest{
			Kind: kind,
			ExportOptions: client.ExportOptions{
				Talker:    input.Talker,
				Name:      input.Name,
				TimeRange: input.TimeRange,
				Format:    format,
			},
			Keyword: input.Keyword,
		})
		if err != nil {
			return nil, ExportOutput{}, WrapClientError(err)
		}

		saved, err := exportfile.Save(d.Config.ExportDir, string(kind), input.Talker, format, data)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{Path: saved.Path, Bytes: saved.Bytes, Size: saved.Size()}, nil
	}
}
