// Package prompts contains MCP prompt implementations for Wetrace.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	ExportDir            string
	CompactMaxArrayItems int
}
