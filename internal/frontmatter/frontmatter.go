package frontmatter

import (
	"strings"

	fm "github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Status describes how a document's metadata block was handled.
type Status int

const (
	// Absent means the document carries no metadata block.
	Absent Status = iota
	// Malformed means a metadata block was present but failed to parse.
	Malformed
	// Parsed means the metadata block parsed cleanly.
	Parsed
)

// Result is the outcome of splitting a document into metadata and body.
// Handbook content is externally authored, so malformed metadata never fails
// a build: the whole document becomes body text and Meta stays empty.
type Result struct {
	Status Status
	Meta   map[string]any
	Body   string
}

var yamlFormat = fm.NewFormat(delimiter, delimiter, yaml.Unmarshal)

// Parse splits raw document text into a frontmatter record and body text.
func Parse(content string) Result {
	if !strings.HasPrefix(content, delimiter) {
		return Result{Status: Absent, Meta: map[string]any{}, Body: content}
	}
	// A block needs both an opening and a closing delimiter.
	if len(strings.SplitN(content, delimiter, 3)) < 3 {
		return Result{Status: Absent, Meta: map[string]any{}, Body: content}
	}

	meta := map[string]any{}
	rest, err := fm.Parse(strings.NewReader(content), &meta, yamlFormat)
	if err != nil {
		return Result{Status: Malformed, Meta: map[string]any{}, Body: content}
	}
	if string(rest) == content && len(meta) == 0 {
		// The delimiters did not line up as a block after all.
		return Result{Status: Absent, Meta: map[string]any{}, Body: content}
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return Result{Status: Parsed, Meta: meta, Body: string(rest)}
}

// Title returns the "title" field, or "" when missing or not a string.
func (r Result) Title() string {
	if t, ok := r.Meta["title"].(string); ok {
		return t
	}
	return ""
}
