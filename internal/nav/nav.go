// Package nav reads the navigation manifest that defines the primary
// reading order of the handbook.
package nav

import (
	"encoding/json"
	"fmt"
	"os"
)

// Link is one ordered entry in the navigation manifest.
type Link struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// group mirrors one top-level manifest entry; everything beyond the links
// list belongs to the manifest format, not to us.
type group struct {
	Links []Link `json:"links"`
}

// Load returns the first top-level group's links in manifest order. A
// missing manifest is not an error: the build degrades to section scanning.
func Load(path string) ([]Link, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read nav manifest: %w", err)
	}

	var groups []group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parse nav manifest: %w", err)
	}
	if len(groups) == 0 {
		return nil, nil
	}
	return groups[0].Links, nil
}
