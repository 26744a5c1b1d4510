// internal/defs/links.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// UpgradeLink maps a source tag to the item produced by merging three of it.
type UpgradeLink struct {
	SourceTag string       `json:"source_tag"`
	Yield     ItemTemplate `json:"yield"`
}

// UpgradeTable is the read-only, ordered list of upgrade links.
type UpgradeTable struct {
	links []UpgradeLink
}

// maxSuggestDistance bounds how different a tag may be and still be offered as a hint.
const maxSuggestDistance = 2

const upgradeLinksSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["source_tag", "yield"],
    "properties": {
      "source_tag": {"type": "string", "minLength": 1},
      "yield": {
        "type": "object",
        "required": ["tag", "tier"],
        "properties": {
          "tag":  {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "tier": {"type": "integer", "minimum": 1}
        }
      }
    }
  }
}`

var upgradeLinksValidator = jsonschema.MustCompileString("upgrade_links.schema.json", upgradeLinksSchema)

// NewUpgradeTable copies links into a table. Order is preserved; the first link for a tag wins.
func NewUpgradeTable(links []UpgradeLink) *UpgradeTable {
	return &UpgradeTable{links: append([]UpgradeLink(nil), links...)}
}

// GetYieldFor returns the yield of the first link whose source tag equals tag.
func (t *UpgradeTable) GetYieldFor(tag string) (ItemTemplate, bool) {
	if t == nil {
		return ItemTemplate{}, false
	}
	for _, link := range t.links {
		if link.SourceTag == tag {
			return link.Yield, true
		}
	}
	return ItemTemplate{}, false
}

// Suggest returns the configured source tag closest to tag, if any is within a small edit distance.
func (t *UpgradeTable) Suggest(tag string) (string, bool) {
	if t == nil {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, link := range t.links {
		dist := levenshtein.ComputeDistance(tag, link.SourceTag)
		if dist < bestDist {
			best, bestDist = link.SourceTag, dist
		}
	}
	if best == "" || best == tag {
		return "", false
	}
	return best, true
}

// Links returns a copy of the configured links.
func (t *UpgradeTable) Links() []UpgradeLink {
	if t == nil {
		return nil
	}
	return append([]UpgradeLink(nil), t.links...)
}

// Len returns the number of links.
func (t *UpgradeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.links)
}

// LoadUpgradeLinks reads and validates an upgrade links JSON file.
func LoadUpgradeLinks(path string) (*UpgradeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade links file: %w", err)
	}
	return ParseUpgradeLinks(raw)
}

// ParseUpgradeLinks validates raw against the links schema and builds the table.
// A link that yields its own source tag is rejected.
func ParseUpgradeLinks(raw []byte) (*UpgradeTable, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrade links: %w", err)
	}
	if err := upgradeLinksValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid upgrade links: %w", err)
	}

	var links []UpgradeLink
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrade links: %w", err)
	}
	for i, link := range links {
		if link.SourceTag == link.Yield.Tag {
			return nil, fmt.Errorf("upgrade link %d: %q yields itself", i, link.SourceTag)
		}
	}
	return NewUpgradeTable(links), nil
}
