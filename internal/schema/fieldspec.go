package schema

import (
	"fmt"

	"github.com/closingdesk/contract-extract/constants"
)

// FieldType is the declared type of an extractable field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeDate    FieldType = "date"
	TypeBoolean FieldType = "boolean"
	TypeEnum    FieldType = "enum"
	TypeArray   FieldType = "array"
)

// ContextRule implies a field value from corroborating evidence elsewhere in
// the document. Rules are declared statically per field and are the only
// input the contextual extractor uses — nothing is inferred at runtime.
type ContextRule struct {
	Keyword      string
	ImpliedValue string
}

// FieldSpec is the static declaration of one extractable field. Immutable
// configuration, declared per template family.
type FieldSpec struct {
	Name     string
	Group    string
	Type     FieldType
	Required bool

	// Pattern-extractor anchors. Anchor locates the paragraph marker for
	// checkbox fields; Label locates the text preceding a fill-in blank.
	// Scope, when set, restricts the label search to the tokens after its
	// first occurrence — needed where the same label is printed for more
	// than one blank on a page.
	Anchor  string
	Label   string
	Scope   string
	Options []string // option letters for checkbox/enum fields

	// Contextual rules, lowest-tier fallback only.
	Rules []ContextRule

	// Normalize overrides the default normalizer for the declared type.
	Normalize func(any) (any, error)
}

// Catalog is the full field catalogue of one template family.
type Catalog struct {
	Family string
	Fields []FieldSpec

	// PageGroups maps a zero-based page index to the field groups declared
	// on that page.
	PageGroups map[int][]string

	// Instructions holds the fixed natural-language instruction sent to the
	// inference service per field group. Declared, not generated.
	Instructions map[string]string
}

// Instruction returns the declared inference instruction for a group.
func (c *Catalog) Instruction(group string) string {
	return c.Instructions[group]
}

// CatalogFor returns the catalogue for a template family.
func CatalogFor(family string) (*Catalog, error) {
	switch family {
	case constants.FamilyRPACA:
		return rpaCA(), nil
	default:
		return nil, fmt.Errorf("unknown template family %q", family)
	}
}

// Field returns the spec for a field name, or nil.
func (c *Catalog) Field(name string) *FieldSpec {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}

// Group returns the specs belonging to a field group.
func (c *Catalog) Group(group string) []FieldSpec {
	out := make([]FieldSpec, 0, 8)
	for _, f := range c.Fields {
		if f.Group == group {
			out = append(out, f)
		}
	}
	return out
}

// Required returns the names of all required fields.
func (c *Catalog) Required() []string {
	out := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// GroupsForPage returns the field groups declared on a page.
func (c *Catalog) GroupsForPage(page int) []string {
	return c.PageGroups[page]
}

// Groups returns the distinct group names in declaration order.
func (c *Catalog) Groups() []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, f := range c.Fields {
		if _, ok := seen[f.Group]; ok {
			continue
		}
		seen[f.Group] = struct{}{}
		out = append(out, f.Group)
	}
	return out
}
