// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are declared once in AllTools and registered against the ads.Service
// through type-safe handlers.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to an ads.Service method with a matching Args type.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "google_ads_list_campaigns")
	Name string

	// Method is the service method name (e.g., "ListCampaigns")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools by Google Ads area (campaigns, keywords, geo, etc.)
	Category string

	// ReadOnly indicates the tool doesn't modify account state
	ReadOnly bool

	// Destructive indicates the tool can remove or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// Categories lists tool categories in catalogue order.
var Categories = []string{
	"accounts",
	"campaigns",
	"ad_groups",
	"keywords",
	"ads",
	"assets",
	"negatives",
	"budgets",
	"quality",
	"recommendations",
	"conversions",
	"geo",
}

// ToolsByCategory returns the specs in category, in declaration order.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// FindTool looks up a spec by tool name.
func FindTool(name string) (ToolSpec, bool) {
	for _, spec := range AllTools {
		if spec.Name == name {
			return spec, true
		}
	}
	return ToolSpec{}, false
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
