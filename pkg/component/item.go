package component

import "strings"

// TypeField is the distinguished item field naming the requested component.
const TypeField = "type"

// Item is one content request: a bag of field values plus the distinguished
// type field. Items are caller-owned and transient; the pipeline never
// mutates them.
type Item map[string]any

// Type returns the trimmed requested component name, or "" when the field is
// missing or not a string.
func (it Item) Type() string {
	if it == nil {
		return ""
	}
	raw, ok := it[TypeField]
	if !ok {
		return ""
	}
	name, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(name)
}

// Merge builds the render context for a matched definition: the pointwise
// union of defaults and item, item values winning per field. Fields present
// on only one side pass through unchanged. Neither input is mutated.
func Merge(defaults map[string]any, item Item) map[string]any {
	merged := make(map[string]any, len(defaults)+len(item))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range item {
		merged[key] = value
	}
	return merged
}
