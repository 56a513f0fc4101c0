// Package render defines the template dialect seam: an Engine renders raw
// fragment source against a data context, and a Registry resolves engines by
// dialect name so the pipeline can delegate without knowing any syntax.
package render
