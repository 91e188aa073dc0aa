package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// BlocksByType returns all blocks of the given type in source order
func BlocksByType(body *hclsyntax.Body, blockType string) []*hclsyntax.Block {
	var result []*hclsyntax.Block
	for _, block := range body.Blocks {
		if block.Type == blockType {
			result = append(result, block)
		}
	}
	return result
}

// SortedAttributeNames returns attribute names in sorted order for deterministic iteration
func SortedAttributeNames(body *hclsyntax.Body) []string {
	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StringValue evaluates a constant attribute and converts it to a string.
func StringValue(attr *hclsyntax.Attribute) (string, hcl.Diagnostics) {
	val, diags := constantValue(attr, cty.String)
	if diags.HasErrors() {
		return "", diags
	}
	return val.AsString(), nil
}

// BoolValue evaluates a constant attribute and converts it to a bool.
func BoolValue(attr *hclsyntax.Attribute) (bool, hcl.Diagnostics) {
	val, diags := constantValue(attr, cty.Bool)
	if diags.HasErrors() {
		return false, diags
	}
	return val.True(), nil
}

func constantValue(attr *hclsyntax.Attribute, want cty.Type) (cty.Value, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}

	if val.IsNull() {
		return cty.NilVal, hcl.Diagnostics{AttributeError(attr, "Null value", fmt.Sprintf("The attribute %q must not be null.", attr.Name))}
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, hcl.Diagnostics{AttributeError(attr, "Incorrect attribute value type", fmt.Sprintf("Inappropriate value for attribute %q: %s.", attr.Name, err))}
	}
	if !converted.IsWhollyKnown() {
		return cty.NilVal, hcl.Diagnostics{AttributeError(attr, "Unknown value", fmt.Sprintf("The attribute %q must be a constant.", attr.Name))}
	}
	return converted, nil
}

// AttributeError builds an error diagnostic pointing at an attribute's value.
func AttributeError(attr *hclsyntax.Attribute, summary, detail string) *hcl.Diagnostic {
	rng := attr.Expr.Range()
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &rng,
	}
}

// BlockError builds an error diagnostic pointing at a block header.
func BlockError(block *hclsyntax.Block, summary, detail string) *hcl.Diagnostic {
	rng := block.DefRange()
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &rng,
	}
}
