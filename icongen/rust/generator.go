// Package rust renders the icon enum and its AsClasses implementation as
// Rust source for the patternfly-yew component library.
package rust

import (
	"fmt"
	"strings"

	"github.com/uzytkownik/patternfly-icongen/icongen"
)

// Options configures Rust emission
type Options struct {
	// FeatureGates controls emission of #[cfg(feature = "...")] attributes.
	// With gates disabled every variant is compiled unconditionally.
	FeatureGates bool
}

// Emitter implements icongen.Emitter for Rust
type Emitter struct {
	opts Options
}

// NewEmitter creates a Rust emitter with feature gates enabled
func NewEmitter() *Emitter {
	return NewEmitterWithOptions(Options{FeatureGates: true})
}

// NewEmitterWithOptions creates a Rust emitter with explicit options
func NewEmitterWithOptions(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

// Language returns "rust"
func (e *Emitter) Language() string {
	return "rust"
}

// FileExtension returns "rs"
func (e *Emitter) FileExtension() string {
	return "rs"
}

// VariantFragment renders one enum variant entry: the doc line, the optional
// feature gate, then the identifier.
func (e *Emitter) VariantFragment(v icongen.Variant) string {
	var sb strings.Builder

	if v.Doc != "" {
		sb.WriteString(fmt.Sprintf("    /// %s\n", v.Doc))
	}
	if e.opts.FeatureGates && v.Feature != "" {
		sb.WriteString(fmt.Sprintf("    #[cfg(feature = %q)]\n", v.Feature))
	}
	sb.WriteString(fmt.Sprintf("    %s,\n", v.Ident))

	return sb.String()
}

// DispatchFragment renders the match arm for one variant. The gate must
// mirror the one on the enum side or gated builds stop compiling.
func (e *Emitter) DispatchFragment(v icongen.Variant) string {
	var sb strings.Builder

	if e.opts.FeatureGates && v.Feature != "" {
		sb.WriteString(fmt.Sprintf("            #[cfg(feature = %q)]\n", v.Feature))
	}
	sb.WriteString(fmt.Sprintf("            Self::%s => %s(classes, %q),\n", v.Ident, v.Helper, v.Name))

	return sb.String()
}

// TypeHeader opens the enum declaration. The derives give variants copy
// semantics, equality, iteration over all variants (EnumIter), per-variant
// documentation (EnumMessage) and a short display name (IntoStaticStr).
func (e *Emitter) TypeHeader() string {
	return `// AUTO-GENERATED by icongen - DO NOT EDIT
// Source: PatternFly icon catalog

/// An icon from the PatternFly icon catalog.
#[derive(Copy, Clone, Debug, PartialEq, Eq, EnumIter, EnumMessage, IntoStaticStr)]
pub enum Icon {
`
}

// TypeFooter closes the enum declaration
func (e *Emitter) TypeFooter() string {
	return "}\n"
}

// ImplHeader opens the AsClasses implementation and its exhaustive match
func (e *Emitter) ImplHeader() string {
	return `impl AsClasses for Icon {
    fn extend_classes(&self, classes: &mut Classes) {
        match self {
`
}

// ImplFooter closes the match, the function and the impl block
func (e *Emitter) ImplFooter() string {
	return "        }\n    }\n}\n"
}
