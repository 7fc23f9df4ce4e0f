package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzytkownik/patternfly-icongen/icongen"
)

func TestVariantFragment(t *testing.T) {
	e := NewEmitter()

	tests := []struct {
		name     string
		variant  icongen.Variant
		expected string
	}{
		{
			name: "doc line then identifier",
			variant: icongen.Variant{
				Ident: "Wrench",
				Doc:   "a wrench",
			},
			expected: "    /// a wrench\n    Wrench,\n",
		},
		{
			name: "gate between doc and identifier",
			variant: icongen.Variant{
				Ident:   "Github",
				Feature: "icons-fab",
				Doc:     "the GitHub brand mark",
			},
			expected: "    /// the GitHub brand mark\n    #[cfg(feature = \"icons-fab\")]\n    Github,\n",
		},
		{
			name: "no doc omits the doc line",
			variant: icongen.Variant{
				Ident: "Spinner",
			},
			expected: "    Spinner,\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.VariantFragment(tt.variant))
		})
	}
}

func TestDispatchFragment(t *testing.T) {
	e := NewEmitter()

	v := icongen.Variant{Ident: "Wrench", Name: "wrench", Helper: "fas"}
	assert.Equal(t, "            Self::Wrench => fas(classes, \"wrench\"),\n", e.DispatchFragment(v))

	gated := icongen.Variant{Ident: "Github", Name: "github", Helper: "fab", Feature: "icons-fab"}
	assert.Equal(t,
		"            #[cfg(feature = \"icons-fab\")]\n            Self::Github => fab(classes, \"github\"),\n",
		e.DispatchFragment(gated))
}

func TestFeatureGatesDisabled(t *testing.T) {
	e := NewEmitterWithOptions(Options{FeatureGates: false})

	v := icongen.Variant{Ident: "Github", Name: "github", Helper: "fab", Feature: "icons-fab"}
	assert.NotContains(t, e.VariantFragment(v), "#[cfg")
	assert.NotContains(t, e.DispatchFragment(v), "#[cfg")
	assert.Contains(t, e.DispatchFragment(v), `fab(classes, "github")`)
}

func TestWrappers(t *testing.T) {
	e := NewEmitter()

	header := e.TypeHeader()
	assert.True(t, strings.HasPrefix(header, "// AUTO-GENERATED"))
	assert.Contains(t, header, "#[derive(Copy, Clone, Debug, PartialEq, Eq, EnumIter, EnumMessage, IntoStaticStr)]")
	assert.Contains(t, header, "pub enum Icon {")
	assert.Equal(t, "}\n", e.TypeFooter())

	assert.Contains(t, e.ImplHeader(), "impl AsClasses for Icon {")
	assert.Contains(t, e.ImplHeader(), "fn extend_classes(&self, classes: &mut Classes) {")
	assert.Contains(t, e.ImplHeader(), "match self {")
	assert.Equal(t, "        }\n    }\n}\n", e.ImplFooter())
}

func TestEmitterMetadata(t *testing.T) {
	e := NewEmitter()
	assert.Equal(t, "rust", e.Language())
	assert.Equal(t, "rs", e.FileExtension())
}
