package icongen

import (
	"strings"

	"github.com/uzytkownik/patternfly-icongen/errors"
)

// Feature gate names for the optional FontAwesome families. Variants from
// these families are only compiled into builds that enable the feature.
const (
	FeatureFab = "icons-fab"
	FeatureFar = "icons-far"
)

// NormalizeStyle maps a catalog style tag to the class-list helper name and
// the feature gate the variant belongs to, if any.
//
// The style set is closed: anything outside it means the catalog moved ahead
// of the generator, and the run must abort rather than emit a partial enum.
func NormalizeStyle(style string) (helper, feature string, err error) {
	switch style {
	case "fas":
		return "fas", "", nil
	case "fab":
		return "fab", FeatureFab, nil
	case "far":
		return "far", FeatureFar, nil
	case "":
		return "plain", "", nil
	case "pf-icon":
		return "pf", "", nil
	default:
		return "", "", errors.NewUnknownStyle(style)
	}
}

// SanitizeName derives the variant identifier from a catalog ReactName:
// the "Icon" suffix is stripped first, then the "Pficon" prefix. The order
// matters: "PficonWrenchIcon" becomes "PficonWrench" becomes "Wrench".
func SanitizeName(reactName string) string {
	name := strings.TrimSuffix(reactName, "Icon")
	return strings.TrimPrefix(name, "Pficon")
}
