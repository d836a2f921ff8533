package constants

// Template family identifiers. A family selects a FieldSpec catalogue; field
// definitions are declared per family, not learned.
const (
	FamilyRPACA = "RPA-CA" // California residential purchase agreement layout
)

// KnownFamilies lists the template families this build can extract.
var KnownFamilies = []string{FamilyRPACA}

// IsKnownFamily reports whether a template family has a declared catalogue.
func IsKnownFamily(family string) bool {
	for _, f := range KnownFamilies {
		if f == family {
			return true
		}
	}
	return false
}
