package uedocset

// Source kinds are the declaration keywords a documentation page can carry
// in its syntax block.
const (
	SourceKindClass   = "class"
	SourceKindUClass  = "UCLASS"
	SourceKindStruct  = "struct"
	SourceKindUStruct = "USTRUCT"
	SourceKindUnion   = "union"
	SourceKindObject  = "object"
)

// Dash entry kinds produced by classification. Collectors introduce further
// kinds (Module, Function, Variable, ...) for member listings.
const (
	EntryKindClass  = "Class"
	EntryKindStruct = "Struct"
	EntryKindUnion  = "Union"
	EntryKindObject = "Object"
)

// SourceKinds lists the declaration keywords tested during classification.
// The order matters: the first kind whose "<kind> <name>" form appears in a
// page's declaration text wins.
var SourceKinds = []string{
	SourceKindClass,
	SourceKindUClass,
	SourceKindStruct,
	SourceKindUStruct,
	SourceKindUnion,
}

// EntryKindForSourceKind maps a declaration keyword to its Dash entry kind.
// Unknown keywords map to EntryKindObject.
func EntryKindForSourceKind(sourceKind string) string {
	switch sourceKind {
	case SourceKindClass, SourceKindUClass:
		return EntryKindClass
	case SourceKindStruct, SourceKindUStruct:
		return EntryKindStruct
	case SourceKindUnion:
		return EntryKindUnion
	}
	return EntryKindObject
}

// APIInfo describes the symbol a documentation page declares: its name, the
// declaration keyword found in its syntax block, and the Dash entry kind
// that keyword maps to. Pages without a recognizable declaration classify as
// the generic object kind.
type APIInfo struct {
	Name       string
	SourceKind string
	EntryKind  string
}

// Typed reports whether the page declares a C++ aggregate rather than the
// generic object fallback. Member names are parent-qualified only for typed
// parents.
func (a APIInfo) Typed() bool {
	return a.SourceKind != "" && a.SourceKind != SourceKindObject
}
