package scaffold

// ArtifactKind is one of the optional generation targets.
type ArtifactKind string

// Artifact kinds, in generation order.
const (
	KindService ArtifactKind = "service"
	KindGuard   ArtifactKind = "guard"
	KindLayout  ArtifactKind = "layout"
	KindModels  ArtifactKind = "models"
)

// Kinds lists every artifact kind in the order the orchestrator runs them.
var Kinds = []ArtifactKind{KindService, KindGuard, KindLayout, KindModels}

// Options selects which artifacts to generate. Flags are independent.
type Options struct {
	Service bool
	Guard   bool
	Layout  bool
	Models  bool
}

// Enabled reports whether kind is selected.
func (o Options) Enabled(kind ArtifactKind) bool {
	switch kind {
	case KindService:
		return o.Service
	case KindGuard:
		return o.Guard
	case KindLayout:
		return o.Layout
	case KindModels:
		return o.Models
	}
	return false
}

// EnabledKinds returns the selected kinds in generation order.
func (o Options) EnabledKinds() []ArtifactKind {
	var kinds []ArtifactKind
	for _, k := range Kinds {
		if o.Enabled(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
