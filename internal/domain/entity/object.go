package entity

// ObjectKind is the type of a marker placed on the object layer
type ObjectKind int

const (
	LanderSpawn ObjectKind = iota
	PlayerSpawn
	HazardCreature
)

// objectTypeNames maps map-file type strings to kinds
var objectTypeNames = map[string]ObjectKind{
	"lander":        LanderSpawn,
	"player_start":  PlayerSpawn,
	"mouth_monster": HazardCreature,
}

// ParseObjectKind resolves a map-file object type string
func ParseObjectKind(s string) (ObjectKind, bool) {
	k, ok := objectTypeNames[s]
	return k, ok
}

// TypeName returns the map-file type string of the kind
func (k ObjectKind) TypeName() string {
	for name, kind := range objectTypeNames {
		if kind == k {
			return name
		}
	}
	return ""
}

// String returns the string representation of the object kind
func (k ObjectKind) String() string {
	switch k {
	case LanderSpawn:
		return "LanderSpawn"
	case PlayerSpawn:
		return "PlayerSpawn"
	case HazardCreature:
		return "HazardCreature"
	default:
		return "Unknown"
	}
}

// PlacedObject is a typed marker rectangle from the object layer
type PlacedObject struct {
	ID   uint32
	Kind ObjectKind
	Rect Rect
}

// Level is everything the map loader produces for one map
type Level struct {
	Grid     *TileGrid
	Objects  []PlacedObject
	Warnings []error // non-fatal problems, e.g. skipped objects
}

// GetObject returns the first object of the given kind
func (l *Level) GetObject(kind ObjectKind) (PlacedObject, error) {
	for _, obj := range l.Objects {
		if obj.Kind == kind {
			return obj, nil
		}
	}
	return PlacedObject{}, &RequiredObjectNotFoundError{Kind: kind}
}

// ObjectsOfKind returns every object of the given kind in map order
func (l *Level) ObjectsOfKind(kind ObjectKind) []PlacedObject {
	var out []PlacedObject
	for _, obj := range l.Objects {
		if obj.Kind == kind {
			out = append(out, obj)
		}
	}
	return out
}

// ForeachObject calls fn for every object in map order
func (l *Level) ForeachObject(fn func(PlacedObject)) {
	for _, obj := range l.Objects {
		fn(obj)
	}
}
