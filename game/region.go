package game

// Region identifies a recognized drop target in the Venn diagram.
// RegionNone is returned by hit testing for points outside every target;
// it is never a valid matcher input.
type Region int

const (
	RegionNone Region = iota
	RegionLeftOnly
	RegionRightOnly
	RegionIntersection
)

func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case RegionLeftOnly:
		return "left"
	case RegionRightOnly:
		return "right"
	case RegionIntersection:
		return "intersection"
	}
	return "unknown"
}
