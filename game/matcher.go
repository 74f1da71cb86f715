package game

// Matches reports whether card satisfies the hidden rule of region.
//
// The intersection accepts any card that shares at least one attribute
// value with each hidden answer; the satisfied axes may differ. The
// exclusive regions demand the exact hidden card on all three axes:
// they double as the answer boxes, so a partial match there stays red.
//
// Nothing prevents the two hidden answers from coinciding. When they do,
// the exclusive rules always agree and the intersection degenerates to
// the same single-card rule; that is inherent to the exercise as posed,
// not corrected here.
func Matches(card Card, region Region, left, right Card) bool {
	switch region {
	case RegionLeftOnly:
		return card.Equal(left)
	case RegionRightOnly:
		return card.Equal(right)
	case RegionIntersection:
		return card.SharesAttribute(left) && card.SharesAttribute(right)
	}
	return false
}
