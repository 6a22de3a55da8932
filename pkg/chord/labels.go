package chord

// LabelAnchor is the position of an item's label. The text is drawn
// upright and centred on Anchor.
type LabelAnchor struct {
	Label  string
	Color  RGB
	Angle  float64 // screen angle, item centre angle plus rotation
	Anchor Point
}

// LabelAnchors places every item's label on a circle of the given radius
// around center, at the item's centre angle offset by rotation. Only
// positions move with the rotation; the layout is not recomputed.
func (d *Diagram) LabelAnchors(rotation int, center Point, radius float64) []LabelAnchor {
	anchors := make([]LabelAnchor, 0, len(d.items))
	for _, it := range d.items {
		angle := NormalizeAngle(it.centerAngle + float64(rotation))
		anchors = append(anchors, LabelAnchor{
			Label:  it.label,
			Color:  it.color,
			Angle:  angle,
			Anchor: PointOnCircle(center, radius, angle),
		})
	}
	return anchors
}
