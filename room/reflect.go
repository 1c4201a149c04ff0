package room

// ReflectAcrossMirror mirrors p across the wall on the given side of the real room.
func ReflectAcrossMirror(g RoomGeometry, p Point2D, side MirrorSide) Point2D {
	switch side {
	case Top:
		return Point2D{p.X, -p.Y}
	case Bottom:
		return Point2D{p.X, 2*g.Height - p.Y}
	case Left:
		return Point2D{-p.X, p.Y}
	case Right:
		return Point2D{2*g.Width - p.X, p.Y}
	}
	return p
}

// reflectRoomOrigin mirrors a whole WxH rectangle with top-left corner origin
// across the given wall and returns the top-left corner of the result.
func reflectRoomOrigin(g RoomGeometry, origin Point2D, side MirrorSide) Point2D {
	switch side {
	case Top:
		return Point2D{origin.X, -origin.Y - g.Height}
	case Bottom:
		return Point2D{origin.X, g.Height - origin.Y}
	case Left:
		return Point2D{-origin.X - g.Width, origin.Y}
	case Right:
		return Point2D{g.Width - origin.X, origin.Y}
	}
	return origin
}

// mirrorVector mirrors a direction across the axis of the wall on side.
func mirrorVector(v Point2D, side MirrorSide) Point2D {
	if side.Horizontal() {
		return Point2D{v.X, -v.Y}
	}
	return Point2D{-v.X, v.Y}
}
