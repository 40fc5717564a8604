package astar

import "fmt"

// Point packs two signed 32-bit coordinates into one word: x in the low half,
// y in the high half.
type Point uint64

// ToPoint packs (x, y). Coordinates outside the int32 range are truncated.
func ToPoint(x, y int) Point {
	return Point(uint64(uint32(int32(x))) | uint64(uint32(int32(y)))<<32)
}

func (p Point) X() int { return int(int32(uint32(p))) }
func (p Point) Y() int { return int(int32(uint32(p >> 32))) }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X(), p.Y())
}
