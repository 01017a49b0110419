package valueobjects

import "fmt"

// Color is the collector's quick read on an invoice. Untagged invoices carry
// no color at all, which is represented by a nil *Color in the aggregate.
type Color string

const (
	// ColorRed marks a customer who will not pay.
	ColorRed Color = "red"
	// ColorYellow marks a customer who says they will take care of it.
	ColorYellow Color = "yellow"
	// ColorGreen marks a customer who committed to pay.
	ColorGreen Color = "green"
)

var validColors = map[Color]bool{
	ColorRed:    true,
	ColorYellow: true,
	ColorGreen:  true,
}

func (c Color) String() string {
	return string(c)
}

func (c Color) IsValid() bool {
	return validColors[c]
}

func NewColor(s string) (Color, error) {
	c := Color(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid color: %s", s)
	}
	return c, nil
}

// ColorNames returns the valid color values as strings.
func ColorNames() []string {
	return []string{string(ColorRed), string(ColorYellow), string(ColorGreen)}
}
