package ui

// Rect is one filled rectangle in canvas pixels
type Rect struct {
	X, Y, W, H int
	Color      Color
}

// Surface is a retained drawing target. The session paints into it on
// every tick; frontends replay it on every frame and show its label and
// modal text.
type Surface struct {
	Width, Height int
	Rects         []Rect

	score   string
	message string
}

func NewSurface() *Surface {
	return &Surface{score: "0"}
}

// Clear drops every rectangle painted so far
func (s *Surface) Clear(width, height int) {
	s.Width = width
	s.Height = height
	s.Rects = s.Rects[:0]
}

func (s *Surface) FillRect(x, y, w, h int, c Color) {
	s.Rects = append(s.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}

func (s *Surface) SetText(text string) {
	s.score = text
}

func (s *Surface) Score() string {
	return s.score
}

// Notify raises the modal message; it stays until Dismiss
func (s *Surface) Notify(message string) {
	s.message = message
}

func (s *Surface) Dismiss() {
	s.message = ""
}

func (s *Surface) Message() string {
	return s.message
}
