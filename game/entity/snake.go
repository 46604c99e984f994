package entity

import (
	"gridsnake/game/types"
)

// Snake is the player's body, head first, plus its current heading
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

// NewSnake lays out length segments trailing away from head, opposite to dir
func NewSnake(head types.Point, length int, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}

	body := make([]types.Point, 0, length)
	back := dir.Opposite()
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Step(back)
	}

	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

// Move prepends newHead to the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head would occupy after one step along Direction
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Step(s.Direction)
}

// SetDirection commits dir unless it reverses the current heading.
// Returns false when the change was rejected.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Occupies reports whether p is one of the body cells
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}
