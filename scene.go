package curvekit

import "slices"

// Scene is an ordered collection of primitives. Order is z-order: later
// primitives are drawn on top of earlier ones. The scene is changed only
// by Add and Remove.
type Scene struct {
	objects []Primitive
}

// NewScene creates a scene holding the given primitives.
func NewScene(objects ...Primitive) *Scene {
	s := &Scene{}
	s.Add(objects...)
	return s
}

// Add appends primitives on top of the scene. Nil values are ignored.
func (s *Scene) Add(objects ...Primitive) {
	for _, o := range objects {
		if o != nil {
			s.objects = append(s.objects, o)
		}
	}
}

// Remove deletes p from the scene and reports whether it was present.
func (s *Scene) Remove(p Primitive) bool {
	i := s.Index(p)
	if i < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	return true
}

// Index returns the z-position of p, or -1.
func (s *Scene) Index(p Primitive) int {
	for i, o := range s.objects {
		if o == p {
			return i
		}
	}
	return -1
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the primitives in z-order. The slice is owned by the
// scene and must not be modified.
func (s *Scene) Objects() []Primitive {
	return s.objects
}

// Draw draws all primitives bottom to top.
func (s *Scene) Draw(surface Surface) {
	for _, o := range s.objects {
		o.Draw(surface)
	}
}
