package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// DefaultSwipeThreshold is the minimum drag distance recognised as a swipe
const DefaultSwipeThreshold float32 = 50.0

// GestureHandler accumulates drag movement and reports a swipe when the drag ends
type GestureHandler struct {
	onGesture      func(GestureType)
	swipeThreshold float32

	dx, dy float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// Dragged records movement of an in-progress drag
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	gh.dx += event.Dragged.DX
	gh.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag and resets tracking
func (gh *GestureHandler) DragEnd() {
	gesture := classifySwipe(gh.dx, gh.dy, gh.swipeThreshold)
	gh.dx, gh.dy = 0, 0

	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// classifySwipe determines the direction of a drag by its dominant axis
func classifySwipe(dx, dy, threshold float32) GestureType {
	if dx*dx+dy*dy < threshold*threshold {
		return GestureNone
	}

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeArea wraps content and turns horizontal drags over it into gestures
type SwipeArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	handler *GestureHandler
}

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	s := &SwipeArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged implements fyne.Draggable
func (s *SwipeArea) Dragged(event *fyne.DragEvent) {
	s.handler.Dragged(event)
}

// DragEnd implements fyne.Draggable
func (s *SwipeArea) DragEnd() {
	s.handler.DragEnd()
}
