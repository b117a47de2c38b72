package graph

import "fmt"

// MissingTitleError indicates that an SVG group meant to describe a
// graph entity carries no <title> child. The title is the only source
// of the entity's identity, so there is no fallback.
type MissingTitleError struct {
	ElementID string
}

func (e *MissingTitleError) Error() string {
	return fmt.Sprintf("svg group %q has no title element", e.ElementID)
}

// MalformedTitleError indicates that an edge title did not split into
// exactly two endpoint tokens after separator normalisation.
type MalformedTitleError struct {
	Title string
}

func (e *MalformedTitleError) Error() string {
	return fmt.Sprintf("edge title %q does not name exactly two endpoints", e.Title)
}
