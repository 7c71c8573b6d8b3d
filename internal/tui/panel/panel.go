// ABOUTME: Independently loaded screen section with loading and error states
// ABOUTME: Each dashboard panel fetches on its own and renders whatever it has

package panel

import (
	"strings"

	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/styles"
)

// Section holds the result of one fetch.
type Section[T any] struct {
	Title  string
	Icon   icons.Icon
	Loaded bool
	Err    error
	Data   T
}

// New returns an empty, loading section.
func New[T any](icon icons.Icon, title string) Section[T] {
	return Section[T]{Icon: icon, Title: title}
}

// Set records a fetch result. A failed refresh keeps the previous data.
func (s *Section[T]) Set(data T, err error) {
	s.Loaded = true
	s.Err = err
	if err == nil {
		s.Data = data
	}
}

// Reset marks the section as loading again.
func (s *Section[T]) Reset() {
	s.Loaded = false
	s.Err = nil
}

// Ready reports whether data is available to render.
func (s Section[T]) Ready() bool {
	return s.Loaded && s.Err == nil
}

// Render draws the section inside a panel of the given width.
func (s Section[T]) Render(width int, body func(T) string) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(s.Icon.String() + " " + s.Title))
	sb.WriteString("\n")

	switch {
	case !s.Loaded:
		sb.WriteString(styles.Subtitle.Render("Loading..."))
	case s.Err != nil:
		sb.WriteString(styles.StatusCritical.Render("Error: " + s.Err.Error()))
	default:
		sb.WriteString(body(s.Data))
	}

	if width > 4 {
		return styles.Panel.Width(width - 2).Render(sb.String())
	}
	return styles.Panel.Render(sb.String())
}
