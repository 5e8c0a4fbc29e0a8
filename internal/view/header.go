package view

import (
	"fmt"
	"io"

	"github.com/mira-academy/catalog/internal/enrollment"
)

// Header shows the live enrollment headcount.
type Header struct {
	store *enrollment.Store
}

// NewHeader builds the header view.
func NewHeader(store *enrollment.Store) *Header {
	return &Header{store: store}
}

// Render writes the headcount line.
func (v *Header) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Classes Enrolled: %d\n", v.store.Count())
	return err
}
