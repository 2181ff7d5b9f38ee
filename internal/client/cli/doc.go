// Package cli implements the interactive visitor client: browsing the
// published testimonial wall, composing a new testimonial in free-form or
// fill-in-the-blank mode, and submitting it. In-progress input is
// autosaved to the local database and offered for restore on the next run.
package cli
