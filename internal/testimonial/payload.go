package testimonial

// Submission mode labels as they travel on the wire. ModeUnknown is what the
// relay substitutes when a submission arrives without a mode.
const (
	ModeFreeForm = "Free Form"
	ModeMadLibs  = "Mad Libs"
	ModeUnknown  = "Unknown"
)

// SubmissionPayload is the ephemeral form submission. It is posted by the
// client to the external form endpoint and to the intake relay; the relay
// forwards it inside a moderation-trigger event. It never reaches the store
// directly.
type SubmissionPayload struct {
	Testimonial    string `json:"testimonial"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Company        string `json:"company,omitempty"`
	Email          string `json:"email,omitempty"`
	SubmissionMode string `json:"submission_mode,omitempty"`
	Template       string `json:"template,omitempty"`
}

// MissingRequired reports whether any of the three required fields is empty.
func (p SubmissionPayload) MissingRequired() bool {
	return p.Testimonial == "" || p.Name == "" || p.Title == ""
}
