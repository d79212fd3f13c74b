package domain

// Site is a building with an AI-RRM profile assigned. Sites are
// produced by discovery and read-only afterwards.
type Site struct {
	ID          string `json:"id"`        // controller instance UUID
	Name        string `json:"name"`      // display name, e.g. "Building 7"
	Hierarchy   string `json:"hierarchy"` // e.g. "Global/EMEA/Madrid/Building 7"
	ProfileName string `json:"profile_name"`
}
