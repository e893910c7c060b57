package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"R001": {
		Category:   CategoryConfig,
		Message:    "Malformed route configuration",
		Suggestion: "Every route needs a component; check the routes list.",
	},
	"R002": {
		Category:   CategoryRuntime,
		Message:    "Router not initialized",
		Suggestion: "Call Init (or create a root instance carrying the router) before navigating.",
	},
	"R003": {
		Category:   CategoryConfig,
		Message:    "Unknown location mode",
		Suggestion: `Use "history" or "hash".`,
	},
	"R004": {
		Category: CategoryNavigation,
		Message:  "Unknown named route",
	},
	"R005": {
		Category:   CategoryConfig,
		Message:    "Unknown component",
		Suggestion: "Register the component on the host or give the route a title/body.",
	},
	"R006": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
	},
	"R007": {
		Category: CategoryProtocol,
		Message:  "Invalid bridge message",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
