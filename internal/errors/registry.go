package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Document model errors (E101-E109)
	// ============================================

	"E101": {
		Category: CategoryStructure,
		Message:  "Void element cannot have children",
		Detail:   "Void elements such as <br> or <img> never contain children and render without a closing tag.",
		DocURL:   "https://vango.dev/tagz/errors/E101",
	},
	"E102": {
		Category: CategoryType,
		Message:  "Invalid class value",
		Detail:   "Classes accept a space-separated string, a []string, a set of strings or an iter.Seq[string].",
		DocURL:   "https://vango.dev/tagz/errors/E102",
	},
	"E103": {
		Category: CategoryLookup,
		Message:  "Attribute not found",
		Detail:   "The element has no attribute with this name.",
		DocURL:   "https://vango.dev/tagz/errors/E103",
	},

	// ============================================
	// Config errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No tagz.json was found in the given directory.",
		DocURL:   "https://vango.dev/tagz/errors/E110",
	},
	"E111": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "tagz.json could not be read or is not valid JSON.",
		DocURL:   "https://vango.dev/tagz/errors/E111",
	},
	"E112": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range.",
		DocURL:   "https://vango.dev/tagz/errors/E112",
	},

	// ============================================
	// I/O and publish errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryIO,
		Message:  "Failed to read input",
		Detail:   "The HTML source could not be read.",
		DocURL:   "https://vango.dev/tagz/errors/E120",
	},
	"E130": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The rendered document could not be uploaded.",
		DocURL:   "https://vango.dev/tagz/errors/E130",
	},
	"E131": {
		Category: CategoryPublish,
		Message:  "Publish target not configured",
		Detail:   "Set publish.bucket in tagz.json or pass --bucket.",
		DocURL:   "https://vango.dev/tagz/errors/E131",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
