package template

import "strings"

// DefaultAPIPrefix is the URL prefix the generated service calls under.
const DefaultAPIPrefix = "/api"

// TemplateContext provides data for rendering module templates.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	ModuleName string // kebab-case module name, e.g. "user-profile"
	TypeName   string // PascalCase type prefix, e.g. "UserProfile"
	APIPrefix  string // e.g. "/api"
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext for the given module,
// then applies any provided options.
func NewTemplateContext(moduleName, typeName string, opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		ModuleName: moduleName,
		TypeName:   typeName,
		APIPrefix:  DefaultAPIPrefix,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithAPIPrefix sets the API prefix. Trailing slashes are dropped and a
// leading slash is added when missing; an empty prefix keeps the default.
func WithAPIPrefix(prefix string) ContextOption {
	return func(c *TemplateContext) {
		prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
		if prefix == "" {
			return
		}
		if !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		c.APIPrefix = prefix
	}
}

// APIURL returns the resource URL used by the generated service.
func (c *TemplateContext) APIURL() string {
	return c.APIPrefix + "/" + c.ModuleName
}
