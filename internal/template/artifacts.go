package template

// RenderService returns the content of <module>.service.ts.
func RenderService(r Renderer, ctx *TemplateContext) ([]byte, error) {
	return r.Render(ServiceTemplate, ctx)
}

// RenderModel returns the content of <module>.model.ts.
func RenderModel(r Renderer, ctx *TemplateContext) ([]byte, error) {
	return r.Render(ModelTemplate, ctx)
}

// RenderIndex returns the content of the models index.ts barrel file.
func RenderIndex(r Renderer, ctx *TemplateContext) ([]byte, error) {
	return r.Render(IndexTemplate, ctx)
}
