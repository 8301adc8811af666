package estimate

// Instantiate copies template into a new enabled add-on with quantity 1.
// The add-on keeps the template id for traceability only; later template
// edits do not reach it. An empty systemID scopes it to the whole estimate.
func Instantiate(template AddOnTemplate, systemID string) AddOn {
	return AddOn{
		ID:          NewID(),
		TemplateID:  template.ID,
		SystemID:    systemID,
		Name:        template.Name,
		Description: template.Description,
		Enabled:     true,
		Price:       template.DefaultPrice,
		Quantity:    1,
	}
}
