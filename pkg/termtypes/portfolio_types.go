package termtypes

// Project is a portfolio project record as published in projects.json.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Demo        string   `json:"demo,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// Links lists the project's outbound links.
func (p Project) Links() []string {
	var links []string
	if p.Demo != "" {
		links = append(links, p.Demo)
	}
	if p.GitHub != "" {
		links = append(links, p.GitHub)
	}
	return links
}

// Award is an award record as published in awards.json.
type Award struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Contact is one way of reaching the portfolio owner.
type Contact struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// Skill is a skill card.
type Skill struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}
