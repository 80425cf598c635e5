// Package templates ships the sample contracts offered to users as a starting point.
package templates

import "strings"

// Template is a named sample contract.
type Template struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Text string `json:"text"`
}

var builtin = []Template{
	{
		Name: "Employment Agreement",
		Slug: "employment-agreement",
		Text: `EMPLOYMENT AGREEMENT

This AGREEMENT is made on [Date] between [Company Name] and [Employee Name].

1. POSITION: The Employee is hired as [Job Title].
2. COMPENSATION: Monthly salary of INR [Amount].
3. TERMINATION: Either party may terminate with [30] days notice.
4. CONFIDENTIALITY: The Employee shall not disclose company secrets.
`,
	},
	{
		Name: "Non-Disclosure Agreement (NDA)",
		Slug: "non-disclosure-agreement-nda",
		Text: `NON-DISCLOSURE AGREEMENT

1. PURPOSE: To share information regarding [Project Name].
2. DEFINITION: Confidential information includes [List].
3. DURATION: 2 years from disclosure.
4. JURISDICTION: Courts of [City], India.
`,
	},
	{
		Name: "Service Contract",
		Slug: "service-contract",
		Text: `SERVICE AGREEMENT

1. SERVICES: [Description of services].
2. PAYMENT: [Amount] payable upon completion.
3. INDEMNITY: Parties agree to compensate for direct losses only.
4. ARBITRATION: Disputes shall be settled via arbitration in [City].
`,
	},
}

// List returns the templates in display order.
func List() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// Names returns the template names in display order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for _, t := range builtin {
		names = append(names, t.Name)
	}
	return names
}

// Get looks a template up by name or slug, ignoring case.
func Get(name string) (Template, bool) {
	name = strings.TrimSpace(name)
	for _, t := range builtin {
		if strings.EqualFold(t.Name, name) || strings.EqualFold(t.Slug, name) {
			return t, true
		}
	}
	return Template{}, false
}
