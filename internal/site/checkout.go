package site

import (
	"fmt"
	"html/template"
)

// Course-wide learning objectives shared by every checkout page. These
// come from the course design, not the schedule, so they are fixed here.
var (
	CollaborationObjectives = []string{
		"LO1: Elicit, listen to, and incorporate ideas from teammates with different perspectives and backgrounds",
		"LO2: Work productively in your teams and with your whole class to learn and solve problems, including asking questions and sharing ideas respectfully, listening to understand, supporting classmates, and valuing the perspectives and experiences of others.",
	}

	CommunicationsObjectives = []string{
		"LO1: Use a variety of modes to communicate in mechanical engineering. (e.g. oral, written, visual)",
		"LO2: Translate concepts of functions between four points of view (i.e., the \"Rule of Four\"): geometric (graphs), numeric (tables), symbolic (formulas), and verbal (words), with a particular emphasis on translating between words and other representations.",
	}
)

// CheckoutTaskText builds the task statement for a checkout page. The
// homework reference becomes a link when the homework page URL is known,
// and drops out entirely when no homework is due that week.
func CheckoutTaskText(homeworkNumber, homeworkURL string) template.HTML {
	if homeworkNumber == "" {
		return "Your checkout group is tasked with demonstrating and explaining your solution to this module's checkout problem using the whiteboard as your primary medium to show your approach."
	}

	reference := fmt.Sprintf("Homework %s, Problem XXX", template.HTMLEscapeString(homeworkNumber))
	if homeworkURL != "" {
		reference = fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, template.HTMLEscapeString(homeworkURL), reference)
	}
	return template.HTML(fmt.Sprintf("Your checkout group is tasked with demonstrating and explaining your solution to this module's checkout problem (%s) using the whiteboard as your primary medium to show your approach.", reference))
}
