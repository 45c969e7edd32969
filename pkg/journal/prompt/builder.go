package prompt

import "strings"

// Build renders the journal generation prompt. Template selection is
// purely presence/absence of context; there is no other branching.
func Build(document, context string) string {
	var prompt strings.Builder

	writeSessionDocument(&prompt, document)

	if context != "" {
		writePastExperience(&prompt, context)
		writeGroundedTask(&prompt)
	} else {
		writeUngroundedTask(&prompt)
	}

	writeConstraints(&prompt)

	return prompt.String()
}

func writeSessionDocument(prompt *strings.Builder, document string) {
	prompt.WriteString("Current session:\n")
	prompt.WriteString("```")
	prompt.WriteString(document)
	prompt.WriteString("```\n\n")
}

func writePastExperience(prompt *strings.Builder, context string) {
	prompt.WriteString("This is the most relevant past experience that could be helpful for this result:\n")
	prompt.WriteString("```")
	prompt.WriteString(context)
	prompt.WriteString("```\n\n")
}

func writeGroundedTask(prompt *strings.Builder) {
	prompt.WriteString("Task: Analyze the current session and provide:\n")
	prompt.WriteString("1) A brief summary of the current situation and emotions (1-2 sentences)\n")
	prompt.WriteString("2) Actionable guidance that draws insight from the related past experience\n\n")
	prompt.WriteString("If the past experience contains a successful approach or solution, reference it specifically.\n")
}

func writeUngroundedTask(prompt *strings.Builder) {
	prompt.WriteString("Task: Analyze this session and provide:\n")
	prompt.WriteString("1) A brief summary of the current situation and emotions (1-2 sentences)\n")
	prompt.WriteString("2) Thoughtful, actionable guidance based on the content\n\n")
}

func writeConstraints(prompt *strings.Builder) {
	prompt.WriteString("Keep response under 120 words and make it personal and actionable.")
}
