package hf

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the review prompt. Resume and job description are
// truncated so the prompt stays inside the model context window.
func BuildPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString("Analyze this resume and provide structured feedback:\n\n")
	b.WriteString("[Resume Content]\n")
	b.WriteString(truncate(resumeText, maxResumeChars))
	b.WriteString("\n\n[Job Description]\n")
	if strings.TrimSpace(jobDescription) == "" {
		b.WriteString("N/A")
	} else {
		b.WriteString(truncate(jobDescription, maxJobChars))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Format your response with these sections:\n%s\n\n", strings.Join([]string{
		"- Key Strengths: (3 bullet points)",
		"- Potential Weaknesses: (3 bullet points)",
		"- Skill Gaps: (list missing relevant skills)",
		"- Improvement Suggestions: (3 actionable items)",
		"- Match Score: (1-100 rating)",
	}, "\n")))
	b.WriteString("Keep responses concise and professional.")
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
