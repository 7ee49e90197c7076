// Package prompt assembles the system prompts sent to the chat provider.
// Every function here is pure.
package prompt

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/ai-interviewer/internal/model"
)

// InterviewerPersona is the base layer of every turn prompt.
const InterviewerPersona = "You are a professional, polite technical interviewer. Your goal is to assess the candidate. Keep your answers concise (max 2 sentences) to keep the voice conversation natural. Do not be repetitive."

// ResumeTextLimit caps how much of the resume text reaches the extractor.
const ResumeTextLimit = 3000

// BuildInterviewPrompt layers resume context, job context and the persona,
// in that order. Either context may be nil.
func BuildInterviewPrompt(persona string, job *model.JobContext, resume *model.ResumeContext) string {
	systemPrompt := persona
	if job != nil {
		systemPrompt = jobPrefix(job) + systemPrompt
	}
	if resume != nil {
		systemPrompt = resumePrefix(resume) + systemPrompt
	}
	return systemPrompt
}

func jobPrefix(job *model.JobContext) string {
	return fmt.Sprintf("You are interviewing for the role: %s. \nJob Requirements: %s\nDifficulty Level: %s\nAdjust your questions and expectations based on this %s difficulty level. ",
		job.RoleTitle, job.JobDescription, job.Difficulty, job.Difficulty)
}

func resumePrefix(resume *model.ResumeContext) string {
	skills := strings.Join(resume.TechnicalSkills, ", ")
	if skills == "" {
		skills = "Not specified"
	}
	focus := resume.MostImpressiveProject
	if focus == "" {
		focus = "their experience"
	}
	return fmt.Sprintf("The candidate is %s. Skills: %s. Focus questions on: %s. ", resume.FullName, skills, focus)
}

// BuildAnalysisPrompt returns the system prompt for the end-of-interview
// scoring request.
func BuildAnalysisPrompt(job *model.JobContext) string {
	var b strings.Builder
	b.WriteString("You are an expert Technical Interviewer. ")
	if job != nil {
		fmt.Fprintf(&b, "You are analyzing an interview for: %s\nRole Requirements: %s\nDifficulty Level: %s\nAdjust your scoring based on the %s difficulty level. ",
			job.RoleTitle, job.JobDescription, job.Difficulty, job.Difficulty)
	}
	b.WriteString(`
Analyze the following interview transcript.
Return a STRICT JSON object (no markdown, no plain text) with these fields:
- "technical_score": (integer 0-100)
- "communication_score": (integer 0-100)
- "confidence_score": (integer 0-100)
- "feedback": (array of 3 objects, each having: "topic", "feedback", "better_answer")

CRITICAL: Return ONLY valid JSON.`)
	return b.String()
}

// RenderTranscript turns history into "Candidate: ..." / "Interviewer: ..."
// lines separated by blank lines.
func RenderTranscript(history []model.Message) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "Interviewer"
		if msg.Role == model.RoleUser {
			speaker = "Candidate"
		}
		lines = append(lines, speaker+": "+msg.Content)
	}
	return strings.Join(lines, "\n\n")
}

func AnalysisUserMessage(history []model.Message) string {
	return "Here is the transcript:\n\n" + RenderTranscript(history)
}

// BuildResumeExtractionPrompt embeds at most ResumeTextLimit characters of
// the resume text.
func BuildResumeExtractionPrompt(text string) string {
	return `You are a Resume Parser. Extract the following details from the resume text below.
Return ONLY a strict JSON object (no markdown) with these keys:
- fullName (string)
- technicalSkills (array of strings, max 5)
- mostImpressiveProject (string, summary in 1 sentence)

Resume Text:
` + Truncate(text, ResumeTextLimit)
}

const ResumeExtractionUserMessage = "Extract data."

// Truncate cuts s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
