package service

import "doc-digest/internal/domain"

const bulletInstruction = "Use '•' for bullet points and ensure each point starts on a new line:"

const qaFormatInstruction = "strictly in the format:\n\n" +
	"Question:\n[Question here]\nAnswer:\n[Answer here]\n\n" +
	"Ensure each question and answer are on separate lines."

// Pair counts are requested from the backend, never checked afterwards.
var promptPreambles = map[domain.TaskKind]map[domain.DetailLevel]string{
	domain.TaskSummary: {
		domain.DetailSmall: "Summarize the following text in a short bullet-point summary. " +
			bulletInstruction,
		domain.DetailMedium: "Provide a medium-length bullet-point summary of the following text. " +
			"If the content is too short, expand with more context. " +
			bulletInstruction,
		domain.DetailLarge: "Provide a detailed bullet-point summary of the following text. " +
			"If the content is too short, expand with comprehensive details. " +
			bulletInstruction,
	},
	domain.TaskQA: {
		domain.DetailSmall: "Generate 2-3 high-level, abstract question-answer pairs about the main ideas of the following text, " +
			qaFormatInstruction,
		domain.DetailMedium: "Generate 4-6 question-answer pairs from the following text, mixing abstract questions about the main ideas " +
			"with detailed questions about specific facts, " + qaFormatInstruction,
		domain.DetailLarge: "Generate 7 or more question-answer pairs from the following text, spanning abstract, intermediate " +
			"and detailed questions that together cover the whole text, " + qaFormatInstruction,
	},
}

// BuildPrompt returns the instruction for the request followed by a blank
// line and the text verbatim. Unknown task kinds or levels fall back to the
// small summary template.
func BuildPrompt(req domain.GenerationRequest) string {
	return Preamble(req.Task, req.DetailLevel) + "\n\n" + req.Text
}

// Preamble returns the fixed instruction text for a task and detail level.
func Preamble(task domain.TaskKind, level domain.DetailLevel) string {
	levels, ok := promptPreambles[task]
	if !ok {
		levels = promptPreambles[domain.TaskSummary]
	}
	if p, ok := levels[level]; ok {
		return p
	}
	return levels[domain.DefaultDetailLevel]
}
