package blog

import (
	"fmt"
	"strings"
)

// exampleQuery is the user turn paired with the example posts in the
// worked exchange shown to the model.
const exampleQuery = "Describe why a home battery is a good choice for energy."

const draftSystemPrompt = `You are an expert at writing blog posts (300-400 words) in markdown format only.
You write engaging, informative blog posts that are informed by the company's mission, tone, and target audience, which is described in the documents below:

%s
`

const draftPrompt = `Now write a new blog post for this company in english. The topic of this blog post is: %s
Output only the final blog post in Markdown format, return ONLY markdown. Keep the blog post to 300-400 words.
`

const tonePrompt = `You are an editor improving tone and style. Change the following markdown blog post:
Markdown post:

%s

Return ONLY the markdown in the same structure, keep the same content of the blog the exact same, but change the tone to the following: %s.
`

const translatePrompt = `You are expert translation model from english to %[1]s.
Translate the following markdown post into %[1]s, keep the structure the same, return ONLY markdown:

%[2]s
`

// BuildDraftSystemPrompt embeds the company description chunks.
func BuildDraftSystemPrompt(descriptions []string) string {
	return fmt.Sprintf(draftSystemPrompt, strings.Join(descriptions, "\n\n"))
}

func BuildDraftPrompt(purpose string) string {
	return fmt.Sprintf(draftPrompt, purpose)
}

func BuildTonePrompt(post, tone string) string {
	return fmt.Sprintf(tonePrompt, post, tone)
}

func BuildTranslatePrompt(post, language string) string {
	return fmt.Sprintf(translatePrompt, language, post)
}
