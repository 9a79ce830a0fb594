package classifier

import "fmt"

const planShape = `{"category": "<kebab-case-folder-name>", "reasoning": "<one or two sentences>", "confidence": "<high|medium|low>"}`

const bootstrapInstructions = `The library is currently empty. You are creating its first category.

Inspect the transcript's content themes and propose one category folder that future
related transcripts could also live in. The category must be a single kebab-case path
segment (lowercase words joined by hyphens, no slashes), broad enough to be reusable
but specific enough to be meaningful (e.g. "ai-podcasts", "cooking-tutorials").`

const incrementalInstructions = `The library already contains the categories listed below.

Inspect the transcript's content themes. Prefer filing it into an existing category
when one is semantically apt; only propose a new category when nothing existing fits.
A new category must be a single kebab-case path segment (lowercase words joined by
hyphens, no slashes). Never propose nested paths.`

// buildPrompt renders the classification prompt. Two variants: bootstrap
// when the library has no transcript entries yet, incremental otherwise.
func buildPrompt(in Input) string {
	instructions := bootstrapInstructions
	library := ""
	if in.HasEntries {
		instructions = incrementalInstructions
		library = fmt.Sprintf("\nCurrent library:\n%s\n", in.Digest)
	}

	return fmt.Sprintf(`You are organizing a transcript library: each processed video is filed into exactly
one category folder at the top level of the archive.

%s
%s
New transcript to file:
Source: %s
Title: %s

Transcript:
---
%s
---

Respond with ONLY a JSON object of this exact shape, no surrounding prose:
%s`, instructions, library, in.Source, in.Title, in.Transcript, planShape)
}
