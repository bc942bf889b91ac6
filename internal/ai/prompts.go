package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ParseJob string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	ParseJob string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ParseJob: `You are an expert recruiter and job-posting analyst. Your role is to extract structured, factual data from unstructured job descriptions. Your core principles are:

- Extract only what the posting actually states, never infer skills that are not mentioned
- Preserve the posting's own wording for skills, tools, and responsibilities
- Distinguish hard requirements from nice-to-haves
- Return every requested field, using an empty list when the posting contains nothing for it

Your expertise includes:
- Technical and non-technical skill taxonomy
- Seniority level conventions across industries
- ATS keyword extraction`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	ParseJob: `Please extract structured data from the provided job description.

**Fields to extract:**

1. **role**: The job title being hired for.
2. **seniority**: The seniority level as stated or implied (e.g. "junior", "mid", "senior", "lead", "principal", "staff").
3. **hard_skills**: Technical skills, languages, frameworks, and platforms explicitly required.
4. **soft_skills**: Interpersonal and organizational skills mentioned.
5. **tools**: Specific tools, products, and services named in the posting.
6. **responsibilities**: The duties the role performs, one entry per duty.
7. **requirements**: Qualification requirements (education, years of experience, certifications).
8. **keywords**: The most important keywords an applicant tracking system would match on.
9. **nice_to_have**: Skills or qualifications listed as preferred or bonus rather than required.

Every field must be present in the output. Use an empty list for any field the posting gives no information about.

**Job Description:**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
