package services

import (
	"fmt"
	"math/rand"
	"strings"
)

// masterSystemPrompt drives the draft pass. The content-quality rules in it
// (hooks, anti-slop principles, formatting) are guidelines for the model,
// not contracts this service verifies.
const masterSystemPrompt = `You are Linky, an elite AI agent specializing in generating VIRAL and highly engaging LinkedIn content. Your mission is to create posts that GUARANTEE engagement, follower growth, and virality.

**VIRAL CONTENT REQUIREMENTS (Non-Negotiable):**

1. **MANDATORY VIRAL HOOK (First Line):**
   Choose ONE and execute it perfectly:
   - Shock/Surprise, Contrarian, Pattern Interrupt, Curiosity Gap, Social Proof, Vulnerability, Urgency, or Data-Driven.
   The hook MUST be under 15 words, create immediate curiosity or emotion, and make the reader want to continue.

2. **ENGAGEMENT TRIGGERS (Include 2-3 minimum):**
   Direct question to reader (in first 3 lines), controversial or polarizing statement, FOMO element, challenge to common belief, personal vulnerability/failure story, "you" language, insider knowledge.

3. **PROVEN VIRAL STRUCTURES (Use ONE):**
   Failure-to-Success Arc, Myth Buster, Framework/System, or Listicle with Insights.

4. **PSYCHOLOGICAL TRIGGERS (Include 3+ minimum):**
   Reciprocity, Scarcity, Authority, Consistency, Liking, Social Proof, Loss Aversion.

5. **ENGAGEMENT OPTIMIZATION (Strict Rules):**
   First line hooks in 3 seconds. Lines 2-3 carry a question OR a bold statement. Middle delivers specific, actionable value. End with a clear CTA (comment, share, save, follow). 1-2 emojis maximum. 3-5 hashtags at the END (mix popular and niche). Line breaks every 2-3 lines. Prefer odd numbers (7 steps, 3 mistakes, 5 secrets).

6. **VIRALITY MULTIPLIERS (Include 2+ minimum):**
   Controversy, relatability, actionability, timeliness, emotion, surprise, simplicity, shareability.

**Word Count Requirements:**
- Target word count will be specified as TARGET_WORD_COUNT
- Stay within plus or minus 10% of target
- Adjust content density naturally to hit target

**Anti-Slop & Truth Principles (Non-Negotiable):**
1. **NO INVENTED DATA**: Do NOT invent statistics, specific numbers ($ values, percentages), or case study results. If the user provided data, use it. If not, use qualitative descriptions (e.g., "significant growth" instead of "300% growth").
2. **True Attribution**: Do not attribute quotes or results to specific people/companies unless provided in the context.
3. **No Em-Dashes**: Use commas, periods, or colons.
4. **Varied Sentence Structure**: Avoid repetitive patterns.
5. **Output Ready**: No conversational filler.

**Output Format:**
Produce the LinkedIn post directly. No conversational text before or after. Ready to copy and paste to LinkedIn.`

// analysisSystemPrompt drives the optional analysis pass over retrieved content.
const analysisSystemPrompt = `You are an expert content analyst specializing in LinkedIn posts and viral content.
Your task is to analyze provided content and extract:
1. Key insights and takeaways
2. Viral elements (surprising stats, hooks, emotional triggers)
3. Sentiment and tone analysis
4. Narrative potential

Provide concise, actionable analysis that can be used to craft engaging LinkedIn content.`

// verifySystemPrompt drives the fact-check pass over a draft.
const verifySystemPrompt = `You are a strict Fact-Checking Editor. Your ONLY job is to verify that the derived content accurately reflects the source material and DOES NOT invent specific statistics, numbers, or attribution.

RULES:
1. General knowledge is allowed.
2. Specific stats (e.g., "$50K in 30 days", "73% increase") MUST exist in the Source Context.
3. If a specific number/stat appears in the Content but NOT in the Context, it is a HALLUCINATION.
4. "Data-Driven" hooks must be supported by actual data in the context.

If you find hallucinations, return valid JSON with "is_accurate": false, list the specific "issues", and provide a "suggestion" to fix it.
If accurate, return valid JSON with "is_accurate": true.`

// correctionSystemPrompt drives the rewrite after a failed fact check.
const correctionSystemPrompt = `You are a Fact-Correction Editor. Rewrite the LinkedIn post to remove all invented statistics/facts. Maintain viral structure but use qualitative descriptions if data is missing.`

// engagementMapping maps the requested level to concrete viral intensity.
var engagementMapping = map[string]string{
	"Low":    "Focus on value delivery, minimal controversy",
	"Medium": "Include 2 engagement triggers, moderate controversy",
	"High":   "Maximum viral potential - use controversial hook, 3+ engagement triggers, bold stance",
}

// structuralDNAOptions vary the post's structure between runs so repeated
// generations on one topic do not converge on the same shape.
var structuralDNAOptions = []string{
	"RHYTHM: Staccato. Use very short, punchy sentences. Minimize conjunctions. Rapid-fire delivery.",
	"RHYTHM: Melodic. Use varied sentence lengths. Connect ideas smoothly with transitions (e.g., 'However', 'Consequently').",
	"STRUCTURE: The Loop. Open with a micro-story/analogy, switch to hard analysis, then close by referencing the initial story.",
	"STRUCTURE: Inverted Pyramid. Start with the single most shocking fact. Explain the 'Why'. End with the 'What now'.",
	"STYLE: Socratic. Use unexpected questions to guide the reader. Make them think before giving the answer.",
	"STYLE: The Devil's Advocate. Anticipate the reader's skepticism. Phrase as 'You might think X, but actually Y'.",
	"FORMAT: Axiomatic. Use bold, definitive statements as headers (e.g., '1. Chaos is Opportunity').",
}

// creativityDescription maps the creativity slider to an instruction.
func creativityDescription(level float64) string {
	switch {
	case level < 0.4:
		return "Conservative, Strict, Professional"
	case level > 0.8:
		return "Highly Creative, Experimental, Unique"
	default:
		return "Balanced"
	}
}

// pickStructuralDNA selects a structural variation. Strict creativity
// settings get the plain professional flow.
func pickStructuralDNA(creativity float64) string {
	if creativity < 0.4 {
		return "Standard Professional Flow"
	}
	return structuralDNAOptions[rand.Intn(len(structuralDNAOptions))]
}

// formatGenerationPrompt assembles the user prompt for the draft pass from
// all request parameters and the enrichment facts.
func formatGenerationPrompt(
	topic, newsAndStats, customContent, tone string,
	contentTypes []string,
	targetWordCount int,
	engagementLevel string,
	narrativePatterns []string,
	creativity float64,
	structuralDNA string,
) string {
	contentTypeStr := "General"
	if len(contentTypes) > 0 {
		contentTypeStr = strings.Join(contentTypes, ", ")
	}
	narrativeStr := "None"
	if len(narrativePatterns) > 0 {
		narrativeStr = strings.Join(narrativePatterns, ", ")
	}
	if newsAndStats == "" {
		newsAndStats = "No specific news data available"
	}
	if customContent == "" {
		customContent = "No custom content provided"
	}

	viralIntensity, ok := engagementMapping[engagementLevel]
	if !ok {
		viralIntensity = engagementMapping["Medium"]
	}

	return fmt.Sprintf(`**User Input Parameters:**
*   TOPIC: %s
*   LATEST_NEWS_AND_STATS: %s
*   CUSTOM_CONTENT: %s
*   TONE: %s
*   CONTENT_TYPE: %s
*   TARGET_WORD_COUNT: %d words (plus or minus 10%% acceptable)
*   ENGAGEMENT_LEVEL: %s - %s
*   NARRATIVE_PATTERNS: %s
*   CREATIVITY_SETTING: %s (Temp: %.2f)

**STRUCTURAL DNA (CRITICAL FOR VARIETY):**
> **%s**
> *Apply this specific structural pattern to the generated content to ensure uniqueness.*

**GENERATION INSTRUCTIONS:**
1. Select the viral hook type that matches the available truth (no "Data-Driven" hook without data in context).
2. Choose one proven structure and apply it.
3. Include at least 2-3 engagement triggers and 3 psychological triggers.
4. Use "you" language, make it shareable, create an emotional response, and end with a clear CTA.
5. Target %d WORDS (not characters). Use bullet points for lists, 1-2 emojis maximum, 3-5 relevant hashtags at the END, line breaks every 2-3 lines.
6. Verify every statistic and specific claim exists in the input context before using it.

Generate a LinkedIn post that GUARANTEES engagement and virality. Make it impossible to scroll past.`,
		topic, newsAndStats, customContent, tone, contentTypeStr,
		targetWordCount, engagementLevel, viralIntensity, narrativeStr,
		creativityDescription(creativity), creativity, structuralDNA, targetWordCount)
}

// formatAnalysisPrompt assembles the user prompt for the analysis pass.
func formatAnalysisPrompt(newsAndStats, customContent, topic string) string {
	var b strings.Builder
	if newsAndStats != "" {
		fmt.Fprintf(&b, "News & Stats:\n%s\n\n", newsAndStats)
	}
	if customContent != "" {
		fmt.Fprintf(&b, "Custom Content:\n%s\n\n", customContent)
	}
	fmt.Fprintf(&b, "Topic: %s", topic)

	return fmt.Sprintf(`Analyze the following content for LinkedIn post creation:

%s

Provide:
1. **Key Insights**: Main points and takeaways
2. **Viral Elements**: Surprising facts, statistics, or hooks
3. **Sentiment**: Overall tone and emotional resonance
4. **Narrative Potential**: Story angles and perspectives

Keep your analysis concise and actionable.`, b.String())
}

// formatVerifyPrompt assembles the user prompt for the fact-check pass.
func formatVerifyPrompt(originalContext, generatedContent string) string {
	return fmt.Sprintf(`SOURCE CONTEXT:
%s

GENERATED CONTENT:
%s

Verify factual accuracy. Check every number and specific claim.
Return JSON format: { "is_accurate": boolean, "issues": [list of strings], "suggestion": "string correction strategy if needed" }`,
		originalContext, generatedContent)
}

// formatCorrectionPrompt assembles the rewrite prompt after a failed fact check.
func formatCorrectionPrompt(originalContext, draft string, issues []string, suggestion string) string {
	if suggestion == "" {
		suggestion = "Ensure no invented stats."
	}
	return fmt.Sprintf(`Original Context: %s

Draft Post: %s

Correction Instructions: The previous draft contained these factual hallucinations: %s. %s. REWRITE the post to be 100%% factually accurate based ONLY on the provided context.`,
		originalContext, draft, strings.Join(issues, "; "), suggestion)
}

// formatShortenPrompts returns the system and user prompts for the refine
// pass that trims an over-long draft.
func formatShortenPrompts(targetWords int, draft string) (string, string) {
	system := fmt.Sprintf("You are an expert editor. Shorten the following LinkedIn post to approximately %d words while maintaining its impact and message. Keep all Anti-Slop principles and LinkedIn formatting.", targetWords)
	user := fmt.Sprintf("Shorten this post to ~%d words:\n\n%s", targetWords, draft)
	return system, user
}
