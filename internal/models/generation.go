package models

// Word count bounds for a generation request.
const (
	MinWordCount = 50
	MaxWordCount = 1700
)

// Tones selectable in the form.
var Tones = []string{
	"Visionary Tech Analyst",
	"Solopreneur/Lifestyle Designer",
	"Practical Educator",
	"Regional Specialist",
	"Provocateur",
	"Insider",
}

// ContentTypes selectable in the form (multi-select).
var ContentTypes = []string{
	"News Breakdown",
	"Philosophical Essay",
	"Tactical Guide",
	"Case Study",
	"Personal Story",
}

// Regions selectable as the target audience region.
var Regions = []string{
	"Global (International)",
	"North America (US/CA)",
	"Europe (EU/UK)",
	"Asia Pacific",
	"Local (My Location)",
}

// EngagementLevels selectable in the form.
var EngagementLevels = []string{"Low", "Medium", "High"}

// NarrativePatterns selectable in the form (multi-select).
var NarrativePatterns = []string{
	"Storytelling Arc",
	"Us vs. Them Mentality",
	"Relatability Factor",
}

// GenerationRequest carries the validated parameters of one workflow run.
type GenerationRequest struct {
	Topic             string   `json:"topic" validate:"required"`
	CustomContent     string   `json:"custom_content"`
	Tone              string   `json:"tone" validate:"required"`
	ContentTypes      []string `json:"content_types" validate:"min=1"`
	TargetWordCount   int      `json:"target_word_count" validate:"min=50,max=1700"`
	EngagementLevel   string   `json:"engagement_level" validate:"required,oneof=Low Medium High"`
	NarrativePatterns []string `json:"narrative_patterns"`
	TargetRegion      string   `json:"target_region"`
	CreativityLevel   float64  `json:"creativity_level" validate:"min=0,max=1"`
}

// ContextBundle holds enrichment facts retrieved for a topic.
// An empty bundle is valid: generation proceeds on general knowledge.
type ContextBundle struct {
	Facts   []string     `json:"facts"`
	Sources []SourceLink `json:"sources"`
}

// SourceLink points at an article backing one or more facts.
type SourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// GenerationResult is the workflow output for one successful run.
type GenerationResult struct {
	Post      PostDB            `json:"post"`
	Sources   []SourceLink      `json:"sources"`
	ShareURLs map[string]string `json:"share_urls"`
}
