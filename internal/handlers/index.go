package handlers

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

//go:embed templates/index.html.tmpl
var indexTemplate string

type indexData struct {
	BypassMode        bool
	Tones             []string
	ContentTypes      []string
	Regions           []string
	EngagementLevels  []string
	NarrativePatterns []string
	MinWordCount      int
	MaxWordCount      int
}

// NewIndexHandler returns an HTTP handler serving the generation form page.
// The page runs against the JSON API; bypassMode switches the access hint
// shown to the user.
func NewIndexHandler(bypassMode bool) http.HandlerFunc {
	tmpl := template.Must(template.New("index").Parse(indexTemplate))

	data := indexData{
		BypassMode:        bypassMode,
		Tones:             models.Tones,
		ContentTypes:      models.ContentTypes,
		Regions:           models.Regions,
		EngagementLevels:  models.EngagementLevels,
		NarrativePatterns: models.NarrativePatterns,
		MinWordCount:      models.MinWordCount,
		MaxWordCount:      models.MaxWordCount,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render index page", "error", err)
		}
	}
}
