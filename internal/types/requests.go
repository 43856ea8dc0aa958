package types

// AnalyzeRequest is the transport shape for a single analysis.
type AnalyzeRequest struct {
	JobTitle       string            `json:"job_title,omitempty"`
	JobDescription string            `json:"job_description" validate:"required"`
	Resume         string            `json:"resume" validate:"required"`
	Settings       *AnalysisSettings `json:"settings,omitempty" validate:"omitempty"`
	TopK           int               `json:"top_k,omitempty" validate:"gte=0,lte=200"`
}

// EffectiveSettings returns the request settings, falling back to defaults,
// with the job title copied into TitleText when the settings carry none.
func (r *AnalyzeRequest) EffectiveSettings() AnalysisSettings {
	settings := DefaultSettings()
	if r.Settings != nil {
		settings = *r.Settings
	}
	if settings.TitleText == "" {
		settings.TitleText = r.JobTitle
	}
	return settings
}

// NamedText is a labelled document, used for batch résumés.
type NamedText struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text"`
}

// BatchRequest compares one job description against several résumés.
type BatchRequest struct {
	JobTitle       string            `json:"job_title,omitempty"`
	JobDescription string            `json:"job_description" validate:"required"`
	Resumes        []NamedText       `json:"resumes" validate:"required,min=1,max=50,dive"`
	Settings       *AnalysisSettings `json:"settings,omitempty" validate:"omitempty"`
	TopK           int               `json:"top_k,omitempty" validate:"gte=0,lte=200"`
}

// BatchResult is the outcome for one résumé of a batch.
type BatchResult struct {
	Name   string          `json:"name"`
	Result *AnalysisResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchResponse holds per-résumé results in request order.
type BatchResponse struct {
	ID      string        `json:"id"`
	Results []BatchResult `json:"results"`
}
