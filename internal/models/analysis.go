package models

// AnalysisReport mirrors the JSON structure the analysis prompt instructs the
// model to produce. The API relays the model output without enforcing this
// shape; the types document the contract for callers and tests.
type AnalysisReport struct {
	ATSAnalysis         ATSAnalysis         `json:"ATS_Analysis"`
	WritingImprovements WritingImprovements `json:"Writing_Improvements"`
	OptimizationTips    []string            `json:"Optimization_Tips"`
}

type ATSAnalysis struct {
	TotalScore      string          `json:"Total_Score"`
	Breakdown       ScoreBreakdown  `json:"Breakdown"`
	MissingKeywords MissingKeywords `json:"Missing_Keywords"`
	ExperienceGaps  ExperienceGaps  `json:"Experience_Gaps"`
}

type ScoreBreakdown struct {
	KeywordMatch    string `json:"Keyword_Match"`
	ExperienceMatch string `json:"Experience_Match"`
	SkillAlignment  string `json:"Skill_Alignment"`
	GrammarScore    string `json:"Grammar_Score"`
}

type MissingKeywords struct {
	HardSkills      []string `json:"Hard_Skills"`
	SoftSkills      []string `json:"Soft_Skills"`
	CriticalMissing []string `json:"Critical_Missing"`
}

type ExperienceGaps struct {
	YearsShort   float64  `json:"Years_Short"`
	MissingRoles []string `json:"Missing_Roles"`
	IndustryGaps []string `json:"Industry_Gaps"`
}

type WritingImprovements struct {
	TotalErrors          int                   `json:"Total_Errors"`
	Errors               []WritingError        `json:"Errors"`
	StyleRecommendations []StyleRecommendation `json:"Style_Recommendations"`
}

type WritingError struct {
	OriginalText string `json:"Original_Text"`
	Section      string `json:"Section"`
	LineNumber   int    `json:"Line_Number"`
	ErrorType    string `json:"Error_Type"`
	Correction   string `json:"Correction"`
	Explanation  string `json:"Explanation"`
	Severity     string `json:"Severity"`
}

type StyleRecommendation struct {
	Issue           string `json:"Issue"`
	Example         string `json:"Example"`
	ImprovedVersion string `json:"Improved_Version"`
	Section         string `json:"Section"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error       string `json:"error"`
	RawResponse string `json:"raw_response,omitempty"`
}
