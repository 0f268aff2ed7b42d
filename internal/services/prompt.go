package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the ATS and writing analysis prompt.
// The resume text and job description are interpolated verbatim.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze this resume against the job description with strict ATS scoring and detailed writing improvements.
Follow this exact JSON structure:

{
  "ATS_Analysis": {
    "Total_Score": "X%%",
    "Breakdown": {
      "Keyword_Match": "X%%",
      "Experience_Match": "X%%",
      "Skill_Alignment": "X%%",
      "Grammar_Score": "X%%"
    },
    "Missing_Keywords": {
      "Hard_Skills": ["list"],
      "Soft_Skills": ["list"],
      "Critical_Missing": ["top 5"]
    },
    "Experience_Gaps": {
      "Years_Short": X,
      "Missing_Roles": ["list"],
      "Industry_Gaps": ["list"]
    }
  },
  "Writing_Improvements": {
    "Total_Errors": X,
    "Errors": [
      {
        "Original_Text": "exact phrase",
        "Section": "specific section",
        "Line_Number": X,
        "Error_Type": "Grammar|Style|Formatting|Word_Choice",
        "Correction": "exact replacement",
        "Explanation": "technical reason",
        "Severity": "Critical|High|Medium"
      }
    ],
    "Style_Recommendations": [
      {
        "Issue": "specific problem",
        "Example": "original text",
        "Improved_Version": "rewritten text",
        "Section": "where to apply"
      }
    ]
  },
  "Optimization_Tips": ["prioritized list"]
}

Analysis Requirements:
1. ATS Scoring (60%% weight):
   - Compare skills/experience with JD
   - Calculate keyword match percentage
   - Identify critical missing requirements

2. Writing Analysis (40%% weight):
   - Find ALL grammatical errors with exact locations
   - Require exact replacement text
   - Classify error types technically
   - Highlight style inconsistencies
   - Suggest measurable improvements

3. Formatting Checks:
   - Bullet point consistency
   - Tense uniformity
   - Date formats
   - Section ordering

Job Description: %s
Resume Text: %s`,
		jobDescription, resumeText)
}
