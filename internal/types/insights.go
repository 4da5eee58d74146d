package types

// IndustryInsights is the structured overview the model returns for one industry
type IndustryInsights struct {
	Industry       string   `json:"industry"`
	Overview       string   `json:"overview"`
	Trends         []string `json:"trends"`
	InDemandSkills []string `json:"inDemandSkills"`
	SalaryRange    string   `json:"salaryRange"`
	GrowthOutlook  string   `json:"growthOutlook"`
	EntryPaths     []string `json:"entryPaths,omitempty"`
}
