// Package scoring implements the three test scorers and the static
// lookup tables used to enrich raw results with display fields.
package scoring

// MBTIResult is the personality test outcome. Type and Counts come from
// the scorer; the remaining fields are filled by enrichment.
type MBTIResult struct {
	Type        string         `json:"type"`
	Counts      map[string]int `json:"counts"`
	TypeName    string         `json:"typeName,omitempty"`
	Epithet     string         `json:"epithet,omitempty"`
	Description string         `json:"description,omitempty"`

	GeneralTraits  []string `json:"generalTraits,omitempty"`
	Strengths      []string `json:"strengths,omitempty"`
	TenRulesToLive []string `json:"tenRulesToLive,omitempty"`
}

// IQResult is the IQ test outcome. Level and Description are enrichment
// fields derived from the score band.
type IQResult struct {
	Score        int    `json:"score"`
	CorrectCount int    `json:"correctCount"`
	Age          int    `json:"age"`
	Timestamp    int64  `json:"timestamp,omitempty"`
	Level        string `json:"level,omitempty"`
	Description  string `json:"description,omitempty"`
}

// FFMScore is one five-factor-model trait percentage.
type FFMScore struct {
	Trait      string `json:"trait"`
	Percentage int    `json:"percentage"`
}

// CareerResult is the career test outcome. MBTITypeName and Careers are
// enrichment fields looked up from the derived type code.
type CareerResult struct {
	FFMScores    []FFMScore `json:"ffmScores"`
	MBTIType     string     `json:"mbtiType"`
	MBTITypeName string     `json:"mbtiTypeName,omitempty"`
	Careers      []string   `json:"careers,omitempty"`
}
