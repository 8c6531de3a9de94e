package signals

// Weights collects every tunable number in the heuristic. Control flow never
// hardcodes a delta; adjusting credibility behavior means adjusting this
// struct, optionally via the weights block of .crs.yaml.
type Weights struct {
	Base float64 `yaml:"base"`

	SuffixGov   float64 `yaml:"suffix_gov"`
	SuffixEdu   float64 `yaml:"suffix_edu"`
	SuffixOrg   float64 `yaml:"suffix_org"`
	SuffixCom   float64 `yaml:"suffix_com"`
	SuffixOther float64 `yaml:"suffix_other"`

	FetchPenalty float64 `yaml:"fetch_penalty"`
	FetchFloor   float64 `yaml:"fetch_floor"`

	HTTPSBonus float64 `yaml:"https_bonus"`
	TitleBonus float64 `yaml:"title_bonus"`

	LongTextBonus     float64 `yaml:"long_text_bonus"`
	ModerateTextBonus float64 `yaml:"moderate_text_bonus"`
	ShortTextPenalty  float64 `yaml:"short_text_penalty"`
	LongTextLen       int     `yaml:"long_text_len"`
	ModerateTextLen   int     `yaml:"moderate_text_len"`

	AuthorBonus    float64 `yaml:"author_bonus"`
	DateBonus      float64 `yaml:"date_bonus"`
	ReferenceBonus float64 `yaml:"reference_bonus"`
}

func DefaultWeights() Weights {
	return Weights{
		Base: 0.35,

		SuffixGov:   0.25,
		SuffixEdu:   0.20,
		SuffixOrg:   0.08,
		SuffixCom:   0.02,
		SuffixOther: 0.00,

		FetchPenalty: 0.25,
		FetchFloor:   0.05,

		HTTPSBonus: 0.05,
		TitleBonus: 0.03,

		LongTextBonus:     0.06,
		ModerateTextBonus: 0.03,
		ShortTextPenalty:  0.03,
		LongTextLen:       2000,
		ModerateTextLen:   600,

		AuthorBonus:    0.05,
		DateBonus:      0.04,
		ReferenceBonus: 0.06,
	}
}
