package version

const Value = "0.3.0"

func ScorerUserAgent() string {
	return "Mozilla/5.0 (compatible; CRS-CredibilityBot/" + Value + ")"
}
