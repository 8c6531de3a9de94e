package signals

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DomainPrior maps the registered suffix of the host to a fixed credibility
// adjustment. It always fires: unknown suffixes contribute the "other" delta
// with a clause saying credibility varies.
func DomainPrior(u *url.URL, w Weights) Signal {
	host := strings.ToLower(u.Hostname())
	suffix, _ := publicsuffix.PublicSuffix(host)

	switch {
	case suffix == "gov" || strings.HasSuffix(suffix, ".gov"):
		return Signal{
			ID:     "DOMAIN_GOV",
			Clause: "Government domain (.gov) tends to be reliable.",
			Delta:  w.SuffixGov,
		}
	case suffix == "edu" || strings.HasSuffix(suffix, ".edu"):
		return Signal{
			ID:     "DOMAIN_EDU",
			Clause: "Educational domain (.edu) tends to be reliable.",
			Delta:  w.SuffixEdu,
		}
	case suffix == "org" || strings.HasSuffix(suffix, ".org"):
		return Signal{
			ID:     "DOMAIN_ORG",
			Clause: "Organization domain (.org) can be credible depending on the org.",
			Delta:  w.SuffixOrg,
		}
	case suffix == "com" || strings.HasSuffix(suffix, ".com"):
		return Signal{
			ID:     "DOMAIN_COM",
			Clause: "Commercial domain (.com) varies widely in credibility.",
			Delta:  w.SuffixCom,
		}
	default:
		return Signal{
			ID:     "DOMAIN_OTHER",
			Clause: "Unknown/other domain suffix; credibility varies.",
			Delta:  w.SuffixOther,
		}
	}
}
