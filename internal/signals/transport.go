package signals

import "github.com/MOYARU/crs/internal/analysis"

// Transport reports the transport-security signal for a reachable page.
// HTTPS earns a small bonus; plain HTTP earns nothing but is still noted so
// the explanation accounts for the missing credit.
func Transport(p *analysis.Page, w Weights) Signal {
	if p.UsedHTTPS {
		return Signal{
			ID:     "TRANSPORT_HTTPS",
			Clause: "Uses HTTPS (encrypted connection).",
			Delta:  w.HTTPSBonus,
		}
	}
	return Signal{
		ID:     "TRANSPORT_HTTP",
		Clause: "Served over plain HTTP; no transport security credit.",
		Delta:  0,
	}
}
