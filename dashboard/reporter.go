package dashboard

import "gogp"

// BestPayload is the JSON shape sent for KindBest messages.
type BestPayload struct {
	Fitness     float64 `json:"fitness"`
	BranchCount int     `json:"branch_count"`
}

// FitnessFailurePayload is the JSON shape sent for KindFitnessFailure
// messages.
type FitnessFailurePayload struct {
	Error string `json:"error"`
}

// Reporter adapts a Hub into a gogp.Report callback, so a caller can
// pass dashboard.Reporter(hub) directly as Options.ReportFn and watch a
// run from a browser with no further wiring.
func Reporter(h *Hub) gogp.Report {
	return func(ev gogp.ReportEvent) {
		switch ev.Kind {
		case gogp.ReportBest:
			h.Broadcast(KindBest, BestPayload{
				Fitness:     ev.Fitness,
				BranchCount: len(ev.Individual.Branches),
			})
		case gogp.ReportFitnessFailure:
			h.Broadcast(KindFitnessFailure, FitnessFailurePayload{Error: ev.Err.Error()})
		}
	}
}
