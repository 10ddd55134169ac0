package handlers

import (
	"net/http"

	"github.com/0xElectro/tournament-manager/services"
)

// ViewerHandler serves the read-only HTTP view of each tournament. All
// mutation happens through the operator console; these endpoints only
// expose what the console has built.
type ViewerHandler struct {
	roster    services.RosterService
	matches   services.MatchService
	standings services.StandingsService
}

func NewViewerHandler(rs services.RosterService, ms services.MatchService, ss services.StandingsService) *ViewerHandler {
	return &ViewerHandler{
		roster:    rs,
		matches:   ms,
		standings: ss,
	}
}

func (h *ViewerHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	sport, err := sportFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	table, err := h.standings.Table(sport)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"sport": sport, "standings": table}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ViewerHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sport, err := sportFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matches.ListMatches(sport)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"sport": sport, "matches": matches}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ViewerHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	sport, err := sportFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	results, err := h.matches.ListResults(sport)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"sport": sport, "results": results}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ViewerHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	sport, err := sportFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.roster.ListTeams(sport)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"sport": sport, "teams": teams}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
