package schedule

// NBATeamCodes lists the 30 franchise codes used by the game calendar.
func NBATeamCodes() []string {
	return []string{
		"ATL", "BOS", "BKN", "CHA", "CHI", "CLE", "DAL", "DEN", "DET", "GSW",
		"HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN", "NOP", "NYK",
		"OKC", "ORL", "PHI", "PHX", "POR", "SAC", "SAS", "TOR", "UTA", "WAS",
	}
}

// DefaultTeamCodes maps roster team codes to calendar codes. Most sources
// already agree on the franchise codes, so the default is the identity over
// the known set plus the handful of spellings that differ between providers.
func DefaultTeamCodes() map[string]string {
	codes := make(map[string]string, 36)
	for _, code := range NBATeamCodes() {
		codes[code] = code
	}
	// Provider variants seen in pasted rosters.
	codes["BRK"] = "BKN"
	codes["CHO"] = "CHA"
	codes["GS"] = "GSW"
	codes["NO"] = "NOP"
	codes["NY"] = "NYK"
	codes["SA"] = "SAS"
	return codes
}
