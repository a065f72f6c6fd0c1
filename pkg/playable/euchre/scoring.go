package euchre

// points awarded at the end of a round
const (
	pointsMake       = 1
	pointsMarch      = 2
	pointsEuchre     = 2
	pointsLonerMarch = 4
)

// RoundResult is the outcome of a completed round
type RoundResult struct {
	Team1Tricks int  `json:"team1Tricks"`
	Team2Tricks int  `json:"team2Tricks"`
	Team1Points int  `json:"team1Points"`
	Team2Points int  `json:"team2Points"`
	CallingTeam Team `json:"callingTeam"`
	CalledRound int  `json:"calledRound"`
	GoingAlone  bool `json:"goingAlone"`
	March       bool `json:"march"`
	Euchred     bool `json:"euchred"`

	// WinningTeam is set when the game ended on this round
	WinningTeam Team `json:"winningTeam"`
}

// scoreRound computes the points for a completed round.
// The calling team needs three tricks to make their bid: all five is a march
// (two points, four alone), three or four is a single point, and fewer than
// three is a euchre worth two points to the defenders.
func scoreRound(callingTeam Team, goingAlone bool, tricksWon [2]int) *RoundResult {
	result := &RoundResult{
		Team1Tricks: tricksWon[Team1.index()],
		Team2Tricks: tricksWon[Team2.index()],
		CallingTeam: callingTeam,
		GoingAlone:  goingAlone,
	}

	var points [2]int
	callerTricks := tricksWon[callingTeam.index()]

	switch {
	case callerTricks == 5 && goingAlone:
		result.March = true
		points[callingTeam.index()] = pointsLonerMarch
	case callerTricks == 5:
		result.March = true
		points[callingTeam.index()] = pointsMarch
	case callerTricks >= 3:
		points[callingTeam.index()] = pointsMake
	default:
		result.Euchred = true
		points[callingTeam.Opposing().index()] = pointsEuchre
	}

	result.Team1Points = points[Team1.index()]
	result.Team2Points = points[Team2.index()]

	return result
}
