package webpath

const (
	Home = "/"

	Api             = "/api"
	ApiPlayers      = Api + "/players"
	ApiPlayersCount = ApiPlayers + "/count"
	ApiPlayer       = ApiPlayers + "/:id"

	ApiMatches         = Api + "/matches"
	ApiMatch           = ApiMatches + "/:id"
	ApiInnings         = ApiMatch + "/innings"
	ApiInningsLastBall = ApiInnings + "/:number/balls/last"
	ApiBalls           = ApiMatch + "/balls"
	ApiLastBall        = ApiBalls + "/last"
	ApiDeclare         = ApiMatch + "/declare"
	ApiTossCall        = ApiMatch + "/toss/call"
	ApiTossFlip        = ApiMatch + "/toss/flip"
	ApiTossDecision    = ApiMatch + "/toss/decision"
	ApiTossComplete    = ApiMatch + "/toss/complete"

	ApiExport = Api + "/export"
	ApiImport = Api + "/import"
)

// Path lists the API routes by name, served at the API root so clients can
// discover them.
func Path() map[string]string {
	return map[string]string{
		"Players":         ApiPlayers,
		"PlayersCount":    ApiPlayersCount,
		"Player":          ApiPlayer,
		"Matches":         ApiMatches,
		"Match":           ApiMatch,
		"Innings":         ApiInnings,
		"InningsLastBall": ApiInningsLastBall,
		"Balls":           ApiBalls,
		"LastBall":        ApiLastBall,
		"Declare":         ApiDeclare,
		"TossCall":        ApiTossCall,
		"TossFlip":        ApiTossFlip,
		"TossDecision":    ApiTossDecision,
		"TossComplete":    ApiTossComplete,
		"Export":          ApiExport,
		"Import":          ApiImport,
	}
}
