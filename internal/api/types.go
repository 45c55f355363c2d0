package api

type AccountResponse struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	Puuid        string `json:"puuid"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64 `json:"gameCreation"`
	// seconds, or milliseconds when GameEndTimestamp is absent (pre patch 11.20 payloads)
	GameDuration     int64              `json:"gameDuration"`
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	GameMode         string             `json:"gameMode"`
	GameVersion      string             `json:"gameVersion"`
	QueueID          int                `json:"queueId"`
	Participants     []MatchParticipant `json:"participants"`
}

type MatchParticipant struct {
	Puuid                       string      `json:"puuid"`
	RiotIDGameName              string      `json:"riotIdGameName"`
	RiotIDTagline               string      `json:"riotIdTagline"`
	TeamID                      int         `json:"teamId"`
	ChampionID                  int         `json:"championId"`
	ChampionName                string      `json:"championName"`
	TeamPosition                string      `json:"teamPosition"`
	Win                         bool        `json:"win"`
	Kills                       int         `json:"kills"`
	Deaths                      int         `json:"deaths"`
	Assists                     int         `json:"assists"`
	TotalMinionsKilled          int         `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int         `json:"neutralMinionsKilled"`
	GoldEarned                  *int        `json:"goldEarned"`
	TotalDamageDealtToChampions int         `json:"totalDamageDealtToChampions"`
	Challenges                  *Challenges `json:"challenges"`
}

// Challenges is only present on newer payloads, and not every field is filled in.
type Challenges struct {
	GoldPerMinute *float64 `json:"goldPerMinute"`
	GoldDiffAt10  *float64 `json:"goldDiffAt10"`
	KDA           *float64 `json:"kda"`
}
