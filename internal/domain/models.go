package domain

import (
	"fmt"
	"strings"
)

type RiotID struct {
	GameName string
	TagLine  string
}

// ParseRiotID splits "GameName#TagLine". Both halves must be non-blank.
func ParseRiotID(s string) (RiotID, error) {
	name, tag, ok := strings.Cut(strings.TrimSpace(s), "#")
	name = strings.TrimSpace(name)
	tag = strings.TrimSpace(tag)
	if !ok || name == "" || tag == "" {
		return RiotID{}, fmt.Errorf("%w: %q must be GameName#TagLine", ErrInvalidIdentifier, s)
	}
	return RiotID{GameName: name, TagLine: tag}, nil
}

func (r RiotID) String() string {
	return r.GameName + "#" + r.TagLine
}

type PlayerIdentity struct {
	GameName string
	TagLine  string
	Puuid    string
}

func (p PlayerIdentity) RiotID() RiotID {
	return RiotID{GameName: p.GameName, TagLine: p.TagLine}
}

type RankedEntry struct {
	QueueType    string
	Tier         string
	Rank         string
	LeaguePoints int
	Wins         int
	Losses       int
}

type Match struct {
	ID              string
	DurationSeconds float64
	Participants    []Participant
}

type Participant struct {
	Puuid                string
	TeamID               int // 100 blue, 200 red
	ChampionName         string
	Win                  bool
	Kills                int
	Deaths               int
	Assists              int
	TotalMinionsKilled   int
	NeutralMinionsKilled int
	GoldEarned           *int
	GoldPerMinute        *float64
	DamageToChampions    int
	GoldDiffAt10         *float64
}

type ParticipantMetrics struct {
	Win               bool
	KDA               float64
	Kills             int
	Deaths            int
	Assists           int
	CSPerMin          float64
	GoldPerMin        float64
	GoldDiffAt10      *float64
	KillParticipation float64
	DmgPerMin         float64
	Champion          string
}

type AggregateStats struct {
	Games                int
	Winrate              float64
	AvgKDA               float64
	AvgCSPerMin          float64
	AvgGoldPerMin        float64
	AvgGoldDiffAt10      *float64 // nil when no match reported it
	AvgKillParticipation float64
	AvgDmgPerMin         float64
	ChampPoolSize        int
}

type Signal struct {
	Name   string
	Points int
}

type Report struct {
	ScanID         string
	Identity       PlayerIdentity
	Ranked         []RankedEntry
	MatchesListed  int
	MatchesFetched int
	MatchesSkipped int
	Stats          AggregateStats
	Signals        []Signal
	Score          int
	Verdict        Verdict
}
