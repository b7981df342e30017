package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"izesquad-api/club"
	"izesquad-api/models"
)

var demoNicknames = []string{
	"Smash", "DropShot", "NetKill", "Clearout", "Flick",
	"Drive", "Lift", "Tumble", "Spinner", "BaselineBob",
	"RallyRita", "ShuttleSue",
}

type Fixtures struct {
	store club.Store
	rng   *rand.Rand
}

func NewFixtures(store club.Store) *Fixtures {
	return &Fixtures{store: store, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// GenerateDemoData writes a snapshot with a ranked roster and a played-out
// match history, enough to exercise the dashboard and leaderboards.
func (f *Fixtures) GenerateDemoData() error {
	log.Println("Starting fixtures generation...")

	snap := models.NewSnapshot()
	snap.Settings.TotalCourts = 4
	now := time.Now()

	players := f.generatePlayers(snap, now)
	matches := f.generateHistory(snap, players, now)

	if err := f.store.Save(snap); err != nil {
		return fmt.Errorf("failed to save fixtures snapshot: %w", err)
	}
	log.Printf("Created %d players and %d matches", len(players), matches)
	return nil
}

// ClearAllData replaces whatever is persisted with an empty world.
func (f *Fixtures) ClearAllData() error {
	if err := f.store.Save(models.NewSnapshot()); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}

func (f *Fixtures) generatePlayers(snap *models.Snapshot, now time.Time) []*models.Player {
	players := make([]*models.Player, 0, len(demoNicknames))
	for i, nick := range demoNicknames {
		p := models.NewPlayer(fmt.Sprintf("demo-%02d", i+1), nick, "", now)
		p.Rating = 900 + f.rng.Intn(700)
		// A couple of late arrivals are still calibrating.
		if i >= len(demoNicknames)-3 {
			p.CalGames = f.rng.Intn(models.CalibrationGames)
			p.CalWins = f.rng.Intn(p.CalGames + 1)
			p.CalLosses = p.CalGames - p.CalWins
		} else {
			p.CalGames = models.CalibrationGames
		}
		snap.Players[p.ID] = p
		players = append(players, p)
	}
	return players
}

func (f *Fixtures) generateHistory(snap *models.Snapshot, players []*models.Player, now time.Time) int {
	const matchCount = 40
	for i := 0; i < matchCount; i++ {
		perm := f.rng.Perm(len(players))[:4]
		teamA := []string{players[perm[0]].ID, players[perm[1]].ID}
		teamB := []string{players[perm[2]].ID, players[perm[3]].ID}

		loserPts := f.rng.Intn(20)
		winnerTeam := "A"
		set := models.SetScore{A: 21, B: loserPts}
		if f.rng.Intn(2) == 0 {
			winnerTeam = "B"
			set = models.SetScore{A: loserPts, B: 21}
		}

		delta := 8 + f.rng.Intn(12)
		deltas := make(map[string]int, 4)
		for _, id := range teamA {
			d := delta
			if winnerTeam == "B" {
				d = -delta
			}
			deltas[id] = d
			snap.Players[id].Rating += d
		}
		for _, id := range teamB {
			d := delta
			if winnerTeam == "A" {
				d = -delta
			}
			deltas[id] = d
			snap.Players[id].Rating += d
		}
		for _, id := range append(append([]string{}, teamA...), teamB...) {
			p := snap.Players[id]
			won := (winnerTeam == "A") == (id == teamA[0] || id == teamA[1])
			if won {
				p.SetsWon++
				p.PointsFor += 21
				p.PointsAgainst += loserPts
			} else {
				p.SetsLost++
				p.PointsFor += loserPts
				p.PointsAgainst += 21
			}
		}

		rec := models.MatchRecord{
			ID:          uuid.NewString()[:10],
			CourtID:     1 + f.rng.Intn(snap.Settings.TotalCourts),
			PlayedAt:    now.Add(-time.Duration(matchCount-i) * 20 * time.Minute),
			WinnerTeam:  winnerTeam,
			Sets:        []models.SetScore{set},
			SetsA:       boolToInt(winnerTeam == "A"),
			SetsB:       boolToInt(winnerTeam == "B"),
			PointsA:     set.A,
			PointsB:     set.B,
			DurationSec: 600 + f.rng.Intn(900),
			TeamA:       teamA,
			TeamB:       teamB,
			Deltas:      deltas,
		}
		snap.History = append([]models.MatchRecord{rec}, snap.History...)
	}
	return matchCount
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
