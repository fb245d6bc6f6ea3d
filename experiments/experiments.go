package experiments

import (
	"context"
	"fmt"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher/agent"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per match up

var tiers = []game.Difficulty{game.Hard, game.Medium, game.Easy}

type Summary struct {
	Dir    string
	Games  int
	XWins  int
	OWins  int
	Draws  int
	Losses map[game.Difficulty]int // Games lost by each tier
}

// Run plays every pairing of the search tiers, in both seatings, and stores
// the agent configs, game records and move records under baseDir/name/<timestamp>.
func Run(ctx context.Context, name, baseDir string, games int, seed uint64) (Summary, error) {
	configs := agentConfigs(seed)
	byTier := map[game.Difficulty]map[game.Cell]metrics.AgentConfig{}
	for _, config := range configs {
		if byTier[config.Difficulty] == nil {
			byTier[config.Difficulty] = map[game.Cell]metrics.AgentConfig{}
		}
		byTier[config.Difficulty][config.Mark] = config
	}

	// Each matchup seats one tier as X and another as O
	matchUps := [][]metrics.AgentConfig{}
	for _, x := range tiers {
		for _, o := range tiers {
			matchUps = append(matchUps, []metrics.AgentConfig{byTier[x][game.X], byTier[o][game.O]})
		}
	}

	summary := Summary{Games: games * len(matchUps), Losses: map[game.Difficulty]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between X=%s and O=%s...", mi+1, len(matchUps), config1.Difficulty, config2.Difficulty)

		for i := 0; i < games; i++ {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			winner, gameMetric, moveMetrics, err := runGame(ctx, config1, config2, uint64(i))
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.X:
				summary.XWins++
				summary.Losses[config2.Difficulty]++
			case game.O:
				summary.OWins++
				summary.Losses[config1.Difficulty]++
			default:
				summary.Draws++
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().
		Int("x_wins", summary.XWins).
		Int("o_wins", summary.OWins).
		Int("draws", summary.Draws).
		Msgf("completed %s experiment", name)

	dir, err := store(name, baseDir, configs, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func agentConfigs(seed uint64) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for _, mark := range []game.Cell{game.X, game.O} {
		for _, d := range tiers {
			configs = append(configs, metrics.AgentConfig{
				ID:         len(configs) + 1,
				Difficulty: d,
				Mark:       mark,
				Seed:       seed + uint64(len(configs)+1),
			})
		}
	}
	return configs
}

func store(name, baseDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner.
// The game index offsets each agent's seed so repeated games differ.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, index uint64) (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(createAgent(config1, index), createAgent(config2, index))
	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, offset uint64) agent.Agent {
	return agent.New(
		agent.Config{Difficulty: config.Difficulty, Mark: config.Mark},
		agent.WithSeed(config.Seed*1_000_003+offset),
		agent.WithMetrics(),
	)
}
