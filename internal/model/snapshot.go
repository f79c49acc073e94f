package model

// EngineSelection :
// Which of the two interchangeable battle engines a game instance
// currently uses.
type EngineSelection int

const (
	EngineStandard EngineSelection = iota
	EngineAlternative
)

// WorldSnapshot :
// The single authoritative, persisted state of one game instance.
// This is the unit handed to the
// persistence adapter's `save`/`load` and is what determinism-replay
// property tests compare byte-for-byte after re-encoding.
type WorldSnapshot struct {
	GameID   string `json:"game_id" bson:"_id"`
	TurnYear int    `json:"turn_year" bson:"turn_year"`

	AllStars      map[string]*Star         `json:"all_stars" bson:"all_stars"`
	AllEmpires    map[int]*EmpireData      `json:"all_empires" bson:"all_empires"`
	AllMinefields map[uint64]*Minefield    `json:"all_minefields" bson:"all_minefields"`
	AllPackets    map[uint64]*MineralPacket `json:"all_packets" bson:"all_packets"`

	Engine EngineSelection `json:"engine" bson:"engine"`
}

// NewWorldSnapshot :
// Builds an empty snapshot for a freshly generated game.
func NewWorldSnapshot(gameID string, engine EngineSelection) *WorldSnapshot {
	return &WorldSnapshot{
		GameID:        gameID,
		TurnYear:      StartingYear,
		AllStars:      make(map[string]*Star),
		AllEmpires:    make(map[int]*EmpireData),
		AllMinefields: make(map[uint64]*Minefield),
		AllPackets:    make(map[uint64]*MineralPacket),
		Engine:        engine,
	}
}
