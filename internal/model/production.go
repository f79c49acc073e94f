package model

// ProductionKind :
// The category of a star's manufacturing queue entry.
type ProductionKind int

const (
	ProductionFactory ProductionKind = iota
	ProductionMine
	ProductionDefense
	ProductionTerraform
	ProductionShip
	ProductionStarbase
	ProductionPacket
	ProductionAlchemy
)

// ProductionOrder :
// One entry in a star's manufacturing queue. Ship/Starbase orders must
// carry a `DesignKey` that resolves in the owning empire's designs at
// apply-time; the other kinds leave it at 0.
//
// `PartialSpent` tracks the resources already committed to this order
// so a multi-turn build can resume without losing progress, and
// `AutoBuild` marks orders (typically Factory/Mine/Defense top-ups)
// that must not block the orders behind them in the queue when they
// run out of resources for this turn.
type ProductionOrder struct {
	Kind         ProductionKind `json:"kind" bson:"kind"`
	Quantity     int            `json:"quantity" bson:"quantity"`
	DesignKey    uint64         `json:"design_key,omitempty" bson:"design_key,omitempty"`
	PartialSpent Resources      `json:"partial_spent" bson:"partial_spent"`
	AutoBuild    bool           `json:"auto_build" bson:"auto_build"`
}
