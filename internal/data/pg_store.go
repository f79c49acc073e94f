package data

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"
	"go.mongodb.org/mongo-driver/v2/bson"
	"lukechampine.com/blake3"

	"novaturn/internal/model"
	"novaturn/pkg/db"
)

// PgStore :
// Store implementation backing both tables onto a single pgx
// connection pool. Snapshots are
// BSON-encoded, lz4-compressed and blake3-checksummed before being
// written to a bytea column: a turn-engine snapshot is a large,
// mostly-numeric document and compresses well, and the checksum lets
// Load refuse a corrupted row instead of handing the orchestrator a
// world that silently decodes wrong.
//
// The `dbase` is the underlying connection pool.
type PgStore struct {
	dbase *db.DB
}

// NewPgStore :
// Wraps an already-connected DB pool as a Store. Callers are
// responsible for having run the schema migration that creates the
// `snapshots` and `queued_commands` tables.
func NewPgStore(dbase *db.DB) *PgStore {
	return &PgStore{dbase: dbase}
}

// Save :
func (s *PgStore) Save(world *model.WorldSnapshot) error {
	raw, err := bson.Marshal(world)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	compressed, err := compress(raw)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}
	checksum := blake3.Sum256(raw)

	_, err = s.dbase.DBExecute(
		`insert into snapshots (game_id, turn_year, payload, checksum)
		 values ($1, $2, $3, $4)
		 on conflict (game_id) do update set turn_year = $2, payload = $3, checksum = $4`,
		world.GameID, world.TurnYear, compressed, checksum[:],
	)
	return err
}

// Load :
func (s *PgStore) Load(gameID string) (*model.WorldSnapshot, error) {
	rows, err := s.dbase.DBQuery(
		`select payload, checksum from snapshots where game_id = $1`, gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}

	var compressed, checksum []byte
	if err := rows.Scan(&compressed, &checksum); err != nil {
		return nil, err
	}

	raw, err := decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}

	sum := blake3.Sum256(raw)
	if !bytes.Equal(sum[:], checksum) {
		return nil, fmt.Errorf("snapshot checksum mismatch for game %q", gameID)
	}

	var world model.WorldSnapshot
	if err := bson.Unmarshal(raw, &world); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &world, nil
}

// AppendCommands :
func (s *PgStore) AppendCommands(gameID string, empireID int, cmds []StoredCommand) error {
	for _, c := range cmds {
		_, err := s.dbase.DBExecute(
			`insert into queued_commands (game_id, empire_id, kind, payload) values ($1, $2, $3, $4)`,
			gameID, empireID, c.Kind, []byte(c.Payload),
		)
		if err != nil {
			return fmt.Errorf("append command for empire %d: %w", empireID, err)
		}
	}
	return nil
}

// DrainCommands :
func (s *PgStore) DrainCommands(gameID string) (map[int][]StoredCommand, error) {
	rows, err := s.dbase.DBQuery(
		`select id, empire_id, kind, payload from queued_commands where game_id = $1 order by id asc`,
		gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]StoredCommand)
	var ids []int

	for rows.Next() {
		var id, empireID int
		var kind string
		var payload []byte
		if err := rows.Scan(&id, &empireID, &kind, &payload); err != nil {
			return nil, err
		}
		ids = append(ids, id)
		out[empireID] = append(out[empireID], StoredCommand{Kind: kind, Payload: bson.Raw(payload)})
	}

	if len(ids) > 0 {
		if _, err := s.dbase.DBExecute(`delete from queued_commands where game_id = $1`, gameID); err != nil {
			return nil, fmt.Errorf("clear drained commands: %w", err)
		}
	}

	return out, nil
}

// compress :
func compress(raw []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(raw)))
	var compressor lz4.Compressor
	n, err := compressor.CompressBlock(raw, buf)
	if err != nil {
		return nil, err
	}
	// Prefix with the uncompressed length so decompress can size its
	// output buffer; lz4's block API doesn't self-describe it.
	out := make([]byte, 8+n)
	putUint64(out, uint64(len(raw)))
	copy(out[8:], buf[:n])
	return out, nil
}

// decompress :
func decompress(data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("truncated compressed payload")
	}
	rawLen := getUint64(data)
	raw := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data[8:], raw)
	if err != nil {
		return nil, err
	}
	return raw[:n], nil
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}
