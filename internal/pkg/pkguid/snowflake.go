package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// snowflakeEpoch is 2026-01-01T00:00:00Z in milliseconds.
const snowflakeEpoch int64 = 1767225600000

const nodeMask = 1<<10 - 1

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &nodeID); err != nil {
		return 0, err
	}

	return nodeID & nodeMask, nil
}

// NewSnowflake constructs a generator for nodeID, or for a random node when nodeID is negative.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 {
		random, err := generateRandomNodeID()
		if err != nil {
			return nil, fmt.Errorf("generate snowflake node id: %w", err)
		}
		nodeID = random
	}

	snowflake.Epoch = snowflakeEpoch

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
