// Package entities contains the game-specific things placed on a maze board
// and the display information the game layer needs for them.
package entities

import (
	"github.com/leonelquinteros/gotext"

	"fortress/pkg/engine/world"
)

// KindInfo contains display information for each tile kind
type KindInfo struct {
	NameKey string // Translation key for the display name
	Icon    rune   // Single-character glyph used by text renderers
}

// KindTypes maps tile kinds to their display information
var KindTypes = map[world.Kind]KindInfo{
	world.Empty:      {NameKey: "TILE_EMPTY", Icon: '.'},
	world.Wall:       {NameKey: "TILE_WALL", Icon: '#'},
	world.Gateway:    {NameKey: "TILE_GATEWAY", Icon: 'G'},
	world.Block:      {NameKey: "TILE_BLOCK", Icon: 'B'},
	world.Key:        {NameKey: "TILE_KEY", Icon: 'k'},
	world.Checkpoint: {NameKey: "TILE_CHECKPOINT", Icon: 'c'},
	world.Enemy:      {NameKey: "TILE_ENEMY", Icon: 'e'},
	world.Exit:       {NameKey: "TILE_EXIT", Icon: 'E'},
}

// Icon returns the glyph for a tile kind, '?' if unknown
func Icon(kind world.Kind) rune {
	info, ok := KindTypes[kind]
	if !ok {
		return '?'
	}
	return info.Icon
}

// KindName returns the translated display name of a tile kind
func KindName(kind world.Kind) string {
	info, ok := KindTypes[kind]
	if !ok {
		return kind.String()
	}
	return gotext.Get(info.NameKey)
}
