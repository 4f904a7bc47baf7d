package state

import "mtgsim/internal/mana"

// Player holds one seat's zones, life total, and mana pool.
type Player struct {
	ID   PlayerID
	Life int

	Library    []*CardInstance
	Hand       []*CardInstance
	Battlefield []*CardInstance
	Graveyard  []*CardInstance
	Exile      []*CardInstance

	ManaPool mana.Pool

	LandsPlayedThisTurn int
	HasPassed           bool // priority pass state within the current round of passes

	DeckName string
}

// NewPlayer constructs an empty Player seated at 20 life.
func NewPlayer(id PlayerID, deckName string) *Player {
	return &Player{ID: id, Life: 20, DeckName: deckName}
}

// ZoneSlice returns a pointer to the ordered slice backing the given zone
// (stack is not addressable this way; it lives on GameState).
func (p *Player) ZoneSlice(z Zone) *[]*CardInstance {
	switch z {
	case ZoneLibrary:
		return &p.Library
	case ZoneHand:
		return &p.Hand
	case ZoneBattlefield:
		return &p.Battlefield
	case ZoneGraveyard:
		return &p.Graveyard
	case ZoneExile:
		return &p.Exile
	default:
		return nil
	}
}

// FindInZone returns the CardInstance with the given id in the given zone, if present.
func (p *Player) FindInZone(z Zone, id InstanceID) (*CardInstance, int) {
	slice := p.ZoneSlice(z)
	if slice == nil {
		return nil, -1
	}
	for i, c := range *slice {
		if c.InstanceID == id {
			return c, i
		}
	}
	return nil, -1
}

// Creatures returns every battlefield permanent whose template is a creature.
// Callers pass a lookup function rather than importing catalog directly, to
// keep this package free of a dependency on the catalog package.
func (p *Player) Creatures(isCreature func(scryfallID string) bool) []*CardInstance {
	var out []*CardInstance
	for _, c := range p.Battlefield {
		if isCreature(c.ScryfallID) {
			out = append(out, c)
		}
	}
	return out
}

// Lands returns every battlefield permanent whose template is a land.
func (p *Player) Lands(isLand func(scryfallID string) bool) []*CardInstance {
	var out []*CardInstance
	for _, c := range p.Battlefield {
		if isLand(c.ScryfallID) {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Library = cloneInstances(p.Library)
	cp.Hand = cloneInstances(p.Hand)
	cp.Battlefield = cloneInstances(p.Battlefield)
	cp.Graveyard = cloneInstances(p.Graveyard)
	cp.Exile = cloneInstances(p.Exile)
	return &cp
}

func cloneInstances(in []*CardInstance) []*CardInstance {
	if in == nil {
		return nil
	}
	out := make([]*CardInstance, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
