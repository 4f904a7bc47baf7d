package state

// MoveCard relocates a CardInstance from one zone to another for the given
// player, resetting the fields that invariantly reset on a zone change
// (spec.md §3: a permanent that changes zones becomes a new object — tapped,
// damage, summoning sickness, attachments, and temporary modifications are
// all cleared; counters do not persist either, since MTG objects gain a new
// identity on zone change). newController lets effects like theft or token
// creation reassign control in the same move.
func (g *GameState) MoveCard(owner PlayerID, id InstanceID, from, to Zone, newController PlayerID) (*CardInstance, bool) {
	p := g.Players[owner]
	srcSlice := p.ZoneSlice(from)
	if srcSlice == nil {
		return nil, false
	}
	var card *CardInstance
	idx := -1
	for i, c := range *srcSlice {
		if c.InstanceID == id {
			card, idx = c, i
			break
		}
	}
	if card == nil {
		return nil, false
	}
	*srcSlice = append((*srcSlice)[:idx], (*srcSlice)[idx+1:]...)

	card.Zone = to
	card.Controller = newController
	card.Tapped = false
	card.Damage = 0
	card.Attacking = false
	card.Blocking = false
	card.BlockedBy = nil
	card.BlockingAttacker = ""
	card.Attachments = nil
	card.Counters = nil
	card.Modifications = nil
	if to == ZoneBattlefield {
		card.SummoningSick = true
	} else {
		card.SummoningSick = false
	}

	dstOwner := owner
	if to == ZoneBattlefield {
		dstOwner = newController
	}
	dstPlayer := g.Players[dstOwner]
	dstSlice := dstPlayer.ZoneSlice(to)
	if dstSlice == nil {
		// destination is the stack; caller is responsible for pushing a
		// StackObject wrapping this card instead.
		return card, true
	}
	*dstSlice = append(*dstSlice, card)
	return card, true
}

// MoveStackObjectToZone resolves a spell or ability off the stack into its
// resolution-time destination zone (battlefield for permanents, graveyard
// otherwise), or back to library/exile per an effect's instruction.
func (g *GameState) MoveStackObjectToZone(so *StackObject, to Zone) {
	if so.Card == nil {
		return
	}
	card := so.Card
	owner := card.Owner
	p := g.Players[owner]

	card.Zone = to
	card.Tapped = false
	card.Damage = 0
	card.Attachments = nil
	card.Modifications = nil
	if to == ZoneBattlefield {
		card.Controller = so.Controller
		card.SummoningSick = true
		card.Counters = nil
	} else {
		card.Controller = owner
		card.SummoningSick = false
	}

	dstOwner := owner
	if to == ZoneBattlefield {
		dstOwner = so.Controller
	}
	dstSlice := g.Players[dstOwner].ZoneSlice(to)
	if dstSlice != nil {
		*dstSlice = append(*dstSlice, card)
	}
	_ = p
}

// Draw moves the top card of a player's library to their hand. It reports
// whether a card was available; drawing from an empty library is the
// caller's cue to apply the state-based loss condition rather than an error.
func (g *GameState) Draw(pid PlayerID) (*CardInstance, bool) {
	p := g.Players[pid]
	if len(p.Library) == 0 {
		return nil, false
	}
	card := p.Library[0]
	p.Library = p.Library[1:]
	card.Zone = ZoneHand
	p.Hand = append(p.Hand, card)
	return card, true
}

// Mill moves the top card of a player's library directly to their graveyard.
func (g *GameState) Mill(pid PlayerID) (*CardInstance, bool) {
	p := g.Players[pid]
	if len(p.Library) == 0 {
		return nil, false
	}
	card := p.Library[0]
	p.Library = p.Library[1:]
	card.Zone = ZoneGraveyard
	p.Graveyard = append(p.Graveyard, card)
	return card, true
}
