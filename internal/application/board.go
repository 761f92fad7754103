package application

import "catanboard/internal/models"

// Board is the display structure for a ranked leaderboard: up to three
// qualifying players on the podium, everybody else in the list below.
type Board struct {
	SortBy models.SortMode
	Podium []models.RankedPlayer
	Rest   []models.RankedPlayer
}

// BuildBoard splits a ranked list into podium and list. Players that do not
// make the podium keep their ranked order in the list.
func BuildBoard(ranked []models.RankedPlayer, sortBy models.SortMode) Board {
	var podium, rest []models.RankedPlayer
	for _, p := range ranked {
		if len(podium) < podiumSize && qualifies(p, sortBy) {
			podium = append(podium, p)
			continue
		}
		rest = append(rest, p)
	}

	return Board{
		SortBy: sortBy,
		Podium: podium,
		Rest:   rest,
	}
}

// PodiumSlot is one place on the podium. Player is nil for an unfilled slot.
type PodiumSlot struct {
	Position int
	Player   *models.RankedPlayer
}

// PodiumSlots returns the podium in visual order: 2nd, 1st, 3rd.
func (b Board) PodiumSlots() []PodiumSlot {
	if len(b.Podium) == 0 {
		return nil
	}
	slots := make([]PodiumSlot, 0, podiumSize)
	for _, pos := range []int{2, 1, 3} {
		slot := PodiumSlot{Position: pos}
		if pos <= len(b.Podium) {
			p := b.Podium[pos-1]
			slot.Player = &p
		}
		slots = append(slots, slot)
	}
	return slots
}

func (b Board) Empty() bool {
	return len(b.Podium) == 0 && len(b.Rest) == 0
}

func (b Board) SortLabel() string {
	return b.SortBy.Label()
}

// Players returns the whole board in rank order.
func (b Board) Players() []models.RankedPlayer {
	out := make([]models.RankedPlayer, 0, len(b.Podium)+len(b.Rest))
	out = append(out, b.Podium...)
	return append(out, b.Rest...)
}
