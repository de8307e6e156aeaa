package auction

// PickWinner escolhe o maior yourOffer; empate vai para quem submeteu esse valor primeiro
// (offeredAt, que a revisão atualiza) e depois o menor id
func PickWinner(bids []Bid) (Bid, bool) {
	if len(bids) == 0 {
		return Bid{}, false
	}
	best := bids[0]
	for _, b := range bids[1:] {
		if outranks(b, best) {
			best = b
		}
	}
	return best, true
}

func outranks(a, b Bid) bool {
	if c := a.YourOffer.Cmp(b.YourOffer); c != 0 {
		return c > 0
	}
	if !a.OfferedAt.Equal(b.OfferedAt) {
		return a.OfferedAt.Before(b.OfferedAt)
	}
	return a.ID < b.ID
}
